package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
)

// Open opens (or creates) the sqlite database at path, runs migrations, and
// returns the handle. The handle is owned by the caller (the process entry
// point) and passed explicitly into services and handlers; there is no
// package-level connection state.
func Open(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Session{},
		&models.Parent{},
		&models.Address{},
		&models.ClassInfo{},
		&models.ChildProfile{},
		&models.Registration{},
		&models.AdminUser{},
	); err != nil {
		return nil, err
	}

	// Composite indexes that GORM doesn't auto-create from struct tags.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_reg_session_status ON registrations(session_id, status)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_reg_created        ON registrations(created_at)")

	return conn, nil
}
