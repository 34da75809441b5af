package services

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sunridge/campreg/internal/models"
)

// openTestDB returns an isolated in-file SQLite database in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.Session{},
		&models.Parent{},
		&models.Address{},
		&models.ClassInfo{},
		&models.ChildProfile{},
		&models.Registration{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func mkSession(t *testing.T, gdb *gorm.DB, name string, start time.Time, capacity int) models.Session {
	t.Helper()
	s := models.Session{
		Name:      name,
		Season:    "Summer 2026",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
		StartTime: "09:00",
		EndTime:   "15:00",
		Capacity:  &capacity,
	}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}
	return s
}

func sampleInput(sessionID *uint) RegistrationInput {
	return RegistrationInput{
		ChildFirstName:  "Maya",
		ChildLastName:   "Okafor",
		BirthDate:       time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC),
		ParentFirstName: "Ngozi",
		ParentLastName:  "Okafor",
		Email:           "ngozi@example.com",
		Phone:           "555-0142",
		Street:          "12 Birch Lane",
		City:            "Maplewood",
		State:           "NJ",
		Zip:             "07040",
		SpecialRequests: "peanut allergy",
		SessionID:       sessionID,
	}
}
