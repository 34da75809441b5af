package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Principal identifies an authenticated admin for the lifetime of a session.
type Principal struct {
	ID       uint
	Username string
	Role     string
}

// Verify checks username/password against the admin_users table and returns
// the principal on success. Stored passwords are bcrypt hashes; rows not yet
// migrated may still hold plaintext, which is compared in constant time.
func Verify(gdb *gorm.DB, username, password string) (*Principal, error) {
	var u models.AdminUser
	if err := gdb.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if isBcryptHash(u.Password) {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
			return nil, ErrInvalidCredentials
		}
	}

	return &Principal{ID: u.ID, Username: u.Username, Role: u.Role}, nil
}

// SeedAdmin creates the initial admin account when the table is empty.
// The password is always stored bcrypt-hashed.
func SeedAdmin(gdb *gorm.DB, username, password string) error {
	var cnt int64
	if err := gdb.Model(&models.AdminUser{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return gdb.Create(&models.AdminUser{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}).Error
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
