package services

import (
	"errors"
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
)

func randomCode() string {
	return fmt.Sprintf("REG-%08X", rand.Uint32())
}

// GenerateCode allocates a confirmation code not yet present in the
// registrations table.
func GenerateCode(gdb *gorm.DB) (string, error) {
	for i := 0; i < 20; i++ {
		code := randomCode()
		var exists int64
		if err := gdb.Model(&models.Registration{}).Where("code = ?", code).Count(&exists).Error; err != nil {
			return "", err
		}
		if exists == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique registration code")
}
