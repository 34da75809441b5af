package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
)

// DeleteSession removes a session. Registrations that referenced it keep
// their rows with session_id nulled out, in the same transaction, so the
// dashboard never shows a dangling session reference.
func DeleteSession(gdb *gorm.DB, id uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var s models.Session
		if err := tx.First(&s, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&models.Registration{}).
			Where("session_id = ?", id).
			Update("session_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, id).Error
	})
}
