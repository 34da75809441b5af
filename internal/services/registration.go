package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
)

var ErrNotFound = errors.New("not found")

// RegistrationInput carries one registration submission. The public form and
// the admin add form both map onto this.
type RegistrationInput struct {
	ChildFirstName string
	ChildLastName  string
	ChildAge       *int
	BirthDate      time.Time

	ParentFirstName string
	ParentLastName  string
	Email           string
	Phone           string

	Street string
	City   string
	State  string
	Zip    string

	SpecialRequests string
	SessionID       *uint
	Waiver          string // admin path only; public path always records "Y"
}

// CreateRegistration inserts the full ownership chain in one transaction:
// Parent -> Address -> ClassInfo -> ChildProfile -> Registration, each step
// consuming the previous step's generated id. On any failure nothing persists.
//
// autoApprove selects the admin path: status starts as approved instead of
// pending and the waiver flag is taken from the input. The public path always
// sets waiver to "Y" (the form cannot be submitted without agreeing).
//
// Seat capacity is deliberately NOT checked here; the session's seat count is
// informational and a session can be oversold. See DESIGN.md.
func CreateRegistration(gdb *gorm.DB, in RegistrationInput, autoApprove bool) (uint, error) {
	status := models.StatusPending
	waiver := "Y"
	if autoApprove {
		status = models.StatusApproved
		waiver = in.Waiver
	}

	// Code uniqueness is only checked against committed rows, so two
	// concurrent creates can draw the same code. The unique index decides
	// the winner; the loser redraws instead of failing the registration.
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		code, err := GenerateCode(gdb)
		if err != nil {
			return 0, err
		}
		id, err := createWithCode(gdb, in, status, waiver, code)
		if err == nil {
			return id, nil
		}
		if !isDuplicateCode(err) {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}

func createWithCode(gdb *gorm.DB, in RegistrationInput, status, waiver, code string) (uint, error) {
	var regID uint
	err := gdb.Transaction(func(tx *gorm.DB) error {
		parent := models.Parent{
			FirstName: in.ParentFirstName,
			LastName:  in.ParentLastName,
			Email:     in.Email,
			Phone:     in.Phone,
			Waiver:    waiver,
		}
		if err := tx.Create(&parent).Error; err != nil {
			return err
		}

		addr := models.Address{
			Street:   in.Street,
			City:     in.City,
			State:    in.State,
			Zip:      in.Zip,
			ParentID: parent.ID,
		}
		if err := tx.Create(&addr).Error; err != nil {
			return err
		}

		info := models.ClassInfo{SpecialRequests: in.SpecialRequests}
		if err := tx.Create(&info).Error; err != nil {
			return err
		}

		child := models.ChildProfile{
			FirstName:   in.ChildFirstName,
			LastName:    in.ChildLastName,
			Age:         in.ChildAge,
			ParentID:    parent.ID,
			ClassInfoID: info.ID,
		}
		if err := tx.Create(&child).Error; err != nil {
			return err
		}

		reg := models.Registration{
			FirstName:      in.ChildFirstName,
			LastName:       in.ChildLastName,
			Email:          in.Email,
			Phone:          in.Phone,
			BirthDate:      in.BirthDate,
			Status:         status,
			Code:           code,
			ChildProfileID: child.ID,
			AddressID:      addr.ID,
			ClassInfoID:    info.ID,
			SessionID:      in.SessionID,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}
		regID = reg.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return regID, nil
}

// isDuplicateCode reports whether err is the unique-index violation on the
// registration code column.
func isDuplicateCode(err error) bool {
	return err != nil && strings.Contains(err.Error(), "registrations.code")
}

// Approve sets status=approved. There is no already-approved guard: approving
// twice is a data-level no-op and the caller re-sends the notification.
func Approve(gdb *gorm.DB, id uint) error {
	return setStatus(gdb, id, models.StatusApproved)
}

// Reject sets status=rejected. No notification is sent for rejections.
func Reject(gdb *gorm.DB, id uint) error {
	return setStatus(gdb, id, models.StatusRejected)
}

func setStatus(gdb *gorm.DB, id uint, status string) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var reg models.Registration
		if err := tx.First(&reg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		reg.Status = status
		return tx.Save(&reg).Error
	})
}

// UpdateNote is the fast single-field write used by the dashboard's inline
// note editor. No transaction, no status change.
func UpdateNote(gdb *gorm.DB, id uint, text string) error {
	res := gdb.Model(&models.Registration{}).Where("id = ?", id).Update("admin_notes", text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EditInput carries an admin edit. The sub-record ids select which owned
// rows get updated: a nil id silently skips that table, it is not an error
// (the edit form only posts ids for the rows it rendered).
type EditInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	BirthDate  time.Time
	Status     string
	AdminNotes string
	SessionID  *uint

	ChildProfileID *uint
	ChildFirstName string
	ChildLastName  string
	ChildAge       *int

	ParentID        *uint
	ParentFirstName string
	ParentLastName  string
	ParentEmail     string
	ParentPhone     string
	Waiver          string

	AddressID *uint
	Street    string
	City      string
	State     string
	Zip       string

	ClassInfoID     *uint
	SpecialRequests string
}

// EditRegistration updates the Registration scalars and, conditionally, each
// owned record whose id is present in the input. All sub-updates share one
// transaction.
func EditRegistration(gdb *gorm.DB, id uint, in EditInput) error {
	if !ValidStatus(in.Status) {
		return errors.New("invalid status: " + in.Status)
	}
	return gdb.Transaction(func(tx *gorm.DB) error {
		var reg models.Registration
		if err := tx.First(&reg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		reg.FirstName = in.FirstName
		reg.LastName = in.LastName
		reg.Email = in.Email
		reg.Phone = in.Phone
		reg.BirthDate = in.BirthDate
		reg.Status = in.Status
		reg.AdminNotes = in.AdminNotes
		reg.SessionID = in.SessionID
		if err := tx.Save(&reg).Error; err != nil {
			return err
		}

		if in.ChildProfileID != nil {
			upd := map[string]any{
				"first_name": in.ChildFirstName,
				"last_name":  in.ChildLastName,
				"age":        in.ChildAge,
			}
			if err := tx.Model(&models.ChildProfile{}).Where("id = ?", *in.ChildProfileID).Updates(upd).Error; err != nil {
				return err
			}
		}
		if in.ParentID != nil {
			upd := map[string]any{
				"first_name": in.ParentFirstName,
				"last_name":  in.ParentLastName,
				"email":      in.ParentEmail,
				"phone":      in.ParentPhone,
				"waiver":     in.Waiver,
			}
			if err := tx.Model(&models.Parent{}).Where("id = ?", *in.ParentID).Updates(upd).Error; err != nil {
				return err
			}
		}
		if in.AddressID != nil {
			upd := map[string]any{
				"street": in.Street,
				"city":   in.City,
				"state":  in.State,
				"zip":    in.Zip,
			}
			if err := tx.Model(&models.Address{}).Where("id = ?", *in.AddressID).Updates(upd).Error; err != nil {
				return err
			}
		}
		if in.ClassInfoID != nil {
			if err := tx.Model(&models.ClassInfo{}).Where("id = ?", *in.ClassInfoID).
				Update("special_requests", in.SpecialRequests).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteRegistration removes the registration and its owned chain in one
// transaction. The chain rows are never shared, so removing them here cannot
// orphan another registration.
func DeleteRegistration(gdb *gorm.DB, id uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var reg models.Registration
		if err := tx.First(&reg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var child models.ChildProfile
		parentID := uint(0)
		if err := tx.First(&child, reg.ChildProfileID).Error; err == nil {
			parentID = child.ParentID
		}

		if err := tx.Delete(&models.Registration{}, reg.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ChildProfile{}, reg.ChildProfileID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Address{}, reg.AddressID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ClassInfo{}, reg.ClassInfoID).Error; err != nil {
			return err
		}
		if parentID != 0 {
			if err := tx.Delete(&models.Parent{}, parentID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func ValidStatus(s string) bool {
	switch s {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
		return true
	}
	return false
}
