package services

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
	"github.com/sunridge/campreg/internal/notify"
)

// NotifyCreated sends the two new-registration messages (registrant + camp
// admin) after a successful create. It only fires when the registration
// references a session that still exists. Send failures are logged and
// swallowed; nothing here can fail the registration that already committed.
func NotifyCreated(gdb *gorm.DB, n notify.Notifier, log *zap.SugaredLogger, regID uint, adminEmail string) {
	var reg models.Registration
	if err := gdb.Preload("Session").First(&reg, regID).Error; err != nil {
		log.Warnw("notify skipped: registration not found", "id", regID, "err", err)
		return
	}
	if reg.SessionID == nil || reg.Session == nil {
		return
	}
	s := reg.Session

	subject := "Sunridge Day Camp registration received"
	body := fmt.Sprintf(
		"A registration for %s %s has been received for %s (%s).\n\nIt is now awaiting review.",
		reg.FirstName, reg.LastName, s.Name, fmtDateRange(s),
	)

	if reg.Email != "" {
		if err := n.Send(reg.Email, subject, body); err != nil {
			log.Warnw("registrant notification failed", "to", reg.Email, "err", err)
		}
	}
	if adminEmail != "" {
		if err := n.Send(adminEmail, "New camp registration: "+reg.FirstName+" "+reg.LastName, body); err != nil {
			log.Warnw("admin notification failed", "to", adminEmail, "err", err)
		}
	}
}

// NotifyApproved re-reads the joined record and sends the approval message.
// Called after every Approve, including re-approvals (the notice re-sends).
func NotifyApproved(gdb *gorm.DB, n notify.Notifier, log *zap.SugaredLogger, regID uint) {
	var reg models.Registration
	if err := gdb.Preload("ChildProfile.Parent").Preload("Session").First(&reg, regID).Error; err != nil {
		log.Warnw("notify skipped: registration not found", "id", regID, "err", err)
		return
	}
	if reg.Email == "" {
		return
	}

	body := fmt.Sprintf("The registration for %s %s has been approved.", reg.FirstName, reg.LastName)
	if s := reg.Session; s != nil {
		body += fmt.Sprintf("\n\nSession: %s\nDates: %s\nTime: %s - %s",
			s.Name, fmtDateRange(s), s.StartTime, s.EndTime)
	}

	if err := n.Send(reg.Email, "Sunridge Day Camp registration approved", body); err != nil {
		log.Warnw("approval notification failed", "to", reg.Email, "err", err)
	}
}

func fmtDateRange(s *models.Session) string {
	return s.StartDate.Format("Jan 2, 2006") + " to " + s.EndDate.Format("Jan 2, 2006")
}
