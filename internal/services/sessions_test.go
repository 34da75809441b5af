package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sunridge/campreg/internal/models"
)

// Deleting a session nulls out session_id on its registrations instead of
// deleting or orphaning them.
func TestDeleteSession(t *testing.T) {
	gdb := openTestDB(t)
	s := mkSession(t, gdb, "Week 1", time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC), 20)

	regID, err := CreateRegistration(gdb, sampleInput(&s.ID), false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := DeleteSession(gdb, s.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	var cnt int64
	gdb.Model(&models.Session{}).Count(&cnt)
	if cnt != 0 {
		t.Errorf("session rows: want 0, got %d", cnt)
	}

	var reg models.Registration
	if err := gdb.First(&reg, regID).Error; err != nil {
		t.Fatalf("registration must survive session delete: %v", err)
	}
	if reg.SessionID != nil {
		t.Errorf("session_id must be nulled, got %v", *reg.SessionID)
	}

	if err := DeleteSession(gdb, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing session: want ErrNotFound, got %v", err)
	}
}
