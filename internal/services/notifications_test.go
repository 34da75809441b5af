package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type sentMsg struct {
	To      string
	Subject string
	Body    string
}

type fakeNotifier struct {
	sent []sentMsg
	fail bool
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, sentMsg{To: to, Subject: subject, Body: body})
	return nil
}

func TestNotifyCreated(t *testing.T) {
	gdb := openTestDB(t)
	log := zap.NewNop().Sugar()
	s := mkSession(t, gdb, "Trailblazers Week 1", time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC), 20)

	regID, err := CreateRegistration(gdb, sampleInput(&s.ID), false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fn := &fakeNotifier{}
	NotifyCreated(gdb, fn, log, regID, "office@sunridgedaycamp.org")

	if len(fn.sent) != 2 {
		t.Fatalf("want 2 notifications (registrant + admin), got %d", len(fn.sent))
	}
	if fn.sent[0].To != "ngozi@example.com" {
		t.Errorf("first notification to registrant, got %q", fn.sent[0].To)
	}
	if fn.sent[1].To != "office@sunridgedaycamp.org" {
		t.Errorf("second notification to admin, got %q", fn.sent[1].To)
	}
	if !strings.Contains(fn.sent[0].Body, "Trailblazers Week 1") {
		t.Errorf("body must name the session: %q", fn.sent[0].Body)
	}
	if !strings.Contains(fn.sent[0].Body, "Jul 6, 2026") {
		t.Errorf("body must carry the date range: %q", fn.sent[0].Body)
	}
}

func TestNotifyCreated_NoSession(t *testing.T) {
	gdb := openTestDB(t)
	log := zap.NewNop().Sugar()

	regID, err := CreateRegistration(gdb, sampleInput(nil), false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fn := &fakeNotifier{}
	NotifyCreated(gdb, fn, log, regID, "office@sunridgedaycamp.org")
	if len(fn.sent) != 0 {
		t.Errorf("no session referenced: want 0 notifications, got %d", len(fn.sent))
	}
}

// A failing transport must be swallowed: the call cannot error or panic, and
// the registration it follows is already committed.
func TestNotifyCreated_TransportFailure(t *testing.T) {
	gdb := openTestDB(t)
	log := zap.NewNop().Sugar()
	s := mkSession(t, gdb, "Week 1", time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC), 20)

	regID, err := CreateRegistration(gdb, sampleInput(&s.ID), false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	NotifyCreated(gdb, &fakeNotifier{fail: true}, log, regID, "office@sunridgedaycamp.org")

	var cnt int64
	gdb.Table("registrations").Count(&cnt)
	if cnt != 1 {
		t.Errorf("registration must survive notification failure, count=%d", cnt)
	}
}

func TestNotifyApproved(t *testing.T) {
	gdb := openTestDB(t)
	log := zap.NewNop().Sugar()
	s := mkSession(t, gdb, "Week 1", time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC), 20)

	regID, err := CreateRegistration(gdb, sampleInput(&s.ID), false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Approve(gdb, regID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	fn := &fakeNotifier{}
	NotifyApproved(gdb, fn, log, regID)
	if len(fn.sent) != 1 {
		t.Fatalf("want 1 approval notification, got %d", len(fn.sent))
	}
	if fn.sent[0].To != "ngozi@example.com" {
		t.Errorf("to: got %q", fn.sent[0].To)
	}
	if !strings.Contains(fn.sent[0].Body, "09:00 - 15:00") {
		t.Errorf("approval body must carry the session time: %q", fn.sent[0].Body)
	}

	// Re-approval re-sends; there is no guard.
	NotifyApproved(gdb, fn, log, regID)
	if len(fn.sent) != 2 {
		t.Errorf("re-approve must re-send, got %d sends", len(fn.sent))
	}
}
