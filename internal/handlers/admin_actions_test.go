package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sunridge/campreg/internal/db"
	"github.com/sunridge/campreg/internal/models"
	"github.com/sunridge/campreg/internal/notify"
	svc "github.com/sunridge/campreg/internal/services"
)

func testApp(t *testing.T) *App {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	log := zap.NewNop().Sugar()
	return &App{
		DB:         gdb,
		Notifier:   &notify.LogNotifier{Log: log},
		Log:        log,
		Tmpl:       template.New("test"),
		Sessions:   NewSessionStore(),
		AdminEmail: "office@sunridgedaycamp.org",
	}
}

func createTestRegistration(t *testing.T, app *App) uint {
	t.Helper()
	id, err := svc.CreateRegistration(app.DB, svc.RegistrationInput{
		ChildFirstName:  "Theo",
		ChildLastName:   "Marsh",
		BirthDate:       time.Date(2016, 3, 9, 0, 0, 0, 0, time.UTC),
		ParentFirstName: "Dana",
		ParentLastName:  "Marsh",
		Email:           "dana.marsh@example.com",
	}, false)
	if err != nil {
		t.Fatalf("create registration: %v", err)
	}
	return id
}

func TestAdminUpdateNote(t *testing.T) {
	app := testApp(t)
	regID := createTestRegistration(t, app)

	body := strings.NewReader(`{"id":` + strconv.FormatUint(uint64(regID), 10) + `,"notes":"left voicemail"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/update-note", body)
	rec := httptest.NewRecorder()
	app.AdminUpdateNote()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("body: %s", rec.Body.String())
	}

	var reg models.Registration
	app.DB.First(&reg, regID)
	if reg.AdminNotes != "left voicemail" {
		t.Errorf("notes not persisted: %q", reg.AdminNotes)
	}
}

func TestAdminUpdateNote_NotFound(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/update-note", strings.NewReader(`{"id":9999,"notes":"x"}`))
	rec := httptest.NewRecorder()
	app.AdminUpdateNote()(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdminUpdateNote_BadRequest(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/update-note", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	app.AdminUpdateNote()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// The public submit redirects with a flash key on validation failure instead
// of rendering an error page.
func TestRegisterSubmit_MissingFields(t *testing.T) {
	app := testApp(t)

	form := strings.NewReader("child_first_name=Theo")
	req := httptest.NewRequest(http.MethodPost, "/register", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.RegisterSubmit()(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/register?error=missing" {
		t.Errorf("location: %q", loc)
	}
}
