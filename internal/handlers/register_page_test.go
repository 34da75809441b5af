package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sunridge/campreg/internal/db"
	"github.com/sunridge/campreg/internal/handlers"
	"github.com/sunridge/campreg/internal/notify"
	"github.com/sunridge/campreg/internal/web"
)

// The confirmation page must carry the allocated code; an empty code would
// mean the post-create reload failed without anyone noticing. Renders the
// real templates, so the working directory moves to the repo root.
func TestRegisterSubmitRendersConfirmationCode(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(filepath.Join(wd, "..", "..")); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	log := zap.NewNop().Sugar()
	app := &handlers.App{
		DB:         gdb,
		Notifier:   &notify.LogNotifier{Log: log},
		Log:        log,
		Tmpl:       web.Templates("templates"),
		Sessions:   handlers.NewSessionStore(),
		AdminEmail: "office@sunridgedaycamp.org",
	}

	form := url.Values{}
	form.Set("child_first_name", "Theo")
	form.Set("child_last_name", "Marsh")
	form.Set("parent_first_name", "Dana")
	form.Set("parent_last_name", "Marsh")
	form.Set("email", "dana.marsh@example.com")
	form.Set("birthdate", "2016-03-09")

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.RegisterSubmit()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !regexp.MustCompile(`REG-[0-9A-F]{8}`).MatchString(rec.Body.String()) {
		t.Errorf("confirmation page has no code:\n%s", rec.Body.String())
	}
}
