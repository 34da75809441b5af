package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sunridge/campreg/internal/models"
	svc "github.com/sunridge/campreg/internal/services"
)

// parseRegistrationForm maps the posted form onto a RegistrationInput.
// Returns a flash error key on validation failure.
func parseRegistrationForm(r *http.Request) (svc.RegistrationInput, string) {
	var in svc.RegistrationInput

	in.ChildFirstName = strings.TrimSpace(r.FormValue("child_first_name"))
	in.ChildLastName = strings.TrimSpace(r.FormValue("child_last_name"))
	in.ParentFirstName = strings.TrimSpace(r.FormValue("parent_first_name"))
	in.ParentLastName = strings.TrimSpace(r.FormValue("parent_last_name"))
	in.Email = strings.TrimSpace(r.FormValue("email"))
	in.Phone = strings.TrimSpace(r.FormValue("phone"))
	in.Street = strings.TrimSpace(r.FormValue("street"))
	in.City = strings.TrimSpace(r.FormValue("city"))
	in.State = strings.TrimSpace(r.FormValue("state"))
	in.Zip = strings.TrimSpace(r.FormValue("zip"))
	in.SpecialRequests = strings.TrimSpace(r.FormValue("special_requests"))

	if in.ChildFirstName == "" || in.ChildLastName == "" ||
		in.ParentFirstName == "" || in.ParentLastName == "" || in.Email == "" {
		return in, "missing"
	}

	dob := strings.TrimSpace(r.FormValue("birthdate"))
	if dob == "" {
		return in, "missing"
	}
	d, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return in, "invalid_date"
	}
	in.BirthDate = d

	if ageStr := strings.TrimSpace(r.FormValue("age")); ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil && age >= 0 {
			in.ChildAge = &age
		}
	}

	if sidStr := r.FormValue("session_id"); sidStr != "" {
		if sid, err := strconv.Atoi(sidStr); err == nil && sid > 0 {
			id := uint(sid)
			in.SessionID = &id
		}
	}

	return in, ""
}

// GET /register
func (a *App) RegisterForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := svc.ListSessionsWithEnrollment(a.DB)
		if err != nil {
			a.Log.Errorw("schedule query failed", "err", err)
			sessions = nil
		}
		a.render(w, "register.tmpl", map[string]any{
			"Title":    "Register",
			"Sessions": sessions,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// POST /register — public path: status starts pending, waiver is always "Y".
func (a *App) RegisterSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		in, errKey := parseRegistrationForm(r)
		if errKey != "" {
			http.Redirect(w, r, "/register?error="+errKey, http.StatusSeeOther)
			return
		}

		regID, err := svc.CreateRegistration(a.DB, in, false)
		if err != nil {
			// Generic message only; internal store errors stay in the log.
			a.Log.Errorw("registration create failed", "err", err)
			http.Redirect(w, r, "/register?error=save_failed", http.StatusSeeOther)
			return
		}

		svc.NotifyCreated(a.DB, a.Notifier, a.Log, regID, a.AdminEmail)

		var reg models.Registration
		if err := a.DB.First(&reg, regID).Error; err != nil {
			// The registration committed; render the page anyway, minus the
			// code the reload would have supplied.
			a.Log.Errorw("confirmation reload failed", "id", regID, "err", err)
		}

		a.render(w, "register_done.tmpl", map[string]any{
			"Title":     "Registration Received",
			"ChildName": in.ChildFirstName + " " + in.ChildLastName,
			"Code":      reg.Code,
		})
	}
}
