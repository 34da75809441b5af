package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
	svc "github.com/sunridge/campreg/internal/services"
)

// GET /admin/add
func (a *App) AdminAddForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sessions []models.Session
		_ = a.DB.Order("start_date asc, id asc").Find(&sessions).Error
		a.render(w, "admin/registration_add.tmpl", map[string]any{
			"Title":    "Admin - Add Registration",
			"Sessions": sessions,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/add — same write path as the public form, but auto-approved
// and with the waiver flag taken from the form.
func (a *App) AdminAddSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		in, errKey := parseRegistrationForm(r)
		if errKey != "" {
			http.Redirect(w, r, "/admin/add?error="+errKey, http.StatusSeeOther)
			return
		}
		in.Waiver = "N"
		if r.FormValue("waiver") == "Y" {
			in.Waiver = "Y"
		}

		regID, err := svc.CreateRegistration(a.DB, in, true)
		if err != nil {
			// Admin-facing CRUD surfaces the raw store error.
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		svc.NotifyCreated(a.DB, a.Notifier, a.Log, regID, a.AdminEmail)
		http.Redirect(w, r, "/admin?ok=saved", http.StatusSeeOther)
	}
}

// GET /admin/edit/{id}
func (a *App) AdminEditForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var reg models.Registration
		err := a.DB.
			Preload("ChildProfile").
			Preload("ChildProfile.Parent").
			Preload("Address").
			Preload("ClassInfo").
			Preload("Session").
			First(&reg, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var sessions []models.Session
		_ = a.DB.Order("start_date asc, id asc").Find(&sessions).Error

		a.render(w, "admin/registration_edit.tmpl", map[string]any{
			"Title":    "Admin - Edit Registration",
			"Reg":      reg,
			"BirthVal": reg.BirthDate.Format("2006-01-02"),
			"Sessions": sessions,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/edit/{id}
func (a *App) AdminEditSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in, errKey := parseEditForm(r)
		if errKey != "" {
			http.Redirect(w, r, "/admin/edit/"+strconv.Itoa(int(id))+"?error="+errKey, http.StatusSeeOther)
			return
		}

		if err := svc.EditRegistration(a.DB, id, in); err != nil {
			if errors.Is(err, svc.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/admin?ok=saved", http.StatusSeeOther)
	}
}

// POST /admin/delete/{id}
func (a *App) AdminDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.DeleteRegistration(a.DB, id); err != nil {
			if errors.Is(err, svc.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/admin?ok=deleted", http.StatusSeeOther)
	}
}

// parseEditForm maps the edit form onto an EditInput. Hidden inputs carry the
// sub-record ids; an absent id means that table's update is skipped.
func parseEditForm(r *http.Request) (svc.EditInput, string) {
	var in svc.EditInput

	in.FirstName = strings.TrimSpace(r.FormValue("child_first_name"))
	in.LastName = strings.TrimSpace(r.FormValue("child_last_name"))
	in.Email = strings.TrimSpace(r.FormValue("email"))
	in.Phone = strings.TrimSpace(r.FormValue("phone"))
	in.Status = r.FormValue("status")
	in.AdminNotes = strings.TrimSpace(r.FormValue("admin_notes"))

	d, err := time.Parse("2006-01-02", strings.TrimSpace(r.FormValue("birthdate")))
	if err != nil {
		return in, "invalid_date"
	}
	in.BirthDate = d

	if sidStr := r.FormValue("session_id"); sidStr != "" {
		if sid, err := strconv.Atoi(sidStr); err == nil && sid > 0 {
			id := uint(sid)
			in.SessionID = &id
		}
	}

	in.ChildProfileID = optionalID(r.FormValue("child_profile_id"))
	in.ChildFirstName = in.FirstName
	in.ChildLastName = in.LastName
	if ageStr := strings.TrimSpace(r.FormValue("age")); ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil && age >= 0 {
			in.ChildAge = &age
		}
	}

	in.ParentID = optionalID(r.FormValue("parent_id"))
	in.ParentFirstName = strings.TrimSpace(r.FormValue("parent_first_name"))
	in.ParentLastName = strings.TrimSpace(r.FormValue("parent_last_name"))
	in.ParentEmail = in.Email
	in.ParentPhone = in.Phone
	in.Waiver = "N"
	if r.FormValue("waiver") == "Y" {
		in.Waiver = "Y"
	}

	in.AddressID = optionalID(r.FormValue("address_id"))
	in.Street = strings.TrimSpace(r.FormValue("street"))
	in.City = strings.TrimSpace(r.FormValue("city"))
	in.State = strings.TrimSpace(r.FormValue("state"))
	in.Zip = strings.TrimSpace(r.FormValue("zip"))

	in.ClassInfoID = optionalID(r.FormValue("class_info_id"))
	in.SpecialRequests = strings.TrimSpace(r.FormValue("special_requests"))

	return in, ""
}

func optionalID(s string) *uint {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return nil
	}
	u := uint(id)
	return &u
}
