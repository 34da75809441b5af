package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sunridge/campreg/internal/models"
	svc "github.com/sunridge/campreg/internal/services"
)

// GET /admin/schedule/add
func (a *App) ScheduleAddForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.render(w, "admin/schedule_add.tmpl", map[string]any{
			"Title": "Admin - Add Session",
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/schedule/add
func (a *App) ScheduleAddSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s, errKey := parseSessionForm(r)
		if errKey != "" {
			http.Redirect(w, r, "/admin/schedule/add?error="+errKey, http.StatusSeeOther)
			return
		}
		if err := a.DB.Create(&s).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/campschedule?ok=saved", http.StatusSeeOther)
	}
}

// GET /admin/schedule/edit/{id}
func (a *App) ScheduleEditForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var s models.Session
		if err := a.DB.First(&s, id).Error; err != nil {
			http.NotFound(w, r)
			return
		}
		a.render(w, "admin/schedule_edit.tmpl", map[string]any{
			"Title":    "Admin - Edit Session",
			"Session":  s,
			"StartVal": s.StartDate.Format("2006-01-02"),
			"EndVal":   s.EndDate.Format("2006-01-02"),
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/schedule/edit/{id}
func (a *App) ScheduleEditSubmit() http.HandlerFunc {
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

		var s models.Session
		if err := a.DB.First(&s, id).Error; err != nil {
			http.NotFound(w, r)
			return
		}

		upd, errKey := parseSessionForm(r)
		if errKey != "" {
			http.Redirect(w, r, "/admin/schedule/edit/"+strconv.Itoa(int(id))+"?error="+errKey, http.StatusSeeOther)
			return
		}

		s.Name = upd.Name
		s.Description = upd.Description
		s.Season = upd.Season
		s.StartDate = upd.StartDate
		s.EndDate = upd.EndDate
		s.StartTime = upd.StartTime
		s.EndTime = upd.EndTime
		s.Capacity = upd.Capacity
		if err := a.DB.Save(&s).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/campschedule?ok=saved", http.StatusSeeOther)
	}
}

// POST /admin/schedule/delete/{id} — registrations referencing the session
// survive with session_id nulled (see services.DeleteSession).
func (a *App) ScheduleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.DeleteSession(a.DB, id); err != nil {
			if errors.Is(err, svc.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/campschedule?ok=deleted", http.StatusSeeOther)
	}
}

func parseSessionForm(r *http.Request) (models.Session, string) {
	var s models.Session

	s.Name = strings.TrimSpace(r.FormValue("name"))
	s.Description = strings.TrimSpace(r.FormValue("description"))
	s.Season = strings.TrimSpace(r.FormValue("season"))
	if s.Name == "" {
		return s, "missing"
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(r.FormValue("start_date")))
	if err != nil {
		return s, "invalid_date"
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(r.FormValue("end_date")))
	if err != nil {
		return s, "invalid_date"
	}
	s.StartDate = start
	s.EndDate = end

	for _, f := range []struct {
		val string
		dst *string
	}{
		{r.FormValue("start_time"), &s.StartTime},
		{r.FormValue("end_time"), &s.EndTime},
	} {
		v := strings.TrimSpace(f.val)
		if v != "" {
			if _, err := time.Parse("15:04", v); err != nil {
				return s, "invalid_date"
			}
		}
		*f.dst = v
	}

	// Empty capacity means unlimited.
	if capStr := strings.TrimSpace(r.FormValue("capacity")); capStr != "" {
		c, err := strconv.Atoi(capStr)
		if err != nil || c < 0 {
			return s, "missing"
		}
		s.Capacity = &c
	}

	return s, ""
}
