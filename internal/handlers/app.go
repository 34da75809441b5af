package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/notify"
)

// App carries the shared dependencies for every handler. The store handle,
// notifier, and template set are owned by the process entry point and passed
// in here; handlers hold no package-level state.
type App struct {
	DB         *gorm.DB
	Notifier   notify.Notifier
	Log        *zap.SugaredLogger
	Tmpl       *template.Template
	Sessions   *SessionStore
	AdminEmail string
}

// render clones the base template set, parses the requested page on top of
// it, and executes. Page templates live under templates/pages and define a
// template named after their relative path, e.g. "admin/dashboard.tmpl".
func (a *App) render(w http.ResponseWriter, page string, data map[string]any) {
	view, err := a.Tmpl.Clone()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if _, err := view.ParseFiles("templates/pages/" + page); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if err := view.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = fallback
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}
