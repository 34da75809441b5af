package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sunridge/campreg/internal/handlers"
)

// Router assembles the HTTP surface around the injected App.
func Router(app *handlers.App) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	r.Get("/", handlers.Home)
	r.Get("/healthz", handlers.Health)
	r.Get("/campschedule", app.CampSchedule())
	r.Get("/register", app.RegisterForm())
	r.Post("/register", app.RegisterSubmit())
	r.Get("/qr/{code}.png", app.QR())

	// Admin authentication
	r.Get("/login", app.LoginForm())
	r.Post("/login", app.LoginSubmit())
	r.Get("/logout", app.Logout())

	// Admin routes
	r.Route("/admin", func(ar chi.Router) {
		// AJAX note editor gets a JSON 401 instead of a redirect.
		ar.With(app.RequireAdminJSON).Post("/update-note", app.AdminUpdateNote())

		// Guarded admin pages
		ar.Group(func(ag chi.Router) {
			ag.Use(app.RequireAdmin)

			ag.Get("/", app.AdminDashboard())

			ag.Post("/approve/{id}", app.AdminApprove())
			ag.Post("/reject/{id}", app.AdminReject())

			ag.Get("/add", app.AdminAddForm())
			ag.Post("/add", app.AdminAddSubmit())
			ag.Get("/edit/{id}", app.AdminEditForm())
			ag.Post("/edit/{id}", app.AdminEditSubmit())
			ag.Post("/delete/{id}", app.AdminDelete())

			ag.Get("/schedule/add", app.ScheduleAddForm())
			ag.Post("/schedule/add", app.ScheduleAddSubmit())
			ag.Get("/schedule/edit/{id}", app.ScheduleEditForm())
			ag.Post("/schedule/edit/{id}", app.ScheduleEditSubmit())
			ag.Post("/schedule/delete/{id}", app.ScheduleDelete())
		})
	})

	return r
}

// Templates parses the shared layout and partial templates. Page templates
// are parsed per request on top of a clone of this set.
func Templates(baseDir string) *template.Template {
	funcs := template.FuncMap{
		"year":    func() string { return time.Now().Format("2006") },
		"isodate": func(t time.Time) string { return t.UTC().Format("2006-01-02") },
		"fmtDate": func(t time.Time) string { return t.UTC().Format("Mon, 02 Jan 2006") },
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "layouts", "*.tmpl")))
	return p
}
