package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sunridge/campreg/internal/auth"
)

const adminCookieName = "admin_session"

// RequireAdmin is middleware: blocks access unless logged in, redirecting to
// the login page with the original URL preserved.
func (a *App) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.currentAdmin(r); !ok {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminJSON guards the AJAX endpoints: no redirect, just a 401 body
// the dashboard script can act on.
func (a *App) RequireAdminJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.currentAdmin(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *App) currentAdmin(r *http.Request) (auth.Principal, bool) {
	c, err := r.Cookie(adminCookieName)
	if err != nil || c.Value == "" {
		return auth.Principal{}, false
	}
	return a.Sessions.Get(c.Value)
}

// GET /login
func (a *App) LoginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.render(w, "login.tmpl", map[string]any{
			"Title": "Admin Login",
			"Next":  r.URL.Query().Get("next"),
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// POST /login
func (a *App) LoginSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		username := r.FormValue("username")
		password := r.FormValue("password")
		next := r.FormValue("next")

		p, err := auth.Verify(a.DB, username, password)
		if err != nil {
			a.Log.Infow("failed admin login", "username", username)
			http.Redirect(w, r, "/login?error=invalid_login", http.StatusSeeOther)
			return
		}

		token := a.Sessions.Put(*p)
		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})
		if next == "" {
			next = "/admin"
		}
		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

// GET /logout
func (a *App) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(adminCookieName); err == nil {
			a.Sessions.Delete(c.Value)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Expires:  time.Unix(0, 0),
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
