package handlers

import "net/http"

// GET /
func Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/campschedule", http.StatusSeeOther)
}

// GET /healthz
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
