package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	svc "github.com/sunridge/campreg/internal/services"
)

func urlID(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// POST /admin/approve/{id} — sets status=approved, then re-sends the
// approval notice. Re-approving is allowed and re-sends.
func (a *App) AdminApprove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.Approve(a.DB, id); err != nil {
			if errors.Is(err, svc.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		svc.NotifyApproved(a.DB, a.Notifier, a.Log, id)
		redirectBack(w, r, "/admin?ok=approved")
	}
}

// POST /admin/reject/{id} — no notification on rejection.
func (a *App) AdminReject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.Reject(a.DB, id); err != nil {
			if errors.Is(err, svc.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		redirectBack(w, r, "/admin?ok=rejected")
	}
}

type noteRequest struct {
	ID    uint   `json:"id"`
	Notes string `json:"notes"`
}

// POST /admin/update-note — AJAX endpoint for the inline note editor on the
// dashboard. JSON in, JSON out.
func (a *App) AdminUpdateNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "bad request"})
			return
		}

		if err := svc.UpdateNote(a.DB, req.ID, req.Notes); err != nil {
			if errors.Is(err, svc.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "not found"})
				return
			}
			// Admin-facing: surface the store error for debuggability.
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
