package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/sunridge/campreg/internal/models"
)

// GET /qr/{code}.png — QR image for a registration's confirmation code.
// Scanning it opens the dashboard filtered to that registration.
func (a *App) QR() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if code == "" {
			http.NotFound(w, r)
			return
		}

		var reg models.Registration
		if err := a.DB.Where("code = ?", code).First(&reg).Error; err != nil {
			http.NotFound(w, r)
			return
		}

		url := "http://" + r.Host + "/admin?search=" + code
		png, err := qrcode.Encode(url, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
