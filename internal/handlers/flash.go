package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"saved":      "Saved.",
	"registered": "Registration received. You will hear from us once it has been reviewed.",
	"approved":   "Registration approved.",
	"rejected":   "Registration rejected.",
	"deleted":    "Deleted.",
}

var errText = map[string]string{
	"missing":       "Please fill in all required fields.",
	"invalid_date":  "Invalid date.",
	"invalid_login": "Invalid username or password.",
	"save_failed":   "We could not save your registration. Please try again.",
	"not_found":     "Record not found.",
}

// MakeFlash reads ?ok= / ?error= query params, or the explicit strings, and
// builds a Flash for the page banner.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("error")); raw != "" {
		key := strings.ToLower(raw)
		if t, ok := errText[key]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: raw}
	}
	if raw := strings.TrimSpace(q.Get("ok")); raw != "" {
		key := strings.ToLower(raw)
		if t, ok := okText[key]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: raw}
	}

	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
