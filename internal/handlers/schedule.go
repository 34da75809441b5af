package handlers

import (
	"net/http"

	svc "github.com/sunridge/campreg/internal/services"
)

type scheduleRow struct {
	ID          uint
	Name        string
	Season      string
	Description string
	DatesStr    string
	TimeStr     string
	Capacity    *int
	Enrolled    int64
}

// GET /campschedule — every session with its derived enrolled count.
// A store failure degrades to an empty schedule rather than an error page.
func (a *App) CampSchedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := svc.ListSessionsWithEnrollment(a.DB)
		if err != nil {
			a.Log.Errorw("schedule query failed", "err", err)
			sessions = nil
		}

		rows := make([]scheduleRow, 0, len(sessions))
		for _, s := range sessions {
			rows = append(rows, scheduleRow{
				ID:          s.ID,
				Name:        s.Name,
				Season:      s.Season,
				Description: s.Description,
				DatesStr:    fmtDate(s.StartDate) + " - " + fmtDate(s.EndDate),
				TimeStr:     s.StartTime + " - " + s.EndTime,
				Capacity:    s.Capacity,
				Enrolled:    s.Enrolled,
			})
		}

		a.render(w, "schedule.tmpl", map[string]any{
			"Title":    "Camp Schedule",
			"Sessions": rows,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}
