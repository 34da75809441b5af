package handlers

import (
	"net/http"
	"strings"

	"github.com/sunridge/campreg/internal/models"
	svc "github.com/sunridge/campreg/internal/services"
)

type dashboardRow struct {
	ID          uint
	Code        string
	ChildName   string
	ParentName  string
	Email       string
	Phone       string
	BirthStr    string
	CreatedStr  string
	SessionName string
	Status      string
	AdminNotes  string
}

// GET /admin (+ ?search=) — the review dashboard, split into pending and
// processed. A store failure degrades to an empty dashboard.
func (a *App) AdminDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("search"))

		result, err := svc.SearchRegistrations(a.DB, query)
		if err != nil {
			a.Log.Errorw("dashboard search failed", "err", err)
			result = svc.SearchResult{}
		}

		a.render(w, "admin/dashboard.tmpl", map[string]any{
			"Title":     "Admin Dashboard",
			"Search":    query,
			"Pending":   dashboardRows(result.Pending),
			"Processed": dashboardRows(result.Processed),
			"Emails":    strings.Join(result.Emails, ", "),
			"Flash":     MakeFlash(r, "", ""),
		})
	}
}

func dashboardRows(regs []models.Registration) []dashboardRow {
	rows := make([]dashboardRow, 0, len(regs))
	for i := range regs {
		reg := &regs[i]
		row := dashboardRow{
			ID:         reg.ID,
			Code:       reg.Code,
			ChildName:  reg.FirstName + " " + reg.LastName,
			ParentName: reg.ChildProfile.Parent.FirstName + " " + reg.ChildProfile.Parent.LastName,
			Email:      reg.Email,
			Phone:      reg.Phone,
			BirthStr:   fmtISODate(reg.BirthDate),
			CreatedStr: fmtTimestamp(reg.CreatedAt),
			Status:     reg.Status,
			AdminNotes: reg.AdminNotes,
		}
		if reg.Session != nil {
			row.SessionName = reg.Session.Name
		}
		rows = append(rows, row)
	}
	return rows
}
