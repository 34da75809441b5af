package services

import (
	"time"

	"gorm.io/gorm"
)

// SessionEnrollment is one row of the public schedule: a session plus its
// derived enrolled count.
type SessionEnrollment struct {
	ID          uint
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   string
	EndTime     string
	Capacity    *int
	Season      string
	Enrolled    int64
}

// ListSessionsWithEnrollment returns every session with the count of its
// non-rejected registrations (pending counts toward enrollment; only
// rejected is excluded). Sessions with no registrations report 0.
//
// The count is derived on every call, never stored, so it cannot drift
// under concurrent admin edits. Ordered by start date, ties by id.
func ListSessionsWithEnrollment(gdb *gorm.DB) ([]SessionEnrollment, error) {
	var rows []SessionEnrollment
	err := gdb.Table("sessions AS s").
		Select(`s.id, s.name, s.description, s.start_date, s.end_date, s.start_time, s.end_time, s.capacity, s.season,
			COALESCE(SUM(CASE WHEN r.status <> 'rejected' THEN 1 ELSE 0 END), 0) AS enrolled`).
		Joins(`LEFT JOIN registrations r ON r.session_id = s.id`).
		Group("s.id").
		Order("s.start_date ASC, s.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
