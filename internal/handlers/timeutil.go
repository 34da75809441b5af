package handlers

import (
	"os"
	"time"
)

// Camp timezone, used for real timestamps only. Date-only values (birthdates,
// session dates) are stored at midnight UTC and must be formatted in UTC, or
// any zone west of UTC would show the previous calendar day.
var campTZ *time.Location

func init() {
	name := os.Getenv("CAMP_TZ")
	if name == "" {
		name = "America/New_York"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		campTZ = time.UTC
		return
	}
	campTZ = loc
}

// Friendly calendar date, e.g. "Mon, 02 Jan 2006".
func fmtDate(d time.Time) string {
	return d.UTC().Format("Mon, 02 Jan 2006")
}

// ISO calendar date, e.g. "2006-01-02". Must stay in UTC: search tokens are
// matched against the same rendering.
func fmtISODate(d time.Time) string {
	return d.UTC().Format("2006-01-02")
}

// Wall-clock date in camp time, for CreatedAt and other real timestamps.
func fmtTimestamp(t time.Time) string {
	return t.In(campTZ).Format("Mon, 02 Jan 2006")
}
