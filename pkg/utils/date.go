package utils

import (
	"fmt"
	"time"
)

// PreviousDay returns the calendar day before t in UTC, formatted as
// YYYY-MM-DD. Market aggregates are keyed on that date.
func PreviousDay(t time.Time) string {
	return t.UTC().AddDate(0, 0, -1).Format("2006-01-02")
}

// RelativeTime renders how long ago t was relative to now, using the
// coarse buckets a news feed displays.
func RelativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	hours := int(diff.Hours())
	mins := int(diff.Minutes())

	switch {
	case hours > 24:
		return fmt.Sprintf("%d days ago", hours/24)
	case hours > 0:
		return fmt.Sprintf("%d hours ago", hours)
	case mins > 0:
		return fmt.Sprintf("%d min ago", mins)
	default:
		return "Just now"
	}
}
