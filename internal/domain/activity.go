package domain

import "time"

// DateLayout is the only accepted format for activity dates.
const DateLayout = "2006-01-02"

// Activity is a volunteering slot visitors can register for.
type Activity struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Location    string
	// MaxVolunteers is informational only; registrations are accepted past it.
	MaxVolunteers *int
}
