package gcalendar

import "time"

// CreateEventRequest is the input for scheduling an all-day event for a
// dated task.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
