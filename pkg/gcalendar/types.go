package gcalendar

import "time"

// CreateEventRequest describes an event to create or overwrite.
type CreateEventRequest struct {
	CalendarID  string // "" means the primary calendar
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
