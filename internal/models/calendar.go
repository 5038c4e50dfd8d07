// ABOUTME: CalendarEvent model for appointments and reminders.
// ABOUTME: Event dates are plain YYYY-MM-DD strings with no time zone.
package models

import "time"

// DateLayout is the calendar date format used for event_date columns.
const DateLayout = "2006-01-02"

// CalendarEvent is an appointment or reminder on a calendar date.
// Time is a free-form display string ("2:30 PM"), not parsed.
type CalendarEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	EventDate string    `json:"event_date"`
	Time      *string   `json:"time,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
