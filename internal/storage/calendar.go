// ABOUTME: Calendar event CRUD plus month-range and upcoming queries.
// ABOUTME: Dates compare lexicographically as YYYY-MM-DD strings.
package storage

import (
	"fmt"
	"time"

	"github.com/eccahealth/ecca/internal/models"
)

// CreateCalendarEvent inserts an event. eventDate is a YYYY-MM-DD string;
// time is a free-form display string.
func (d *DB) CreateCalendarEvent(userID int64, title, eventDate string, timeStr, notes *string) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	_, err = conn.Exec(`
		INSERT INTO calendar_events (user_id, title, event_date, time, notes)
		VALUES (?, ?, ?, ?, ?)`,
		userID, title, eventDate, timeStr, notes,
	)
	if err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}
	return nil
}

// ListCalendarEvents returns all of the user's events in chronological
// order. Calendars are inherently small, so there is no cap.
func (d *DB) ListCalendarEvents(userID int64) ([]*models.CalendarEvent, error) {
	return d.queryEvents(`
		SELECT id, user_id, title, event_date, time, notes, created_at
		FROM calendar_events WHERE user_id = ?
		ORDER BY event_date ASC, id ASC`, userID)
}

// ListEventsByMonth returns the user's events within one calendar month.
func (d *DB) ListEventsByMonth(userID int64, year int, month time.Month) ([]*models.CalendarEvent, error) {
	start := fmt.Sprintf("%04d-%02d-01", year, int(month))
	end := fmt.Sprintf("%04d-%02d-31", year, int(month))
	return d.queryEvents(`
		SELECT id, user_id, title, event_date, time, notes, created_at
		FROM calendar_events WHERE user_id = ? AND event_date BETWEEN ? AND ?
		ORDER BY event_date ASC, id ASC`, userID, start, end)
}

// ListUpcomingEvents returns events on or after the current local date,
// soonest first. A non-positive limit falls back to 10.
func (d *DB) ListUpcomingEvents(userID int64, limit int) ([]*models.CalendarEvent, error) {
	if limit <= 0 {
		limit = 10
	}
	today := time.Now().Format(models.DateLayout)
	return d.queryEvents(`
		SELECT id, user_id, title, event_date, time, notes, created_at
		FROM calendar_events WHERE user_id = ? AND event_date >= ?
		ORDER BY event_date ASC, id ASC LIMIT ?`, userID, today, limit)
}

// DeleteCalendarEvent removes an event by primary key.
func (d *DB) DeleteCalendarEvent(id int64) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	if _, err := conn.Exec(`DELETE FROM calendar_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}

func (d *DB) queryEvents(query string, args ...any) ([]*models.CalendarEvent, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	events := []*models.CalendarEvent{}
	for rows.Next() {
		var e models.CalendarEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.EventDate, &e.Time, &e.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		e.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at: %w", err)
		}
		events = append(events, &e)
	}

	return events, rows.Err()
}
