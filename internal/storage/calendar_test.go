// ABOUTME: Tests for calendar event queries.
// ABOUTME: Covers chronological order, month ranges, and the upcoming window.
package storage

import (
	"testing"
	"time"

	"github.com/eccahealth/ecca/internal/models"
)

func TestCalendarEventsChronological(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	// Inserted out of date order on purpose
	if err := db.CreateCalendarEvent(userID, "Later", "2030-06-15", nil, nil); err != nil {
		t.Fatalf("CreateCalendarEvent failed: %v", err)
	}
	if err := db.CreateCalendarEvent(userID, "Sooner", "2030-01-02", strPtr("10:30 AM"), nil); err != nil {
		t.Fatalf("CreateCalendarEvent failed: %v", err)
	}

	events, err := db.ListCalendarEvents(userID)
	if err != nil {
		t.Fatalf("ListCalendarEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Title != "Sooner" {
		t.Errorf("expected date order, got %q first", events[0].Title)
	}
	if events[0].Time == nil || *events[0].Time != "10:30 AM" {
		t.Errorf("time mismatch: got %v", events[0].Time)
	}
}

func TestListEventsByMonth(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	db.CreateCalendarEvent(userID, "In month", "2030-03-15", nil, nil)
	db.CreateCalendarEvent(userID, "Last day", "2030-03-31", nil, nil)
	db.CreateCalendarEvent(userID, "Day before", "2030-02-28", nil, nil)
	db.CreateCalendarEvent(userID, "Day after", "2030-04-01", nil, nil)

	events, err := db.ListEventsByMonth(userID, 2030, time.March)
	if err != nil {
		t.Fatalf("ListEventsByMonth failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events in March, got %d", len(events))
	}
	if events[0].Title != "In month" || events[1].Title != "Last day" {
		t.Errorf("unexpected month contents: %q, %q", events[0].Title, events[1].Title)
	}
}

func TestListUpcomingEvents(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	today := time.Now().Format(models.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(models.DateLayout)

	db.CreateCalendarEvent(userID, "Past", yesterday, nil, nil)
	db.CreateCalendarEvent(userID, "Today", today, nil, nil)
	db.CreateCalendarEvent(userID, "Next week", nextWeek, nil, nil)

	events, err := db.ListUpcomingEvents(userID, 0)
	if err != nil {
		t.Fatalf("ListUpcomingEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(events))
	}

	// Today counts as upcoming; nothing earlier does
	if events[0].Title != "Today" {
		t.Errorf("expected today's event first, got %q", events[0].Title)
	}
	for _, e := range events {
		if e.EventDate < today {
			t.Errorf("event %q is before today", e.Title)
		}
	}

	events, err = db.ListUpcomingEvents(userID, 1)
	if err != nil {
		t.Fatalf("ListUpcomingEvents with limit failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
}

func TestDeleteCalendarEvent(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	if err := db.CreateCalendarEvent(userID, "Checkup", "2030-05-10", nil, nil); err != nil {
		t.Fatalf("CreateCalendarEvent failed: %v", err)
	}
	events, err := db.ListCalendarEvents(userID)
	if err != nil {
		t.Fatalf("ListCalendarEvents failed: %v", err)
	}

	if err := db.DeleteCalendarEvent(events[0].ID); err != nil {
		t.Fatalf("DeleteCalendarEvent failed: %v", err)
	}

	events, err = db.ListCalendarEvents(userID)
	if err != nil {
		t.Fatalf("ListCalendarEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected 0 events after delete, got %d", len(events))
	}
}
