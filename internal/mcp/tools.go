// ABOUTME: MCP tool implementations for the care tracker.
// ABOUTME: Covers health records, fitness, medications, and calendar events.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eccahealth/ecca/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_health_record",
		Description: "Record a health measurement (blood_pressure, heart_rate, temperature, glucose, weight)",
	}, s.handleAddHealthRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_health_records",
		Description: "List recent health records, newest first",
	}, s.handleListHealthRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_fitness_activity",
		Description: "Log a fitness activity (walking, running, cycling, swimming, yoga, strength)",
	}, s.handleAddFitnessActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_fitness_activities",
		Description: "List recent fitness activities, newest first",
	}, s.handleListFitnessActivities)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_medications",
		Description: "List active medications, alphabetical by name",
	}, s.handleListMedications)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "medication_taken",
		Description: "Mark a medication as taken right now",
	}, s.handleMedicationTaken)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "todays_medication_logs",
		Description: "List medications already taken today",
	}, s.handleTodaysLogs)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_calendar_event",
		Description: "Add a calendar event on a YYYY-MM-DD date",
	}, s.handleAddCalendarEvent)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_upcoming_events",
		Description: "List calendar events from today onward, soonest first",
	}, s.handleListUpcomingEvents)
}

// Tool input/output types

type addHealthRecordInput struct {
	Kind  string `json:"type" jsonschema:"Metric kind (blood_pressure, heart_rate, temperature, glucose, weight)"`
	Value string `json:"value" jsonschema:"Measured value; composites like 120/80 are fine"`
	Notes string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type addFitnessActivityInput struct {
	Kind            string  `json:"activity_type" jsonschema:"Activity kind (walking, running, cycling, swimming, yoga, strength)"`
	DurationMinutes int     `json:"duration,omitempty" jsonschema:"Duration in minutes"`
	DistanceMiles   float64 `json:"distance,omitempty" jsonschema:"Distance in miles"`
	Calories        int     `json:"calories,omitempty" jsonschema:"Calories burned"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type medicationTakenInput struct {
	MedicationID int64  `json:"medication_id" jsonschema:"Medication id from list_medications"`
	Notes        string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type addCalendarEventInput struct {
	Title     string `json:"title" jsonschema:"Event title"`
	EventDate string `json:"event_date" jsonschema:"Calendar date (YYYY-MM-DD)"`
	Time      string `json:"time,omitempty" jsonschema:"Display time like 2:30 PM"`
	Notes     string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleAddHealthRecord(ctx context.Context, req *mcp.CallToolRequest, input addHealthRecordInput) (*mcp.CallToolResult, simpleOutput, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if !models.IsValidMetricKind(input.Kind) {
		return nil, simpleOutput{}, fmt.Errorf("unknown metric kind: %s", input.Kind)
	}

	if err := s.db.CreateHealthRecord(userID, models.MetricKind(input.Kind), input.Value, optional(input.Notes)); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add health record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s: %s %s", input.Kind, input.Value, models.MetricUnits[models.MetricKind(input.Kind)]),
	}, nil
}

func (s *Server) handleListHealthRecords(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, nil, err
	}
	if input.Limit <= 0 {
		input.Limit = 20
	}

	records, err := s.db.ListHealthRecords(userID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list health records: %w", err)
	}
	if len(records) == 0 {
		return nil, map[string]any{"message": "No health records found."}, nil
	}
	return nil, records, nil
}

func (s *Server) handleAddFitnessActivity(ctx context.Context, req *mcp.CallToolRequest, input addFitnessActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if !models.IsValidActivityKind(input.Kind) {
		return nil, simpleOutput{}, fmt.Errorf("unknown activity kind: %s", input.Kind)
	}

	var duration *int
	if input.DurationMinutes > 0 {
		duration = &input.DurationMinutes
	}
	var distance *float64
	if input.DistanceMiles > 0 {
		distance = &input.DistanceMiles
	}
	var calories *int
	if input.Calories > 0 {
		calories = &input.Calories
	}

	if err := s.db.CreateFitnessActivity(userID, models.ActivityKind(input.Kind), duration, distance, calories, optional(input.Notes)); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add fitness activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s activity", input.Kind),
	}, nil
}

func (s *Server) handleListFitnessActivities(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, nil, err
	}
	if input.Limit <= 0 {
		input.Limit = 20
	}

	activities, err := s.db.ListFitnessActivities(userID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list fitness activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, map[string]any{"message": "No fitness activities found."}, nil
	}
	return nil, activities, nil
}

func (s *Server) handleListMedications(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, nil, err
	}

	meds, err := s.db.ListMedications(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list medications: %w", err)
	}
	if len(meds) == 0 {
		return nil, map[string]any{"message": "No active medications."}, nil
	}
	return nil, meds, nil
}

func (s *Server) handleMedicationTaken(ctx context.Context, req *mcp.CallToolRequest, input medicationTakenInput) (*mcp.CallToolResult, simpleOutput, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.db.LogTaken(input.MedicationID, userID, optional(input.Notes)); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log medication: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked medication %d as taken", input.MedicationID),
	}, nil
}

func (s *Server) handleTodaysLogs(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.db.ListTodaysLogs(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list today's logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, map[string]any{"message": "No medications taken today."}, nil
	}
	return nil, logs, nil
}

func (s *Server) handleAddCalendarEvent(ctx context.Context, req *mcp.CallToolRequest, input addCalendarEventInput) (*mcp.CallToolResult, simpleOutput, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.db.CreateCalendarEvent(userID, input.Title, input.EventDate, optional(input.Time), optional(input.Notes)); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add calendar event: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added event %q on %s", input.Title, input.EventDate),
	}, nil
}

func (s *Server) handleListUpcomingEvents(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, nil, err
	}

	events, err := s.db.ListUpcomingEvents(userID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	if len(events) == 0 {
		return nil, map[string]any{"message": "No upcoming events."}, nil
	}
	return nil, events, nil
}

// optional converts an empty string to a nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
