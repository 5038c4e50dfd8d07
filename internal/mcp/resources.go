// ABOUTME: MCP resource implementations for the care tracker.
// ABOUTME: Provides ecca://today and ecca://kinds resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eccahealth/ecca/internal/models"
)

func (s *Server) registerResources() {
	// ecca://today - today's medications taken and upcoming events
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ecca://today",
		Name:        "Today's Care Summary",
		Description: "Medications taken today and the next upcoming events",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// ecca://kinds - the valid metric and activity kinds
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ecca://kinds",
		Name:        "Tracker Kinds",
		Description: "Valid health metric kinds and fitness activity kinds with labels and units",
		MIMEType:    "application/json",
	}, s.handleKindsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	userID, err := s.currentUser()
	if err != nil {
		return nil, err
	}

	logs, err := s.db.ListTodaysLogs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's logs: %w", err)
	}

	events, err := s.db.ListUpcomingEvents(userID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	result := map[string]any{
		"date":            time.Now().Format(models.DateLayout),
		"medications":     logs,
		"upcoming_events": events,
		"counts": map[string]int{
			"medications_taken": len(logs),
			"upcoming_events":   len(events),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ecca://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleKindsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	metricKinds := make([]map[string]string, 0, len(models.AllMetricKinds))
	for _, k := range models.AllMetricKinds {
		metricKinds = append(metricKinds, map[string]string{
			"kind":  string(k),
			"label": models.MetricLabels[k],
			"unit":  models.MetricUnits[k],
		})
	}

	activityKinds := make([]map[string]string, 0, len(models.AllActivityKinds))
	for _, k := range models.AllActivityKinds {
		activityKinds = append(activityKinds, map[string]string{
			"kind":  string(k),
			"label": models.ActivityLabels[k],
		})
	}

	result := map[string]any{
		"metric_kinds":   metricKinds,
		"activity_kinds": activityKinds,
		"frequencies":    models.FrequencySuggestions,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ecca://kinds",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
