// ABOUTME: Tests for fitness activity CRUD.
// ABOUTME: Covers optional field round-trips and newest-first ordering.
package storage

import (
	"testing"

	"github.com/eccahealth/ecca/internal/models"
)

func TestCreateAndListFitnessActivities(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	err := db.CreateFitnessActivity(userID, models.ActivityWalking, intPtr(30), floatPtr(1.5), intPtr(120), strPtr("around the block"))
	if err != nil {
		t.Fatalf("CreateFitnessActivity failed: %v", err)
	}
	if err := db.CreateFitnessActivity(userID, models.ActivityYoga, intPtr(45), nil, nil, nil); err != nil {
		t.Fatalf("CreateFitnessActivity failed: %v", err)
	}

	activities, err := db.ListFitnessActivities(userID, 0)
	if err != nil {
		t.Fatalf("ListFitnessActivities failed: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}

	// Newest first
	if activities[0].Kind != models.ActivityYoga {
		t.Errorf("expected yoga first, got %s", activities[0].Kind)
	}
	if activities[0].DistanceMiles != nil {
		t.Errorf("expected nil distance, got %v", *activities[0].DistanceMiles)
	}

	walk := activities[1]
	if walk.DurationMinutes == nil || *walk.DurationMinutes != 30 {
		t.Errorf("duration mismatch: got %v", walk.DurationMinutes)
	}
	if walk.DistanceMiles == nil || *walk.DistanceMiles != 1.5 {
		t.Errorf("distance mismatch: got %v", walk.DistanceMiles)
	}
	if walk.Calories == nil || *walk.Calories != 120 {
		t.Errorf("calories mismatch: got %v", walk.Calories)
	}
}

func TestDeleteFitnessActivity(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	if err := db.CreateFitnessActivity(userID, models.ActivityRunning, intPtr(20), nil, nil, nil); err != nil {
		t.Fatalf("CreateFitnessActivity failed: %v", err)
	}
	activities, err := db.ListFitnessActivities(userID, 0)
	if err != nil {
		t.Fatalf("ListFitnessActivities failed: %v", err)
	}

	if err := db.DeleteFitnessActivity(activities[0].ID); err != nil {
		t.Fatalf("DeleteFitnessActivity failed: %v", err)
	}

	activities, err = db.ListFitnessActivities(userID, 0)
	if err != nil {
		t.Fatalf("ListFitnessActivities failed: %v", err)
	}
	if len(activities) != 0 {
		t.Errorf("expected 0 activities after delete, got %d", len(activities))
	}
}
