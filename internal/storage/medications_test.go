// ABOUTME: Tests for the medication repository and taken-logs.
// ABOUTME: Covers soft delete, ownership checks, and history retention.
package storage

import (
	"errors"
	"testing"
)

func createTestMedication(t *testing.T, db *DB, userID int64, name string) int64 {
	t.Helper()
	if err := db.CreateMedication(userID, name, "10mg", "Once daily", strPtr("8:00 AM"), nil); err != nil {
		t.Fatalf("CreateMedication failed: %v", err)
	}
	meds, err := db.ListMedications(userID)
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	for _, m := range meds {
		if m.Name == name {
			return m.ID
		}
	}
	t.Fatalf("medication %q not found after create", name)
	return 0
}

func TestCreateAndListMedications(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	createTestMedication(t, db, userID, "Metformin")
	createTestMedication(t, db, userID, "Lisinopril")

	meds, err := db.ListMedications(userID)
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	if len(meds) != 2 {
		t.Fatalf("expected 2 medications, got %d", len(meds))
	}

	// Alphabetical, not insertion order
	if meds[0].Name != "Lisinopril" || meds[1].Name != "Metformin" {
		t.Errorf("expected alphabetical order, got %q, %q", meds[0].Name, meds[1].Name)
	}
	if !meds[0].Active {
		t.Error("expected new medication to be active")
	}
	if meds[0].Times == nil || *meds[0].Times != "8:00 AM" {
		t.Errorf("times mismatch: got %v", meds[0].Times)
	}
}

func TestDeactivateMedicationKeepsHistory(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	medID := createTestMedication(t, db, userID, "Lisinopril")

	if err := db.LogTaken(medID, userID, strPtr("with breakfast")); err != nil {
		t.Fatalf("LogTaken failed: %v", err)
	}

	if err := db.DeactivateMedication(medID); err != nil {
		t.Fatalf("DeactivateMedication failed: %v", err)
	}

	// Dropped from listings
	meds, err := db.ListMedications(userID)
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	if len(meds) != 0 {
		t.Errorf("expected deactivated medication to be excluded, got %d", len(meds))
	}

	// Still fetchable directly, flagged inactive
	med, err := db.GetMedication(medID)
	if err != nil {
		t.Fatalf("GetMedication failed: %v", err)
	}
	if med.Active {
		t.Error("expected medication to be inactive")
	}

	// Logs remain reachable
	logs, err := db.ListMedicationLogs(medID, 0)
	if err != nil {
		t.Fatalf("ListMedicationLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log after deactivation, got %d", len(logs))
	}
	if logs[0].Notes == nil || *logs[0].Notes != "with breakfast" {
		t.Errorf("notes mismatch: got %v", logs[0].Notes)
	}
}

func TestLogTakenOwnership(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	otherID, err := db.CreateUser("Other", "other@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	medID := createTestMedication(t, db, userID, "Lisinopril")

	if err := db.LogTaken(medID, otherID, nil); !errors.Is(err, ErrOwnerMismatch) {
		t.Errorf("expected ErrOwnerMismatch, got %v", err)
	}
	if err := db.LogTaken(999, userID, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	logs, err := db.ListMedicationLogs(medID, 0)
	if err != nil {
		t.Fatalf("ListMedicationLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected no logs written on rejection, got %d", len(logs))
	}
}

func TestListTodaysLogs(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	medID := createTestMedication(t, db, userID, "Lisinopril")

	if err := db.LogTaken(medID, userID, nil); err != nil {
		t.Fatalf("LogTaken failed: %v", err)
	}

	logs, err := db.ListTodaysLogs(userID)
	if err != nil {
		t.Fatalf("ListTodaysLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log today, got %d", len(logs))
	}
	if logs[0].MedicationID != medID {
		t.Errorf("medication id mismatch: got %d, want %d", logs[0].MedicationID, medID)
	}
}
