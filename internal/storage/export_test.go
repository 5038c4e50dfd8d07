// ABOUTME: Tests for snapshot export and import.
// ABOUTME: Verifies the round trip keeps taken-logs attached through id remaps.
package storage

import (
	"strings"
	"testing"

	"github.com/eccahealth/ecca/internal/models"
)

func seedExportUser(t *testing.T, db *DB) int64 {
	t.Helper()
	userID := createTestUser(t, db)

	if err := db.CreateHealthRecord(userID, models.MetricBloodPressure, "120/80", nil); err != nil {
		t.Fatalf("CreateHealthRecord failed: %v", err)
	}
	if err := db.CreateFitnessActivity(userID, models.ActivityWalking, intPtr(30), floatPtr(1.2), nil, nil); err != nil {
		t.Fatalf("CreateFitnessActivity failed: %v", err)
	}
	if err := db.CreateCalendarEvent(userID, "Checkup", "2030-05-10", nil, nil); err != nil {
		t.Fatalf("CreateCalendarEvent failed: %v", err)
	}

	medID := createTestMedication(t, db, userID, "Lisinopril")
	if err := db.LogTaken(medID, userID, nil); err != nil {
		t.Fatalf("LogTaken failed: %v", err)
	}
	// A stopped medication with history must still travel in the snapshot
	stoppedID := createTestMedication(t, db, userID, "Metformin")
	if err := db.LogTaken(stoppedID, userID, nil); err != nil {
		t.Fatalf("LogTaken failed: %v", err)
	}
	if err := db.DeactivateMedication(stoppedID); err != nil {
		t.Fatalf("DeactivateMedication failed: %v", err)
	}

	return userID
}

func TestGetAllData(t *testing.T) {
	db := setupTestDB(t)
	userID := seedExportUser(t, db)

	data, err := db.GetAllData(userID)
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	if data.Version != "1.0" {
		t.Errorf("version mismatch: got %q", data.Version)
	}
	if data.SnapshotID == "" {
		t.Error("expected a snapshot id")
	}
	if len(data.HealthRecords) != 1 {
		t.Errorf("expected 1 health record, got %d", len(data.HealthRecords))
	}
	if len(data.FitnessActivities) != 1 {
		t.Errorf("expected 1 fitness activity, got %d", len(data.FitnessActivities))
	}
	if len(data.CalendarEvents) != 1 {
		t.Errorf("expected 1 calendar event, got %d", len(data.CalendarEvents))
	}
	if len(data.Medications) != 2 {
		t.Errorf("expected both medications in export, got %d", len(data.Medications))
	}
	if len(data.MedicationLogs) != 2 {
		t.Errorf("expected 2 medication logs, got %d", len(data.MedicationLogs))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	userID := seedExportUser(t, db)

	raw, err := db.ExportJSON(userID)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	// Import into a fresh database under a freshly created user
	db2 := setupTestDB(t)
	newUser, err := db2.CreateUser("Restored", "restored@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := db2.ImportJSON(newUser, raw); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	records, err := db2.ListHealthRecords(newUser, 0)
	if err != nil {
		t.Fatalf("ListHealthRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].Value != "120/80" {
		t.Errorf("health records did not survive round trip: %d rows", len(records))
	}

	// Only the active medication lists, but the stopped one keeps its log
	meds, err := db2.ListMedications(newUser)
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	if len(meds) != 1 || meds[0].Name != "Lisinopril" {
		t.Fatalf("expected only Lisinopril active after import, got %d rows", len(meds))
	}
	logs, err := db2.ListMedicationLogs(meds[0].ID, 0)
	if err != nil {
		t.Fatalf("ListMedicationLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected imported log to follow its medication, got %d", len(logs))
	}

	todays, err := db2.ListTodaysLogs(newUser)
	if err != nil {
		t.Fatalf("ListTodaysLogs failed: %v", err)
	}
	if len(todays) != 2 {
		t.Errorf("expected 2 logs today after import, got %d", len(todays))
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	userID := seedExportUser(t, db)

	raw, err := db.ExportYAML(userID)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "health_records:") {
		t.Error("expected health_records section in YAML")
	}
	if !strings.Contains(out, "tool: ecca") {
		t.Error("expected tool marker in YAML")
	}
}
