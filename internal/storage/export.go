// ABOUTME: Export and import of one user's data as a JSON or YAML snapshot.
// ABOUTME: Import remaps medication ids so taken-logs stay attached.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/eccahealth/ecca/internal/models"
)

// ExportData is the full snapshot format for one user's data.
type ExportData struct {
	Version           string                    `json:"version" yaml:"version"`
	SnapshotID        string                    `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt        time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool              string                    `json:"tool" yaml:"tool"`
	HealthRecords     []*models.HealthRecord    `json:"health_records" yaml:"health_records"`
	FitnessActivities []*models.FitnessActivity `json:"fitness_activities" yaml:"fitness_activities"`
	CalendarEvents    []*models.CalendarEvent   `json:"calendar_events" yaml:"calendar_events"`
	Medications       []*models.Medication      `json:"medications" yaml:"medications"`
	MedicationLogs    []*models.MedicationLog   `json:"medication_logs" yaml:"medication_logs"`
}

// GetAllData retrieves everything the user owns for export. Deactivated
// medications are included so the snapshot keeps log history intact.
func (d *DB) GetAllData(userID int64) (*ExportData, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}

	records, err := d.ListHealthRecords(userID, exportListCap)
	if err != nil {
		return nil, fmt.Errorf("export health records: %w", err)
	}
	activities, err := d.ListFitnessActivities(userID, exportListCap)
	if err != nil {
		return nil, fmt.Errorf("export fitness activities: %w", err)
	}
	events, err := d.ListCalendarEvents(userID)
	if err != nil {
		return nil, fmt.Errorf("export calendar events: %w", err)
	}

	medRows, err := conn.Query(`
		SELECT id, user_id, name, dosage, frequency, times, notes, active, created_at
		FROM medications WHERE user_id = ? ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("export medications: %w", err)
	}
	defer medRows.Close()
	meds, err := scanMedications(medRows)
	if err != nil {
		return nil, err
	}

	logs, err := d.queryLogs(`
		SELECT id, medication_id, user_id, taken_at, notes
		FROM medication_logs WHERE user_id = ?
		ORDER BY taken_at ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:           "1.0",
		SnapshotID:        uuid.NewString(),
		ExportedAt:        time.Now().UTC(),
		Tool:              "ecca",
		HealthRecords:     records,
		FitnessActivities: activities,
		CalendarEvents:    events,
		Medications:       meds,
		MedicationLogs:    logs,
	}, nil
}

// exportListCap bounds exports of timestamp-ordered tables.
const exportListCap = 100000

// ImportData inserts a snapshot's rows under the given user. Ids are
// reassigned; medication logs follow their medication through the remap.
func (d *DB) ImportData(userID int64, data *ExportData) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	for _, r := range data.HealthRecords {
		_, err := conn.Exec(`
			INSERT INTO health_records (user_id, type, value, notes, recorded_at)
			VALUES (?, ?, ?, ?, ?)`,
			userID, string(r.Kind), r.Value, r.Notes, r.RecordedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("import health record: %w", err)
		}
	}

	for _, a := range data.FitnessActivities {
		_, err := conn.Exec(`
			INSERT INTO fitness_activities (user_id, activity_type, duration, distance, calories, notes, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			userID, string(a.Kind), a.DurationMinutes, a.DistanceMiles, a.Calories, a.Notes,
			a.RecordedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("import fitness activity: %w", err)
		}
	}

	for _, e := range data.CalendarEvents {
		_, err := conn.Exec(`
			INSERT INTO calendar_events (user_id, title, event_date, time, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			userID, e.Title, e.EventDate, e.Time, e.Notes, e.CreatedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("import calendar event: %w", err)
		}
	}

	medIDs := make(map[int64]int64, len(data.Medications))
	for _, m := range data.Medications {
		active := 0
		if m.Active {
			active = 1
		}
		res, err := conn.Exec(`
			INSERT INTO medications (user_id, name, dosage, frequency, times, notes, active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			userID, m.Name, m.Dosage, m.Frequency, m.Times, m.Notes, active,
			m.CreatedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("import medication: %w", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("import medication id: %w", err)
		}
		medIDs[m.ID] = newID
	}

	for _, l := range data.MedicationLogs {
		medID, ok := medIDs[l.MedicationID]
		if !ok {
			// Log for a medication absent from the snapshot - skip
			continue
		}
		_, err := conn.Exec(`
			INSERT INTO medication_logs (medication_id, user_id, taken_at, notes)
			VALUES (?, ?, ?, ?)`,
			medID, userID, l.TakenAt.UTC().Format(timeLayout), l.Notes)
		if err != nil {
			return fmt.Errorf("import medication log: %w", err)
		}
	}

	return nil
}

// ExportJSON exports one user's data as JSON.
func (d *DB) ExportJSON(userID int64) ([]byte, error) {
	data, err := d.GetAllData(userID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports one user's data as YAML.
func (d *DB) ExportYAML(userID int64) ([]byte, error) {
	data, err := d.GetAllData(userID)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports a snapshot from JSON bytes under the given user.
func (d *DB) ImportJSON(userID int64, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return d.ImportData(userID, &data)
}
