// ABOUTME: Medication repository with soft delete and taken-log history.
// ABOUTME: Deactivated medications drop out of listings but keep their logs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eccahealth/ecca/internal/models"
)

// CreateMedication inserts a medication, active by default.
func (d *DB) CreateMedication(userID int64, name, dosage, frequency string, times, notes *string) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	_, err = conn.Exec(`
		INSERT INTO medications (user_id, name, dosage, frequency, times, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, name, dosage, frequency, times, notes,
	)
	if err != nil {
		return fmt.Errorf("create medication: %w", err)
	}
	return nil
}

// ListMedications returns the user's active medications, alphabetical by
// name. Deactivated rows are excluded; their history stays reachable via
// ListMedicationLogs.
func (d *DB) ListMedications(userID int64) ([]*models.Medication, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(`
		SELECT id, user_id, name, dosage, frequency, times, notes, active, created_at
		FROM medications WHERE user_id = ? AND active = 1
		ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	return scanMedications(rows)
}

// GetMedication fetches one medication by id, active or not.
func (d *DB) GetMedication(id int64) (*models.Medication, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(`
		SELECT id, user_id, name, dosage, frequency, times, notes, active, created_at
		FROM medications WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get medication: %w", err)
	}
	defer rows.Close()

	meds, err := scanMedications(rows)
	if err != nil {
		return nil, err
	}
	if len(meds) == 0 {
		return nil, ErrNotFound
	}
	return meds[0], nil
}

// DeactivateMedication soft-deletes a medication: the row persists so
// MedicationLog history remains joinable.
func (d *DB) DeactivateMedication(id int64) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	if _, err := conn.Exec(`UPDATE medications SET active = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deactivate medication: %w", err)
	}
	return nil
}

// LogTaken records a "mark taken" action. The medication must exist and be
// owned by userID; a mismatch is rejected rather than written.
func (d *DB) LogTaken(medicationID, userID int64, notes *string) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	med, err := d.GetMedication(medicationID)
	if err != nil {
		return err
	}
	if med.UserID != userID {
		return ErrOwnerMismatch
	}

	_, err = conn.Exec(`
		INSERT INTO medication_logs (medication_id, user_id, notes)
		VALUES (?, ?, ?)`,
		medicationID, userID, notes,
	)
	if err != nil {
		return fmt.Errorf("log medication taken: %w", err)
	}
	return nil
}

// ListMedicationLogs returns logs for one medication, newest first.
func (d *DB) ListMedicationLogs(medicationID int64, limit int) ([]*models.MedicationLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return d.queryLogs(`
		SELECT id, medication_id, user_id, taken_at, notes
		FROM medication_logs WHERE medication_id = ?
		ORDER BY taken_at DESC, id DESC LIMIT ?`, medicationID, limit)
}

// ListTodaysLogs returns the user's logs whose taken_at falls on the
// current local calendar date (converted from the UTC-stored value).
func (d *DB) ListTodaysLogs(userID int64) ([]*models.MedicationLog, error) {
	today := time.Now().Format(models.DateLayout)
	return d.queryLogs(`
		SELECT id, medication_id, user_id, taken_at, notes
		FROM medication_logs WHERE user_id = ? AND DATE(taken_at, 'localtime') = ?
		ORDER BY taken_at DESC, id DESC`, userID, today)
}

func (d *DB) queryLogs(query string, args ...any) ([]*models.MedicationLog, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list medication logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.MedicationLog{}
	for rows.Next() {
		var l models.MedicationLog
		var takenAt string
		if err := rows.Scan(&l.ID, &l.MedicationID, &l.UserID, &takenAt, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan medication log: %w", err)
		}
		l.TakenAt, err = parseTime(takenAt)
		if err != nil {
			return nil, fmt.Errorf("invalid taken_at: %w", err)
		}
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

func scanMedications(rows *sql.Rows) ([]*models.Medication, error) {
	meds := []*models.Medication{}
	for rows.Next() {
		var m models.Medication
		var active int
		var createdAt string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.Times, &m.Notes, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		m.Active = active != 0
		var err error
		m.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at: %w", err)
		}
		meds = append(meds, &m)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return meds, nil
}
