// ABOUTME: Health record CRUD scoped by owning user.
// ABOUTME: Hard delete by id; listings are most-recent-first.
package storage

import (
	"fmt"

	"github.com/eccahealth/ecca/internal/models"
)

// defaultListLimit caps listings for timestamp-ordered entities.
const defaultListLimit = 50

// CreateHealthRecord inserts a health record. recorded_at is set by the
// store's own clock.
func (d *DB) CreateHealthRecord(userID int64, kind models.MetricKind, value string, notes *string) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	_, err = conn.Exec(
		`INSERT INTO health_records (user_id, type, value, notes) VALUES (?, ?, ?, ?)`,
		userID, string(kind), value, notes,
	)
	if err != nil {
		return fmt.Errorf("create health record: %w", err)
	}
	return nil
}

// ListHealthRecords returns the user's records, newest first. A non-positive
// limit falls back to the default cap. No rows is an empty slice, not an error.
func (d *DB) ListHealthRecords(userID int64, limit int) ([]*models.HealthRecord, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := conn.Query(`
		SELECT id, user_id, type, value, notes, recorded_at
		FROM health_records WHERE user_id = ?
		ORDER BY recorded_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	defer rows.Close()

	records := []*models.HealthRecord{}
	for rows.Next() {
		var r models.HealthRecord
		var kind, recordedAt string
		if err := rows.Scan(&r.ID, &r.UserID, &kind, &r.Value, &r.Notes, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		r.Kind = models.MetricKind(kind)
		r.RecordedAt, err = parseTime(recordedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid recorded_at: %w", err)
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}

// DeleteHealthRecord removes a record by primary key. Ownership scoping is
// the caller's responsibility.
func (d *DB) DeleteHealthRecord(id int64) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	if _, err := conn.Exec(`DELETE FROM health_records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete health record: %w", err)
	}
	return nil
}
