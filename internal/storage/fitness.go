// ABOUTME: Fitness activity CRUD scoped by owning user.
// ABOUTME: Optional numeric fields bind as NULLs via pointers.
package storage

import (
	"fmt"

	"github.com/eccahealth/ecca/internal/models"
)

// CreateFitnessActivity inserts an activity. Distance is in miles; the
// display unit conversion happens in the settings layer.
func (d *DB) CreateFitnessActivity(userID int64, kind models.ActivityKind, duration *int, distance *float64, calories *int, notes *string) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	_, err = conn.Exec(`
		INSERT INTO fitness_activities (user_id, activity_type, duration, distance, calories, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, string(kind), duration, distance, calories, notes,
	)
	if err != nil {
		return fmt.Errorf("create fitness activity: %w", err)
	}
	return nil
}

// ListFitnessActivities returns the user's activities, newest first.
func (d *DB) ListFitnessActivities(userID int64, limit int) ([]*models.FitnessActivity, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := conn.Query(`
		SELECT id, user_id, activity_type, duration, distance, calories, notes, recorded_at
		FROM fitness_activities WHERE user_id = ?
		ORDER BY recorded_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list fitness activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.FitnessActivity{}
	for rows.Next() {
		var a models.FitnessActivity
		var kind, recordedAt string
		if err := rows.Scan(&a.ID, &a.UserID, &kind, &a.DurationMinutes, &a.DistanceMiles, &a.Calories, &a.Notes, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan fitness activity: %w", err)
		}
		a.Kind = models.ActivityKind(kind)
		a.RecordedAt, err = parseTime(recordedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid recorded_at: %w", err)
		}
		activities = append(activities, &a)
	}

	return activities, rows.Err()
}

// DeleteFitnessActivity removes an activity by primary key.
func (d *DB) DeleteFitnessActivity(id int64) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	if _, err := conn.Exec(`DELETE FROM fitness_activities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete fitness activity: %w", err)
	}
	return nil
}
