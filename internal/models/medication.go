// ABOUTME: Medication and MedicationLog models.
// ABOUTME: Medications soft-delete via Active so log history stays joinable.
package models

import "time"

// FrequencySuggestions are the labels offered for medication schedules.
// Frequency itself is free-form and not constrained to this set.
var FrequencySuggestions = []string{
	"Once daily",
	"Twice daily",
	"Three times daily",
	"Every other day",
	"Weekly",
	"As needed",
}

// Medication is a prescribed or over-the-counter medication.
// Deactivated medications keep their row so past logs remain attached.
type Medication struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Times     *string   `json:"times,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// MedicationLog records one "mark taken" action. Rows are append-only.
type MedicationLog struct {
	ID           int64     `json:"id"`
	MedicationID int64     `json:"medication_id"`
	UserID       int64     `json:"user_id"`
	TakenAt      time.Time `json:"taken_at"`
	Notes        *string   `json:"notes,omitempty"`
}
