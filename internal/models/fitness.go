// ABOUTME: FitnessActivity model and ActivityKind enum.
// ABOUTME: Distance is stored in miles regardless of the display unit setting.
package models

import "time"

// ActivityKind is the closed set of fitness activity types.
type ActivityKind string

const (
	ActivityWalking  ActivityKind = "walking"
	ActivityRunning  ActivityKind = "running"
	ActivityCycling  ActivityKind = "cycling"
	ActivitySwimming ActivityKind = "swimming"
	ActivityYoga     ActivityKind = "yoga"
	ActivityStrength ActivityKind = "strength"
)

// ActivityLabels maps activity kinds to their display labels.
var ActivityLabels = map[ActivityKind]string{
	ActivityWalking:  "Walking",
	ActivityRunning:  "Running",
	ActivityCycling:  "Cycling",
	ActivitySwimming: "Swimming",
	ActivityYoga:     "Yoga",
	ActivityStrength: "Strength Training",
}

// AllActivityKinds returns all valid activity kinds.
var AllActivityKinds = []ActivityKind{
	ActivityWalking, ActivityRunning, ActivityCycling,
	ActivitySwimming, ActivityYoga, ActivityStrength,
}

// IsValidActivityKind checks if a string is a valid activity kind.
func IsValidActivityKind(s string) bool {
	for _, k := range AllActivityKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// FitnessActivity is a single logged exercise session.
type FitnessActivity struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"user_id"`
	Kind            ActivityKind `json:"activity_type"`
	DurationMinutes *int         `json:"duration,omitempty"`
	DistanceMiles   *float64     `json:"distance,omitempty"`
	Calories        *int         `json:"calories,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
	RecordedAt      time.Time    `json:"recorded_at"`
}
