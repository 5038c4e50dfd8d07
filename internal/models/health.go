// ABOUTME: HealthRecord model and MetricKind enum.
// ABOUTME: Values are free-form strings so composites like "120/80" fit.
package models

import "time"

// MetricKind is the closed set of health metrics the tracker records.
type MetricKind string

const (
	MetricBloodPressure MetricKind = "blood_pressure"
	MetricHeartRate     MetricKind = "heart_rate"
	MetricTemperature   MetricKind = "temperature"
	MetricGlucose       MetricKind = "glucose"
	MetricWeight        MetricKind = "weight"
)

// MetricLabels maps metric kinds to their display labels.
var MetricLabels = map[MetricKind]string{
	MetricBloodPressure: "Blood Pressure",
	MetricHeartRate:     "Heart Rate",
	MetricTemperature:   "Temperature",
	MetricGlucose:       "Blood Glucose",
	MetricWeight:        "Weight",
}

// MetricUnits maps metric kinds to their display units.
var MetricUnits = map[MetricKind]string{
	MetricBloodPressure: "mmHg",
	MetricHeartRate:     "bpm",
	MetricTemperature:   "°F",
	MetricGlucose:       "mg/dL",
	MetricWeight:        "lb",
}

// AllMetricKinds returns all valid metric kinds.
var AllMetricKinds = []MetricKind{
	MetricBloodPressure, MetricHeartRate, MetricTemperature,
	MetricGlucose, MetricWeight,
}

// IsValidMetricKind checks if a string is a valid metric kind.
func IsValidMetricKind(s string) bool {
	for _, k := range AllMetricKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// HealthRecord is a single logged health measurement.
type HealthRecord struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Kind       MetricKind `json:"type"`
	Value      string     `json:"value"`
	Notes      *string    `json:"notes,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}
