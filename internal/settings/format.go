// ABOUTME: Pure unit conversion and formatting helpers.
// ABOUTME: Distances are stored in miles and weights in pounds.
package settings

import (
	"fmt"
	"strings"
)

const (
	milesToKm  = 1.60934
	poundsToKg = 0.453592
)

// FormatDistance renders a stored miles value in the preferred units.
// A nil or zero input returns "0 mi" under both unit systems; callers
// depend on that placeholder, so it is pinned by tests.
func FormatDistance(miles *float64, units Units) string {
	if miles == nil || *miles == 0 {
		return "0 mi"
	}
	if units == UnitsMetric {
		return fmt.Sprintf("%.2f km", *miles*milesToKm)
	}
	return fmt.Sprintf("%.2f mi", *miles)
}

// FormatWeight renders a stored pounds value in the preferred units.
// Nil/zero yields "0 lb" regardless of units, as with FormatDistance.
func FormatWeight(pounds *float64, units Units) string {
	if pounds == nil || *pounds == 0 {
		return "0 lb"
	}
	if units == UnitsMetric {
		return fmt.Sprintf("%.1f kg", *pounds*poundsToKg)
	}
	return fmt.Sprintf("%.1f lb", *pounds)
}

// DistanceUnit returns the distance unit label for the preference.
func DistanceUnit(units Units) string {
	if units == UnitsMetric {
		return "km"
	}
	return "mi"
}

// WeightUnit returns the weight unit label for the preference.
func WeightUnit(units Units) string {
	if units == UnitsMetric {
		return "kg"
	}
	return "lb"
}

// FormatPhoneNumber renders a 10-digit number as (XXX) XXX-XXXX; anything
// else passes through unchanged.
func FormatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()
	if len(cleaned) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", cleaned[:3], cleaned[3:6], cleaned[6:])
}
