// ABOUTME: Scaled font sizes, theme palettes, and notification gating.
// ABOUTME: All derivations are pure functions over the settings record.
package settings

import "math"

// FontSizes are the scaled sizes for the common text roles.
type FontSizes struct {
	Title        int `json:"title"`
	SectionTitle int `json:"sectionTitle"`
	Body         int `json:"body"`
	Label        int `json:"label"`
	Caption      int `json:"caption"`
	Large        int `json:"large"`
}

// TextSizeMultiplier returns the scale factor for a text size preference.
// Unknown values scale as medium.
func TextSizeMultiplier(size TextSize) float64 {
	switch size {
	case TextSmall:
		return 0.9
	case TextLarge:
		return 1.15
	case TextExtraLarge:
		return 1.3
	default:
		return 1.0
	}
}

// ScaleFont scales a base size by the text size preference, rounded to the
// nearest integer.
func ScaleFont(baseSize int, size TextSize) int {
	return int(math.Round(float64(baseSize) * TextSizeMultiplier(size)))
}

// ScaledFonts returns the full scaled size table for a text size preference.
func ScaledFonts(size TextSize) FontSizes {
	return FontSizes{
		Title:        ScaleFont(24, size),
		SectionTitle: ScaleFont(20, size),
		Body:         ScaleFont(16, size),
		Label:        ScaleFont(14, size),
		Caption:      ScaleFont(12, size),
		Large:        ScaleFont(18, size),
	}
}

// Palette is the set of semantic color roles for a theme.
type Palette struct {
	Background     string `json:"background"`
	CardBackground string `json:"cardBackground"`
	Text           string `json:"text"`
	SecondaryText  string `json:"secondaryText"`
	Border         string `json:"border"`
	Primary        string `json:"primary"`
	Success        string `json:"success"`
	Warning        string `json:"warning"`
	Error          string `json:"error"`
}

// ThemeColors returns the palette for a theme. Light is the default.
func ThemeColors(theme Theme) Palette {
	if theme == ThemeDark {
		return Palette{
			Background:     "#1C1C1E",
			CardBackground: "#2C2C2E",
			Text:           "#FFFFFF",
			SecondaryText:  "#AEAEB2",
			Border:         "#38383A",
			Primary:        "#0A84FF",
			Success:        "#32D74B",
			Warning:        "#FF9F0A",
			Error:          "#FF453A",
		}
	}
	return Palette{
		Background:     "#F5F5F5",
		CardBackground: "#FFFFFF",
		Text:           "#000000",
		SecondaryText:  "#666666",
		Border:         "#E5E5EA",
		Primary:        "#007AFF",
		Success:        "#34C759",
		Warning:        "#FF9500",
		Error:          "#FF3B30",
	}
}

// NotificationKind selects a per-kind reminder toggle.
type NotificationKind string

const (
	NotificationActivity   NotificationKind = "activity"
	NotificationMedication NotificationKind = "medication"
)

// ShouldShowNotification gates a reminder on the global toggle first, then
// the per-kind toggle.
func ShouldShowNotification(s AppSettings, kind NotificationKind) bool {
	if !s.Notifications {
		return false
	}
	switch kind {
	case NotificationActivity:
		return s.ActivityReminders
	case NotificationMedication:
		return s.MedicationReminders
	default:
		return false
	}
}
