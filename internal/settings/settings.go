// ABOUTME: Settings and emergency contact persistence in the secure store.
// ABOUTME: Absence or a corrupt blob yields the fixed defaults, never an error.
package settings

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/eccahealth/ecca/internal/securestore"
)

// TextSize is the display text scale preference.
type TextSize string

const (
	TextSmall      TextSize = "small"
	TextMedium     TextSize = "medium"
	TextLarge      TextSize = "large"
	TextExtraLarge TextSize = "extra-large"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Units is the measurement unit preference.
type Units string

const (
	UnitsImperial Units = "imperial"
	UnitsMetric   Units = "metric"
)

// AppSettings is the single serialized preferences record, stored as one
// JSON blob under a fixed keystore key.
type AppSettings struct {
	TextSize            TextSize `json:"textSize"`
	Theme               Theme    `json:"theme"`
	Units               Units    `json:"units"`
	Notifications       bool     `json:"notifications"`
	ActivityReminders   bool     `json:"activityReminders"`
	MedicationReminders bool     `json:"medicationReminders"`
}

// DefaultSettings returns the fixed default record.
func DefaultSettings() AppSettings {
	return AppSettings{
		TextSize:            TextMedium,
		Theme:               ThemeLight,
		Units:               UnitsImperial,
		Notifications:       true,
		ActivityReminders:   true,
		MedicationReminders: true,
	}
}

// EmergencyContact is the person called from the profile screen.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Service persists preferences and the emergency contact.
type Service struct {
	keys securestore.Store
	log  *zap.Logger
}

// NewService wires the settings service.
func NewService(keys securestore.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{keys: keys, log: log}
}

// Get returns the stored settings, or the defaults when nothing was saved
// or the blob does not parse.
func (s *Service) Get() AppSettings {
	raw, err := s.keys.Get(securestore.KeySettings)
	if err != nil {
		if !errors.Is(err, securestore.ErrNotFound) {
			s.log.Error("load settings failed", zap.Error(err))
		}
		return DefaultSettings()
	}

	var settings AppSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.Error("corrupt settings blob", zap.Error(err))
		return DefaultSettings()
	}
	return settings
}

// Save persists the settings record.
func (s *Service) Save(settings AppSettings) bool {
	raw, err := json.Marshal(settings)
	if err != nil {
		s.log.Error("encode settings failed", zap.Error(err))
		return false
	}
	if err := s.keys.Set(securestore.KeySettings, string(raw)); err != nil {
		s.log.Error("save settings failed", zap.Error(err))
		return false
	}
	return true
}

// EmergencyContact returns the saved contact, or nil when none is set.
func (s *Service) EmergencyContact() *EmergencyContact {
	raw, err := s.keys.Get(securestore.KeyEmergencyContact)
	if err != nil {
		if !errors.Is(err, securestore.ErrNotFound) {
			s.log.Error("load emergency contact failed", zap.Error(err))
		}
		return nil
	}

	var contact EmergencyContact
	if err := json.Unmarshal([]byte(raw), &contact); err != nil {
		s.log.Error("corrupt emergency contact blob", zap.Error(err))
		return nil
	}
	return &contact
}

// SaveEmergencyContact persists the contact.
func (s *Service) SaveEmergencyContact(contact EmergencyContact) bool {
	raw, err := json.Marshal(contact)
	if err != nil {
		s.log.Error("encode emergency contact failed", zap.Error(err))
		return false
	}
	if err := s.keys.Set(securestore.KeyEmergencyContact, string(raw)); err != nil {
		s.log.Error("save emergency contact failed", zap.Error(err))
		return false
	}
	return true
}

// DeleteEmergencyContact removes the contact.
func (s *Service) DeleteEmergencyContact() bool {
	if err := s.keys.Delete(securestore.KeyEmergencyContact); err != nil {
		s.log.Error("delete emergency contact failed", zap.Error(err))
		return false
	}
	return true
}

// HasEmergencyContact reports whether a contact is saved.
func (s *Service) HasEmergencyContact() bool {
	return s.EmergencyContact() != nil
}
