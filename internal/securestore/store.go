// ABOUTME: Secure key-value store interface and the fixed key set.
// ABOUTME: Holds session identity, biometric linkage, settings, and contact blobs.
package securestore

import (
	"errors"

	"github.com/google/uuid"
)

// Keys in use. The store holds only these small string values.
const (
	KeySessionUserID    = "current_user_id"
	KeyLastEmail        = "last_logged_in_email"
	KeyBiometricUserID  = "biometric_user_id"
	KeyBiometricEnabled = "biometric_enabled"
	KeySettings         = "app_settings"
	KeyEmergencyContact = "emergency_contact"
	KeyDeviceID         = "device_id"
)

// ErrNotFound is returned by Get for an absent key.
var ErrNotFound = errors.New("key not found")

// Store is an opaque get/set/delete of small string values, the local
// stand-in for the platform's secure storage.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// EnsureDeviceID returns the install identifier, generating and persisting
// one on first call.
func EnsureDeviceID(s Store) (string, error) {
	id, err := s.Get(KeyDeviceID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	id = uuid.NewString()
	if err := s.Set(KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}
