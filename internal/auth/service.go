// ABOUTME: Session and identity lifecycle: register, login, logout, biometric restore.
// ABOUTME: Store errors are logged and collapsed into the boolean contract.
package auth

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/eccahealth/ecca/internal/models"
	"github.com/eccahealth/ecca/internal/securestore"
	"github.com/eccahealth/ecca/internal/storage"
)

// Service manages the single local session. The session state machine has
// two states, logged out and logged in; failed operations leave it unchanged.
type Service struct {
	db   *storage.DB
	keys securestore.Store
	log  *zap.Logger
	cost int
}

// NewService wires the auth service. cost <= 0 falls back to the default
// bcrypt cost.
func NewService(db *storage.DB, keys securestore.Store, log *zap.Logger, cost int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &Service{db: db, keys: keys, log: log, cost: cost}
}

// Register creates a user and opens a session for it. Returns false when
// the email is already taken (case-insensitively) or on any store error.
func (s *Service) Register(name, email, password string) bool {
	hash, err := HashPassword(password, s.cost)
	if err != nil {
		s.log.Error("registration hash failed", zap.Error(err))
		return false
	}

	id, err := s.db.CreateUser(name, email, hash)
	if err != nil {
		s.log.Error("registration failed", zap.Error(err))
		return false
	}

	if err := s.keys.Set(securestore.KeySessionUserID, strconv.FormatInt(id, 10)); err != nil {
		s.log.Error("persist session failed", zap.Error(err))
		return false
	}
	return true
}

// Login checks credentials and opens a session. Unknown email and wrong
// password are indistinguishable to the caller. A successful login also
// stores the biometric re-entry linkage so a later biometric-only restore
// can skip credentials.
func (s *Service) Login(email, password string) bool {
	id, hash, err := s.db.GetUserCredentials(email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("login lookup failed", zap.Error(err))
		}
		return false
	}

	if !CheckPassword(password, hash) {
		return false
	}

	idStr := strconv.FormatInt(id, 10)
	if err := s.keys.Set(securestore.KeySessionUserID, idStr); err != nil {
		s.log.Error("persist session failed", zap.Error(err))
		return false
	}

	// Biometric re-entry linkage; failures here don't fail the login.
	if err := s.keys.Set(securestore.KeyLastEmail, strings.ToLower(email)); err != nil {
		s.log.Warn("persist last email failed", zap.Error(err))
	}
	if err := s.keys.Set(securestore.KeyBiometricUserID, idStr); err != nil {
		s.log.Warn("persist biometric linkage failed", zap.Error(err))
	}
	return true
}

// Logout clears the active session. The last-email and biometric-user-id
// values are intentionally retained so biometric login keeps working after
// a manual logout.
func (s *Service) Logout() {
	if err := s.keys.Delete(securestore.KeySessionUserID); err != nil {
		s.log.Error("clear session failed", zap.Error(err))
	}
}

// CheckAuthStatus reports whether an active session exists. Side-effect-free.
func (s *Service) CheckAuthStatus() bool {
	_, err := s.keys.Get(securestore.KeySessionUserID)
	return err == nil
}

// CurrentUserID returns the session's user id, if a session is active.
func (s *Service) CurrentUserID() (int64, bool) {
	raw, err := s.keys.Get(securestore.KeySessionUserID)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.log.Error("malformed session value", zap.String("value", raw))
		return 0, false
	}
	return id, true
}

// CurrentUser fetches the session's user row, or nil when logged out. The
// password hash is never part of the result.
func (s *Service) CurrentUser() *models.User {
	id, ok := s.CurrentUserID()
	if !ok {
		return nil
	}

	user, err := s.db.GetUserByID(id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("current user lookup failed", zap.Error(err))
		}
		return nil
	}
	return user
}

// LoginWithBiometric restores the session for the previously linked user
// without any credential check. The platform's biometric gate is trusted to
// have authenticated the human before this is invoked. Returns false when
// no linkage was ever stored.
func (s *Service) LoginWithBiometric() bool {
	id, err := s.keys.Get(securestore.KeyBiometricUserID)
	if err != nil {
		return false
	}

	if err := s.keys.Set(securestore.KeySessionUserID, id); err != nil {
		s.log.Error("persist session failed", zap.Error(err))
		return false
	}
	return true
}

// EnableBiometric opts this install into biometric login.
func (s *Service) EnableBiometric() bool {
	if err := s.keys.Set(securestore.KeyBiometricEnabled, "true"); err != nil {
		s.log.Error("enable biometric failed", zap.Error(err))
		return false
	}
	return true
}

// DisableBiometric opts out of biometric login.
func (s *Service) DisableBiometric() bool {
	if err := s.keys.Delete(securestore.KeyBiometricEnabled); err != nil {
		s.log.Error("disable biometric failed", zap.Error(err))
		return false
	}
	return true
}

// BiometricEnabled reports whether biometric login was opted into.
func (s *Service) BiometricEnabled() bool {
	v, err := s.keys.Get(securestore.KeyBiometricEnabled)
	return err == nil && v == "true"
}

// LastEmail returns the email from the most recent successful password
// login, for display on the biometric re-entry screen.
func (s *Service) LastEmail() string {
	v, err := s.keys.Get(securestore.KeyLastEmail)
	if err != nil {
		return ""
	}
	return v
}
