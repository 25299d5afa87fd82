package credential

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"remotesms/internal/crypto"
	"remotesms/internal/domain"
)

// MinPasswordLength is the shortest password Setup accepts.
const MinPasswordLength = 4

var (
	// ErrNotConfigured indicates no password has been set up yet.
	ErrNotConfigured = errors.New("credentials not configured; run setup first")
	// ErrAlreadyConfigured indicates Setup was called on a configured store.
	ErrAlreadyConfigured = errors.New("credentials already configured")
	// ErrInvalidProof indicates a wrong recovery code or one-time code.
	ErrInvalidProof = errors.New("invalid recovery code or one-time code")
	// ErrNoPhone indicates no registered phone for out-of-band codes.
	ErrNoPhone = errors.New("no registered phone number")
)

// Service implements domain.CredentialService over a CredentialStore.
type Service struct {
	store domain.CredentialStore
	rand  io.Reader
	mu    sync.Mutex
}

// New constructs a credential Service. A nil rnd uses crypto/rand.
func New(store domain.CredentialStore, rnd io.Reader) *Service {
	return &Service{store: store, rand: rnd}
}

// Verify reports whether token equals the stored password exactly.
func (s *Service) Verify(token string) bool {
	c, ok, err := s.store.LoadCredential()
	if err != nil || !ok || !c.Configured() {
		return false
	}
	return crypto.EqualSecret(c.Password, token)
}

// Configured reports whether a password is stored.
func (s *Service) Configured() (bool, error) {
	c, ok, err := s.store.LoadCredential()
	if err != nil {
		return false, err
	}
	return ok && c.Configured(), nil
}

// Setup performs first-time configuration.
func (s *Service) Setup(password, recoveryCode string, phone domain.Address) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	if strings.TrimSpace(recoveryCode) == "" {
		return errors.New("recovery code required")
	}
	return s.update(func(c *domain.Credential, ok bool) error {
		if ok && c.Configured() {
			return ErrAlreadyConfigured
		}
		*c = domain.Credential{Password: password, Phone: phone}
		return setRecovery(c, recoveryCode)
	})
}

// SetPassword replaces the password of a configured record.
func (s *Service) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	return s.update(func(c *domain.Credential, ok bool) error {
		if !ok || !c.Configured() {
			return ErrNotConfigured
		}
		c.Password = password
		return nil
	})
}

// SetRecoveryCode replaces the recovery code of a configured record.
func (s *Service) SetRecoveryCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errors.New("recovery code required")
	}
	return s.update(func(c *domain.Credential, ok bool) error {
		if !ok || !c.Configured() {
			return ErrNotConfigured
		}
		return setRecovery(c, code)
	})
}

// GenerateOTP issues a fresh six-digit code, invalidating any pending one.
func (s *Service) GenerateOTP() (string, error) {
	var code string
	err := s.update(func(c *domain.Credential, ok bool) error {
		if !ok || !c.Configured() {
			return ErrNotConfigured
		}
		var err error
		code, err = crypto.NewOTP(s.rand)
		if err != nil {
			return fmt.Errorf("generate otp: %w", err)
		}
		c.OTP = code
		return nil
	})
	return code, err
}

// VerifyOTP reports whether code matches the pending one-time code.
func (s *Service) VerifyOTP(code string) bool {
	c, ok, err := s.store.LoadCredential()
	if err != nil || !ok || c.OTP == "" {
		return false
	}
	return crypto.EqualSecret(c.OTP, code)
}

// VerifyRecoveryCode reports whether code matches the stored recovery code.
func (s *Service) VerifyRecoveryCode(code string) bool {
	c, ok, err := s.store.LoadCredential()
	if err != nil || !ok {
		return false
	}
	return crypto.CheckSecret(code, c.RecoverySalt, c.RecoveryHash)
}

// ResetWithRecoveryCode sets a new password after checking the recovery code.
func (s *Service) ResetWithRecoveryCode(code, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	return s.update(func(c *domain.Credential, ok bool) error {
		if !ok || !crypto.CheckSecret(code, c.RecoverySalt, c.RecoveryHash) {
			return ErrInvalidProof
		}
		c.Password = newPassword
		return nil
	})
}

// ResetWithOTP sets a new password after checking the pending one-time code,
// which is consumed.
func (s *Service) ResetWithOTP(code, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	return s.update(func(c *domain.Credential, ok bool) error {
		if !ok || c.OTP == "" || !crypto.EqualSecret(c.OTP, code) {
			return ErrInvalidProof
		}
		c.Password = newPassword
		c.OTP = ""
		return nil
	})
}

// RegisteredPhone returns the phone that receives one-time codes.
func (s *Service) RegisteredPhone() (domain.Address, bool, error) {
	c, ok, err := s.store.LoadCredential()
	if err != nil || !ok || c.Phone == "" {
		return "", false, err
	}
	return c.Phone, true, nil
}

// update runs fn over the current record and saves it if fn succeeds.
func (s *Service) update(fn func(c *domain.Credential, ok bool) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok, err := s.store.LoadCredential()
	if err != nil {
		return err
	}
	if err := fn(&c, ok); err != nil {
		return err
	}
	return s.store.SaveCredential(c)
}

func setRecovery(c *domain.Credential, code string) error {
	salt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	c.RecoverySalt = salt
	c.RecoveryHash = crypto.HashSecret(code, salt)
	return nil
}

func validatePassword(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New("password required")
	}
	if strings.ContainsAny(p, " \t\r\n") {
		return errors.New("password must not contain whitespace")
	}
	if len([]rune(p)) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CredentialService.
var _ domain.CredentialService = (*Service)(nil)
