package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"remotesms/internal/domain"
)

// FixFileSource keeps the last known fix of each provider as
// <Dir>/<provider>.json. A position daemon (or the CLI) writes them; the
// location handler reads them.
type FixFileSource struct {
	Dir string
	mu  sync.Mutex
}

// NewFixFileSource returns a source rooted at dir.
func NewFixFileSource(dir string) *FixFileSource {
	return &FixFileSource{Dir: dir}
}

// LastKnown returns the recorded fix for provider; ok is false when there is
// none.
func (s *FixFileSource) LastKnown(provider domain.LocationProvider) (domain.Fix, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(provider))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Fix{}, false, nil
	}
	if err != nil {
		return domain.Fix{}, false, err
	}
	var fix domain.Fix
	if err := json.Unmarshal(b, &fix); err != nil {
		return domain.Fix{}, false, fmt.Errorf("decode %s fix: %w", provider, err)
	}
	fix.Provider = provider
	return fix, true, nil
}

// Record stores fix as the last known position of its provider.
func (s *FixFileSource) Record(fix domain.Fix) error {
	if fix.Provider == "" {
		return errors.New("fix provider required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(fix, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(fix.Provider) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(fix.Provider))
}

func (s *FixFileSource) path(p domain.LocationProvider) string {
	return filepath.Join(s.Dir, string(p)+".json")
}

var _ domain.LocationSource = (*FixFileSource)(nil)
