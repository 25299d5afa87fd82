package store

import (
	"path/filepath"
	"sort"
	"sync"

	"remotesms/internal/domain"
)

const grantsFile = "grants.json"

type grantsRecord struct {
	Granted []domain.Capability `json:"granted"`
}

// GrantFileStore persists the set of granted capabilities to disk.
type GrantFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewGrantFileStore returns a GrantFileStore rooted at dir.
func NewGrantFileStore(dir string) *GrantFileStore {
	return &GrantFileStore{dir: dir}
}

// SaveGrants replaces the granted set. Duplicates are dropped.
func (s *GrantFileStore) SaveGrants(grants []domain.Capability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[domain.Capability]bool, len(grants))
	rec := grantsRecord{Granted: make([]domain.Capability, 0, len(grants))}
	for _, g := range grants {
		if seen[g] {
			continue
		}
		seen[g] = true
		rec.Granted = append(rec.Granted, g)
	}
	sort.Slice(rec.Granted, func(i, j int) bool { return rec.Granted[i] < rec.Granted[j] })
	return writeJSON(filepath.Join(s.dir, grantsFile), rec, 0o600)
}

// LoadGrants returns the granted set; nothing granted when the file is absent.
func (s *GrantFileStore) LoadGrants() ([]domain.Capability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec grantsRecord
	if _, err := readJSON(filepath.Join(s.dir, grantsFile), &rec); err != nil {
		return nil, err
	}
	return rec.Granted, nil
}

// Compile-time assertion that GrantFileStore implements domain.GrantStore.
var _ domain.GrantStore = (*GrantFileStore)(nil)
