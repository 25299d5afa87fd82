package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"remotesms/internal/domain"
)

const (
	credentialFile      = "credential.enc"
	credentialNamespace = "remotesms/credential/v1"
)

// CredentialFileStore persists the credential record, sealed, to disk.
type CredentialFileStore struct {
	dir string
	key string
	kdf kdfParams
	mu  sync.Mutex
}

// Option tunes a CredentialFileStore.
type Option func(*CredentialFileStore)

// WithScryptCost overrides the scrypt N parameter used for new records.
// Existing records keep the cost they were written with.
func WithScryptCost(n int) Option {
	return func(s *CredentialFileStore) { s.kdf.N = n }
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir whose
// records are sealed under storeKey.
func NewCredentialFileStore(dir, storeKey string, opts ...Option) *CredentialFileStore {
	s := &CredentialFileStore{dir: dir, key: storeKey, kdf: defaultKDFParams()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SaveCredential seals and writes the record.
func (s *CredentialFileStore) SaveCredential(c domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	b, err := seal(s.key, credentialNamespace, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, credentialFile), b, 0o600)
}

// LoadCredential reads and opens the record. ok is false when no record has
// been written yet.
func (s *CredentialFileStore) LoadCredential() (domain.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, credentialFile))
	if err != nil || b == nil {
		return domain.Credential{}, false, err
	}
	raw, err := open(s.key, credentialNamespace, b)
	if err != nil {
		return domain.Credential{}, false, err
	}
	var c domain.Credential
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Credential{}, false, err
	}
	return c, true, nil
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
