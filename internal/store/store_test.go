package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remotesms/internal/domain"
	"remotesms/internal/store"
)

// cheap scrypt cost keeps the sealed-record tests fast.
const testCost = 1 << 10

func TestCredential_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var creds domain.CredentialStore = store.NewCredentialFileStore(home, "k", store.WithScryptCost(testCost))

	want := domain.Credential{Password: "1234", OTP: "654321", Phone: "+15550100"}
	require.NoError(t, creds.SaveCredential(want))

	got, ok, err := creds.LoadCredential()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCredential_Missing_NotConfigured(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir(), "k", store.WithScryptCost(testCost))
	_, ok, err := creds.LoadCredential()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredential_WrongKey_Fails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, store.NewCredentialFileStore(home, "right", store.WithScryptCost(testCost)).
		SaveCredential(domain.Credential{Password: "p"}))

	_, _, err := store.NewCredentialFileStore(home, "wrong").LoadCredential()
	require.Error(t, err)
}

func TestCredential_RecordIsNotPlaintext(t *testing.T) {
	home := t.TempDir()
	creds := store.NewCredentialFileStore(home, "k", store.WithScryptCost(testCost))
	require.NoError(t, creds.SaveCredential(domain.Credential{Password: "hunter2-plain"}))

	var found []byte
	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(home, e.Name()))
		require.NoError(t, err)
		found = append(found, b...)
	}
	assert.NotContains(t, string(found), "hunter2-plain")
}

func TestGrants_SaveLoad_Dedup(t *testing.T) {
	grants := store.NewGrantFileStore(t.TempDir())

	got, err := grants.LoadGrants()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, grants.SaveGrants([]domain.Capability{"sms", "call_log", "sms"}))
	got, err = grants.LoadGrants()
	require.NoError(t, err)
	assert.Equal(t, []domain.Capability{"call_log", "sms"}, got)
}
