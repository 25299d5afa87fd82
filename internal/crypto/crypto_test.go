package crypto_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remotesms/internal/crypto"
)

func TestNewOTP_SixDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := crypto.NewOTP(nil)
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestNewOTP_DeterministicReader(t *testing.T) {
	a, err := crypto.NewOTP(bytes.NewReader(bytes.Repeat([]byte{7}, 64)))
	require.NoError(t, err)
	b, err := crypto.NewOTP(bytes.NewReader(bytes.Repeat([]byte{7}, 64)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHashSecret_CheckRoundTrip(t *testing.T) {
	salt, err := crypto.NewSalt()
	require.NoError(t, err)

	h := crypto.HashSecret("pet-name", salt)
	assert.True(t, crypto.CheckSecret("pet-name", salt, h))
	assert.False(t, crypto.CheckSecret("Pet-name", salt, h))
	assert.False(t, crypto.CheckSecret("pet-name", nil, h))
	assert.False(t, crypto.CheckSecret("pet-name", salt, nil))
}

func TestEqualSecret_IsExact(t *testing.T) {
	assert.True(t, crypto.EqualSecret("1234", "1234"))
	assert.False(t, crypto.EqualSecret("1234", "12345"))
	assert.False(t, crypto.EqualSecret("abc", "ABC"))
}

func TestFingerprint_StableAndShort(t *testing.T) {
	key := crypto.NewFingerprintKey()
	require.Len(t, key, crypto.FingerprintKeyBytes)
	fp := crypto.Fingerprint(key, "secret")
	assert.Len(t, fp, 12)
	assert.Equal(t, fp, crypto.Fingerprint(key, "secret"))
	assert.NotEqual(t, fp, crypto.Fingerprint(key, "secreT"))
}

func TestFingerprint_DependsOnKey(t *testing.T) {
	sum := sha256.Sum256([]byte("1234"))
	plain := hex.EncodeToString(sum[:6])

	a := crypto.Fingerprint([]byte("key-a"), "1234")
	b := crypto.Fingerprint([]byte("key-b"), "1234")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, plain, a, "an unkeyed hash must not match")
	assert.NotEqual(t, crypto.NewFingerprintKey(), crypto.NewFingerprintKey())
}

func TestWipe_Zeroes(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
