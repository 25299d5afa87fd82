package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintKeyBytes is the size of a key made by NewFingerprintKey.
const FingerprintKeyBytes = 32

// NewFingerprintKey returns a random key for Fingerprint.
func NewFingerprintKey() []byte {
	key := make([]byte, FingerprintKeyBytes)
	_, _ = rand.Read(key)
	return key
}

// Fingerprint returns a short hex fingerprint of a secret under key.
//
// It is HMAC-SHA256 truncated to 6 bytes (12 hex chars). Without the key a
// logged fingerprint cannot be matched against guesses offline.
func Fingerprint(key []byte, secret string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil)[:6])
}
