package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	KeyBytes  = 32
	SaltBytes = 16
)

// Argon2id cost for recovery codes. Codes are typed by hand, so they are
// short and low-entropy; the cost is what protects a leaked record.
const (
	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
)

// NewSalt returns SaltBytes random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashSecret derives an Argon2id digest of secret under salt.
func HashSecret(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, KeyBytes)
}

// CheckSecret reports whether secret hashes to want under salt.
func CheckSecret(secret string, salt, want []byte) bool {
	if len(salt) == 0 || len(want) == 0 {
		return false
	}
	got := HashSecret(secret, salt)
	defer Wipe(got)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// EqualSecret compares two secrets in constant time with respect to their
// contents. Lengths may leak.
func EqualSecret(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
