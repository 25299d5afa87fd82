package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"remotesms/internal/crypto"
)

// sealedFormatVersion is the newest on-disk sealed record format we can read.
const sealedFormatVersion = 1

// errWrongKey is returned when the store key is incorrect or the record has
// been modified.
var errWrongKey = errors.New("wrong store key or corrupted record")

// kdfParams are the scrypt cost parameters recorded alongside each record.
type kdfParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// sealed is the on-disk JSON wrapper around one encrypted record.
type sealed struct {
	V      int       `json:"v"`
	KDF    kdfParams `json:"kdf"`
	Salt   []byte    `json:"salt"`
	Nonce  []byte    `json:"nonce"`
	Cipher []byte    `json:"cipher"`
}

// seal encrypts raw under a key derived from storeKey. namespace is bound as
// associated data so a record cannot be moved to a different slot.
func seal(storeKey, namespace string, raw []byte, kp kdfParams) ([]byte, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}
	aead, err := newAEAD(storeKey, salt, kp)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		KDF:    kp,
		Salt:   salt,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, []byte(namespace)),
	})
}

// open reverses seal.
func open(storeKey, namespace string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode sealed record: %w", err)
	}
	if s.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed record version %d", s.V)
	}
	aead, err := newAEAD(storeKey, s.Salt, s.KDF)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, s.Nonce, s.Cipher, []byte(namespace))
	if err != nil {
		return nil, errWrongKey
	}
	return pt, nil
}

func newAEAD(storeKey string, salt []byte, kp kdfParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(storeKey), salt, kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)
	return chacha20poly1305.New(key)
}
