package crypto

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// NewOTP draws a six-digit code uniformly from [100000, 999999] using r.
// A nil r means crypto/rand.
func NewOTP(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	n, err := rand.Int(r, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
