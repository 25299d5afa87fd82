package crypto

import "runtime"

// Wipe zeroes b in place. Best-effort: it keeps b live past the loop so the
// write is not elided.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
