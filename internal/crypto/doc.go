// Package crypto exposes the minimal primitives used by remotesms.
//
// Contents
//
//   - Six-digit one-time codes from a cryptographic source (NewOTP)
//   - Argon2id hashing and constant-time checking of recovery codes
//     (NewSalt, HashSecret, CheckSecret)
//   - Constant-time string equality for shared secrets (EqualSecret)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short keyed fingerprints of secrets for logging (Fingerprint)
//
// # Notes
//
// Fingerprints are safe to log: they let an operator correlate repeated
// failed attempts without ever writing the attempted secret. They are keyed,
// and the key never leaves the process, so short secrets cannot be
// recovered from a log by hashing candidates.
package crypto
