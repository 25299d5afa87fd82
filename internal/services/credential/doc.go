// Package credential owns the shared secret that authenticates remote
// commands, the recovery code, and the single pending one-time code.
//
// The record is read from the CredentialStore on every call, so a password
// changed by the setup or reset flow in another process is honoured by a
// running daemon without restart. Verify never fails loudly: an
// unconfigured or unreadable store simply rejects every token.
package credential
