// Package store provides file-based persistence for remotesms.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking and every write goes through a temp file and rename, so
// a reader in another process never sees a torn record. Stored files live
// under the configured home directory.
//
// The package includes stores for:
//   - The credential record (CredentialFileStore), sealed with
//     scrypt + ChaCha20-Poly1305 under the configured store key
//   - Granted capabilities (GrantFileStore), plain JSON
package store
