// Package store provides file-based persistence for chatSecure's records.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files typically live under the user's configured
// home directory.
//
// The package includes stores for:
//   - Certificates, keyed by serial number (CertificateFileStore)
//   - Password-wrapped private keys, keyed by username (KeyBlobFileStore)
//   - Sealed message envelopes (MessageFileStore)
//
// The stores only ever see public keys and ciphertext; nothing here can
// decrypt anything.
package store
