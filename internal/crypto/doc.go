// Package crypto exposes the minimal primitives used by chatSecure.
//
// Contents
//
//   - RSA key generation, OAEP session-key wrapping and PKIX encoding
//     (GenerateRSA, WrapKey, UnwrapKey, MarshalPublicKey, ParsePublicKey)
//   - SHA-256 hashing and RSA signing/verification (Hash, Sign, Verify)
//   - AES-256-GCM with an explicit random IV (EncryptAESGCM, DecryptAESGCM)
//   - PBKDF2 password key derivation (DeriveKey)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All operations are stateless, pure functions over their inputs; the only
// shared resource is crypto/rand, which is safe for concurrent use. Callers
// should treat returned secrets as sensitive and rely on Wipe when practical
// to reduce lifetime in memory.
package crypto
