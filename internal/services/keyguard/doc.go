// Package keyguard makes a private key safe to store outside the trust
// boundary.
//
// Protect derives a symmetric key from a password with PBKDF2 and a fresh
// random salt, then encrypts the PKCS#1 key material with AES-256-GCM.
// Unprotect reverses it. A wrong password and a corrupted blob are
// indistinguishable from the outside: both fail with domain.ErrDecryption,
// so the blob cannot be used as a padding or format oracle.
package keyguard
