// Package envelope implements the hybrid cipher sealing one message into
// one envelope.
//
// Seal generates a fresh 256-bit session key, encrypts the content with
// AES-256-GCM, then wraps the same session key twice with RSA-OAEP: once
// for the recipient and once for the sender's own key (encrypt-to-self).
// Without the second wrap a sender who keeps no plaintext could never
// re-read their own sent history; one extra asymmetric operation per
// message removes that limitation. The plaintext is also signed and hashed
// so receivers can verify authorship and integrity independently of
// decryption.
package envelope
