package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrKeyGeneration is returned when keypair generation fails.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrInvalidKeyFormat is returned when key material cannot be parsed
	// or has the wrong type for the operation.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrKeyMismatch is returned when a key's size or shape does not fit
	// the operation, meaning the wrong key was supplied.
	ErrKeyMismatch = errors.New("key does not match")

	// ErrEncryption is returned on a primitive encryption failure.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption covers both a wrong password and a corrupted blob;
	// the two are deliberately not distinguished externally.
	ErrDecryption = errors.New("decryption failed")

	// ErrAlreadyRevoked is returned when revoking a certificate twice.
	ErrAlreadyRevoked = errors.New("certificate already revoked")
)

// CertificateInvalidError is returned by operations that require a valid
// certificate, carrying the first failing check.
type CertificateInvalidError struct {
	Reason InvalidReason
}

func (e *CertificateInvalidError) Error() string {
	return fmt.Sprintf("certificate invalid: %s", e.Reason)
}
