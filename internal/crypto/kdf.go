package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a password into a 32-byte symmetric key with
// PBKDF2-SHA256. Iterations below MinKDFIterations are raised to
// DefaultKDFIterations.
func DeriveKey(password string, salt []byte, iterations int) []byte {
	if iterations < MinKDFIterations {
		iterations = DefaultKDFIterations
	}
	return pbkdf2.Key([]byte(password), salt, iterations, SessionKeyBytes, sha256.New)
}
