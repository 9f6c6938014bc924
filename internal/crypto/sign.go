package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// Sign signs the SHA-256 digest of content (not the raw content) with priv
// using RSA PKCS#1 v1.5.
func Sign(content []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil private key", domain.ErrInvalidKeyFormat)
	}
	digest := sha256.Sum256(content)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, stdcrypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify recomputes the digest of content and checks sig against pub. It
// never fails with an error: malformed signatures or keys yield false, the
// same as a mismatch. Verification failures are data, not control flow.
func Verify(content, sig []byte, pub *rsa.PublicKey) bool {
	if pub == nil || len(sig) == 0 {
		return false
	}
	digest := sha256.Sum256(content)
	return rsa.VerifyPKCS1v15(pub, stdcrypto.SHA256, digest[:], sig) == nil
}
