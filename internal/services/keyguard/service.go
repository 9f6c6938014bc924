package keyguard

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// Service wraps and unwraps private keys under a password.
type Service struct {
	iterations int
}

// New returns a keyguard running the given number of PBKDF2 rounds.
// Values below the floor fall back to the default.
func New(iterations int) *Service {
	if iterations < crypto.MinKDFIterations {
		iterations = crypto.DefaultKDFIterations
	}
	return &Service{iterations: iterations}
}

// Protect wraps priv under password. The blob {ciphertext, salt, iv} is an
// opaque artifact safe to persist anywhere.
func (s *Service) Protect(priv *rsa.PrivateKey, password string) (domain.EncryptedKeyBlob, error) {
	if priv == nil {
		return domain.EncryptedKeyBlob{}, fmt.Errorf("%w: nil private key", domain.ErrInvalidKeyFormat)
	}
	salt, err := crypto.RandomBytes(crypto.SaltBytes)
	if err != nil {
		return domain.EncryptedKeyBlob{}, fmt.Errorf("%w: %v", domain.ErrEncryption, err)
	}

	key := crypto.DeriveKey(password, salt, s.iterations)
	defer crypto.Wipe(key)

	material := x509.MarshalPKCS1PrivateKey(priv)
	defer crypto.Wipe(material)

	iv, ciphertext, err := crypto.EncryptAESGCM(key, material)
	if err != nil {
		return domain.EncryptedKeyBlob{}, err
	}
	return domain.EncryptedKeyBlob{Ciphertext: ciphertext, Salt: salt, IV: iv}, nil
}

// Unprotect re-derives the key from password and blob.Salt and decrypts.
// Every failure mode, including a decrypted output that does not parse as a
// PKCS#1 key record, surfaces as domain.ErrDecryption.
func (s *Service) Unprotect(blob domain.EncryptedKeyBlob, password string) (*rsa.PrivateKey, error) {
	if len(blob.Salt) != crypto.SaltBytes || len(blob.IV) != crypto.IVBytes || len(blob.Ciphertext) == 0 {
		return nil, domain.ErrDecryption
	}

	key := crypto.DeriveKey(password, blob.Salt, s.iterations)
	defer crypto.Wipe(key)

	material, err := crypto.DecryptAESGCM(key, blob.IV, blob.Ciphertext)
	if err != nil {
		return nil, domain.ErrDecryption
	}
	defer crypto.Wipe(material)

	if len(material) == 0 {
		return nil, domain.ErrDecryption
	}
	priv, err := x509.ParsePKCS1PrivateKey(material)
	if err != nil {
		return nil, domain.ErrDecryption
	}
	return priv, nil
}

// Compile-time assertion that Service implements domain.KeyguardService.
var _ domain.KeyguardService = (*Service)(nil)
