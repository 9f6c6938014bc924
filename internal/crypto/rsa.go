package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// GenerateRSA returns a fresh RSA keypair of the given size. Sizes below
// MinRSABits are rejected.
func GenerateRSA(bits int) (*rsa.PrivateKey, error) {
	if bits < MinRSABits {
		return nil, fmt.Errorf("%w: %d bits below minimum %d", domain.ErrKeyGeneration, bits, MinRSABits)
	}
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	return priv, nil
}

// PublicFromPrivate recomputes the public half from private key material.
// Needed for the encrypt-to-self flow when the certificate is not at hand.
func PublicFromPrivate(priv *rsa.PrivateKey) *rsa.PublicKey {
	if priv == nil {
		return nil
	}
	return &priv.PublicKey
}

// WrapKey encrypts a session key under pub with RSA-OAEP (SHA-256).
func WrapKey(pub *rsa.PublicKey, sessionKey []byte) ([]byte, error) {
	if pub == nil || pub.N == nil {
		return nil, fmt.Errorf("%w: nil public key", domain.ErrInvalidKeyFormat)
	}
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, sessionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncryption, err)
	}
	return wrapped, nil
}

// UnwrapKey decrypts an OAEP key wrap with priv.
func UnwrapKey(priv *rsa.PrivateKey, wrapped []byte) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil private key", domain.ErrInvalidKeyFormat)
	}
	sessionKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, wrapped, nil)
	if err != nil {
		return nil, domain.ErrDecryption
	}
	return sessionKey, nil
}

// MarshalPublicKey encodes pub as PKIX DER.
func MarshalPublicKey(pub *rsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil public key", domain.ErrInvalidKeyFormat)
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
	}
	return der, nil
}

// ParsePublicKey decodes a PKIX DER RSA public key.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", domain.ErrInvalidKeyFormat)
	}
	return rsaPub, nil
}
