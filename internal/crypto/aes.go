package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// EncryptAESGCM encrypts plaintext with AES-256-GCM under a fresh random
// 12-byte IV, returned separately from the ciphertext so records can carry
// it as an explicit field.
func EncryptAESGCM(key, plaintext []byte) (iv, ciphertext []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrEncryption, err)
	}
	iv, err = RandomBytes(IVBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrEncryption, err)
	}
	return iv, aead.Seal(nil, iv, plaintext, nil), nil
}

// DecryptAESGCM decrypts ciphertext with key and iv. Authentication
// failure, a truncated IV and a malformed key all surface as
// domain.ErrDecryption.
func DecryptAESGCM(key, iv, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecryption, err)
	}
	if len(iv) != IVBytes {
		return nil, fmt.Errorf("%w: bad iv size", domain.ErrDecryption)
	}
	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, domain.ErrDecryption
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != SessionKeyBytes {
		return nil, fmt.Errorf("bad key size %d, want %d", len(key), SessionKeyBytes)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
