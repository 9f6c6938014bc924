package encoding

import (
	"crypto/rsa"
	"encoding/pem"
	"fmt"

	"github.com/youmark/pkcs8"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// PEM block types for PKCS#8 interchange.
const (
	pemTypePrivateKey          = "PRIVATE KEY"
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
)

// ExportPrivateKeyPEM encodes priv as PKCS#8 PEM. With a password the key
// is encrypted (PBKDF2 + AES inside the PKCS#8 structure); without one the
// key is exported in the clear, which is only appropriate inside the
// holder's own boundary.
func ExportPrivateKeyPEM(priv *rsa.PrivateKey, password []byte) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil private key", domain.ErrInvalidKeyFormat)
	}
	der, err := pkcs8.MarshalPrivateKey(priv, password, nil)
	if err != nil {
		return nil, fmt.Errorf("marshal PKCS#8: %w", err)
	}
	blockType := pemTypePrivateKey
	if len(password) > 0 {
		blockType = pemTypeEncryptedPrivateKey
	}
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), nil
}

// ImportPrivateKeyPEM decodes a PKCS#8 PEM private key, decrypting with
// password when the block is encrypted. A wrong password surfaces as
// domain.ErrDecryption, a non-RSA key as domain.ErrInvalidKeyFormat.
func ImportPrivateKeyPEM(data, password []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block", domain.ErrInvalidKeyFormat)
	}

	var (
		key any
		err error
	)
	if len(password) > 0 {
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
	} else {
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes)
	}
	if err != nil {
		if block.Type == pemTypeEncryptedPrivateKey {
			return nil, domain.ErrDecryption
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", domain.ErrInvalidKeyFormat)
	}
	return priv, nil
}
