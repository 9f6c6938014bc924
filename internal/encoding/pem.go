package encoding

import (
	"encoding/json"
	"encoding/pem"
	"fmt"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// PEM block types for chatSecure records.
const (
	PEMTypeCertificate = "CHATSECURE CERTIFICATE"
	PEMTypeKeyBlob     = "CHATSECURE KEY BLOB"
)

// EncodeCertificate armors cert as a PEM block around its JSON record.
func EncodeCertificate(cert domain.Certificate) ([]byte, error) {
	raw, err := json.Marshal(cert)
	if err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PEMTypeCertificate, Bytes: raw}), nil
}

// DecodeCertificate parses an armored certificate. Any structural failure
// is reported as a malformed certificate.
func DecodeCertificate(data []byte) (domain.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != PEMTypeCertificate {
		return domain.Certificate{}, &domain.CertificateInvalidError{Reason: domain.ReasonMalformed}
	}
	var cert domain.Certificate
	if err := json.Unmarshal(block.Bytes, &cert); err != nil {
		return domain.Certificate{}, &domain.CertificateInvalidError{Reason: domain.ReasonMalformed}
	}
	return cert, nil
}

// EncodeKeyBlob armors a password-wrapped private key blob.
func EncodeKeyBlob(blob domain.EncryptedKeyBlob) ([]byte, error) {
	raw, err := json.Marshal(blob)
	if err != nil {
		return nil, fmt.Errorf("encode key blob: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PEMTypeKeyBlob, Bytes: raw}), nil
}

// DecodeKeyBlob parses an armored key blob. A corrupted armor is the same
// failure class as a corrupted ciphertext.
func DecodeKeyBlob(data []byte) (domain.EncryptedKeyBlob, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != PEMTypeKeyBlob {
		return domain.EncryptedKeyBlob{}, domain.ErrDecryption
	}
	var blob domain.EncryptedKeyBlob
	if err := json.Unmarshal(block.Bytes, &blob); err != nil {
		return domain.EncryptedKeyBlob{}, domain.ErrDecryption
	}
	return blob, nil
}
