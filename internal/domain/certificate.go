package domain

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"time"
)

// Certificate is a self-signed identity credential. Subject always equals
// issuer. All fields except Revoked/RevokedAt are immutable once issued;
// the revocation fields transition false→true exactly once and never back.
type Certificate struct {
	SerialNumber SerialNumber `json:"serial_number"`
	Subject      SubjectInfo  `json:"subject"`
	Issuer       SubjectInfo  `json:"issuer"`
	PublicKey    []byte       `json:"public_key"` // PKIX DER
	NotBefore    time.Time    `json:"not_before"`
	NotAfter     time.Time    `json:"not_after"`
	Revoked      bool         `json:"revoked"`
	RevokedAt    *time.Time   `json:"revoked_at,omitempty"`
	Signature    []byte       `json:"signature"`
}

// certificateBody is the immutable portion covered by the self-signature.
// Field order is fixed; changing it invalidates every issued certificate.
type certificateBody struct {
	SerialNumber SerialNumber `json:"serial_number"`
	Subject      SubjectInfo  `json:"subject"`
	Issuer       SubjectInfo  `json:"issuer"`
	PublicKey    []byte       `json:"public_key"`
	NotBefore    time.Time    `json:"not_before"`
	NotAfter     time.Time    `json:"not_after"`
}

// SigningBytes returns the canonical byte form of the certificate body
// that the self-signature covers. Revocation state and the signature
// itself are excluded so that revoking never breaks signature checks.
func (c Certificate) SigningBytes() ([]byte, error) {
	return json.Marshal(certificateBody{
		SerialNumber: c.SerialNumber,
		Subject:      c.Subject,
		Issuer:       c.Issuer,
		PublicKey:    c.PublicKey,
		NotBefore:    c.NotBefore,
		NotAfter:     c.NotAfter,
	})
}

// RSAPublicKey parses the embedded PKIX public key.
func (c Certificate) RSAPublicKey() (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(c.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrInvalidKeyFormat)
	}
	return rsaPub, nil
}

// SelfSigned reports whether subject equals issuer.
func (c Certificate) SelfSigned() bool { return c.Subject == c.Issuer }

// InvalidReason is the diagnostic code carried by a failed certificate
// validation.
type InvalidReason string

const (
	ReasonMalformed     InvalidReason = "malformed"
	ReasonNotSelfSigned InvalidReason = "not-self-signed"
	ReasonExpired       InvalidReason = "expired"
	ReasonNotYetValid   InvalidReason = "not-yet-valid"
	ReasonRevoked       InvalidReason = "revoked"
	ReasonBadSignature  InvalidReason = "bad-signature"
)

// ValidationResult is the verdict of certificate validation. Reason is set
// only when Valid is false and names the first failing check.
type ValidationResult struct {
	Valid  bool
	Reason InvalidReason
}
