package identity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// DefaultValidity is the certificate lifetime used when none is configured.
const DefaultValidity = 365 * 24 * time.Hour

// Service creates and validates identities. It is stateless apart from its
// configuration; persistence is the caller's concern.
type Service struct {
	keyBits  int
	validity time.Duration
	now      func() time.Time
}

// New returns an identity service issuing keyBits RSA keys and certificates
// valid for the given duration. Zero values fall back to 2048 bits and
// DefaultValidity.
func New(keyBits int, validity time.Duration) *Service {
	if keyBits == 0 {
		keyBits = crypto.MinRSABits
	}
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Service{keyBits: keyBits, validity: validity, now: time.Now}
}

// Generate creates a fresh keypair and a self-signed certificate for
// subject. The private key never leaves the returned Identity.
func (s *Service) Generate(subject domain.SubjectInfo) (domain.Identity, error) {
	priv, err := crypto.GenerateRSA(s.keyBits)
	if err != nil {
		return domain.Identity{}, err
	}

	pubDER, err := crypto.MarshalPublicKey(&priv.PublicKey)
	if err != nil {
		return domain.Identity{}, err
	}
	serialBytes, err := crypto.RandomBytes(crypto.SerialBytes)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}

	now := s.now().UTC().Truncate(time.Second)
	cert := domain.Certificate{
		SerialNumber: domain.SerialNumber(hex.EncodeToString(serialBytes)),
		Subject:      subject,
		Issuer:       subject,
		PublicKey:    pubDER,
		NotBefore:    now,
		NotAfter:     now.Add(s.validity),
	}

	body, err := cert.SigningBytes()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	cert.Signature, err = crypto.Sign(body, priv)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}

	return domain.Identity{
		KeyPair:     domain.KeyPair{Public: &priv.PublicKey, Private: priv},
		Certificate: cert,
	}, nil
}

// Rotate issues a fresh identity for subject and revokes the prior
// certificate. An already-revoked prior is accepted as-is: rotation after
// revocation is the common recovery path.
func (s *Service) Rotate(subject domain.SubjectInfo, prior domain.Certificate) (domain.Identity, domain.Certificate, error) {
	next, err := s.Generate(subject)
	if err != nil {
		return domain.Identity{}, domain.Certificate{}, err
	}
	revoked, err := s.Revoke(prior)
	if errors.Is(err, domain.ErrAlreadyRevoked) {
		revoked = prior
	} else if err != nil {
		return domain.Identity{}, domain.Certificate{}, err
	}
	return next, revoked, nil
}

// Validate runs the checks in diagnostic order: structural decodability,
// revocation, self-signed shape, temporal window, self-signature. The first
// failing check short-circuits with its reason; all must pass for trust.
func (s *Service) Validate(cert domain.Certificate) domain.ValidationResult {
	pub, err := cert.RSAPublicKey()
	if err != nil || cert.SerialNumber == "" || len(cert.Signature) == 0 {
		return domain.ValidationResult{Reason: domain.ReasonMalformed}
	}

	// Revoked is terminal and overrides temporal validity.
	if cert.Revoked {
		return domain.ValidationResult{Reason: domain.ReasonRevoked}
	}

	if !cert.SelfSigned() {
		return domain.ValidationResult{Reason: domain.ReasonNotSelfSigned}
	}

	now := s.now().UTC()
	if now.Before(cert.NotBefore) {
		return domain.ValidationResult{Reason: domain.ReasonNotYetValid}
	}
	if now.After(cert.NotAfter) {
		return domain.ValidationResult{Reason: domain.ReasonExpired}
	}

	body, err := cert.SigningBytes()
	if err != nil || !crypto.Verify(body, cert.Signature, pub) {
		return domain.ValidationResult{Reason: domain.ReasonBadSignature}
	}

	return domain.ValidationResult{Valid: true}
}

// Revoke transitions cert to revoked. Revoking twice returns
// ErrAlreadyRevoked; the transition itself never reverses.
func (s *Service) Revoke(cert domain.Certificate) (domain.Certificate, error) {
	if cert.Revoked {
		return cert, domain.ErrAlreadyRevoked
	}
	at := s.now().UTC().Truncate(time.Second)
	cert.Revoked = true
	cert.RevokedAt = &at
	return cert, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
