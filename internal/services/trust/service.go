package trust

import (
	"crypto/hmac"
	"crypto/rsa"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// Service combines certificate, decryption, signature and hash checks.
type Service struct {
	validator domain.CertificateValidator
	envelopes domain.EnvelopeService
}

// New returns a trust pipeline over the given validator and envelope cipher.
func New(validator domain.CertificateValidator, envelopes domain.EnvelopeService) *Service {
	return &Service{validator: validator, envelopes: envelopes}
}

// VerifyIncoming produces the verdict for one incoming envelope.
//
// An invalid sender certificate or a failed decryption short-circuits with
// that single reason and no plaintext. After a successful decryption both
// the signature and hash checks always run, their failures are collected,
// and the plaintext is returned either way.
func (s *Service) VerifyIncoming(env domain.Envelope, senderCert domain.Certificate, recipientKey *rsa.PrivateKey) domain.Verdict {
	if res := s.validator.Validate(senderCert); !res.Valid {
		return domain.Verdict{Reasons: []domain.CheckFailure{domain.CheckCertificate}}
	}

	plaintext, err := s.envelopes.Open(env, recipientKey, domain.RoleRecipient)
	if err != nil {
		return domain.Verdict{Reasons: []domain.CheckFailure{domain.CheckDecryption}}
	}

	var reasons []domain.CheckFailure

	senderPub, err := senderCert.RSAPublicKey()
	if err != nil || !crypto.Verify(plaintext, env.Signature, senderPub) {
		reasons = append(reasons, domain.CheckSignature)
	}

	if !hmac.Equal(crypto.Hash(plaintext), env.ContentHash) {
		reasons = append(reasons, domain.CheckHash)
	}

	return domain.Verdict{
		Valid:     len(reasons) == 0,
		Plaintext: plaintext,
		Reasons:   reasons,
	}
}

// Compile-time assertion that Service implements domain.TrustService.
var _ domain.TrustService = (*Service)(nil)
