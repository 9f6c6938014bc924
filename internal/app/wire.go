package app

import (
	"crypto/rsa"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
	"github.com/pauloricf/chatSecure/internal/services/envelope"
	"github.com/pauloricf/chatSecure/internal/services/identity"
	"github.com/pauloricf/chatSecure/internal/services/keyguard"
	"github.com/pauloricf/chatSecure/internal/services/trust"
	"github.com/pauloricf/chatSecure/internal/store"
)

// Holder is the facade with private-key access. It lives where the private
// key was generated and is the only place one is ever handled.
type Holder struct {
	Identity  domain.IdentityService
	Keyguard  domain.KeyguardService
	Envelopes domain.EnvelopeService
	Trust     domain.TrustService

	Certs    domain.CertificateStore
	Blobs    domain.KeyBlobStore
	Messages domain.MessageStore
	Lookup   domain.PublicKeyLookup
}

// NewHolder constructs the holder-side dependency graph rooted at cfg.Home.
func NewHolder(cfg Config) *Holder {
	certStore := store.NewCertificateFileStore(cfg.Home)

	idSvc := identity.New(cfg.KeyBits, cfg.Validity())
	envSvc := envelope.New(idSvc)

	return &Holder{
		Identity:  idSvc,
		Keyguard:  keyguard.New(cfg.KDFIterations),
		Envelopes: envSvc,
		Trust:     trust.New(idSvc, envSvc),
		Certs:     certStore,
		Blobs:     store.NewKeyBlobFileStore(cfg.Home),
		Messages:  store.NewMessageFileStore(cfg.Home),
		Lookup:    certStore,
	}
}

// Verifier is the public-key-only facade. It is built without a key blob
// store or keyguard, so no code path through it can touch a private key.
type Verifier struct {
	validator domain.CertificateValidator
	lookup    domain.PublicKeyLookup
	Certs     domain.CertificateStore
}

// NewVerifier constructs the verifier-side facade rooted at cfg.Home.
func NewVerifier(cfg Config) *Verifier {
	certStore := store.NewCertificateFileStore(cfg.Home)
	return &Verifier{
		validator: identity.New(cfg.KeyBits, cfg.Validity()),
		lookup:    certStore,
		Certs:     certStore,
	}
}

// ValidateCertificate runs the full certificate check.
func (v *Verifier) ValidateCertificate(cert domain.Certificate) domain.ValidationResult {
	return v.validator.Validate(cert)
}

// VerifySignature checks a detached signature over content against the
// certificate's embedded key. Malformed inputs report false, not an error.
func (v *Verifier) VerifySignature(content, sig []byte, cert domain.Certificate) bool {
	pub, err := cert.RSAPublicKey()
	if err != nil {
		return false
	}
	return crypto.Verify(content, sig, pub)
}

// PublicKeyFor resolves a user's current public key from the cert store.
func (v *Verifier) PublicKeyFor(user domain.Username) (*rsa.PublicKey, error) {
	return v.lookup.PublicKeyFor(user)
}
