package domain

import "crypto/rsa"

// IdentityService issues and manages self-signed identity credentials.
type IdentityService interface {
	// Generate creates a keypair and a self-signed certificate for subject.
	Generate(subject SubjectInfo) (Identity, error)

	// Rotate generates a fresh identity for subject and revokes the prior
	// certificate, returning both the new identity and the revoked prior.
	Rotate(subject SubjectInfo, prior Certificate) (Identity, Certificate, error)

	// Validate runs the structural, shape, temporal and signature checks.
	Validate(cert Certificate) ValidationResult

	// Revoke transitions the certificate to revoked. A second call returns
	// ErrAlreadyRevoked; callers treat that as a no-op.
	Revoke(cert Certificate) (Certificate, error)
}

// CertificateValidator is the validation-only capability of the identity
// service, the part safe to hand to public-key-only collaborators.
type CertificateValidator interface {
	Validate(cert Certificate) ValidationResult
}

// KeyguardService wraps and unwraps a private key under a password so it
// can be stored outside the trust boundary.
type KeyguardService interface {
	Protect(priv *rsa.PrivateKey, password string) (EncryptedKeyBlob, error)
	Unprotect(blob EncryptedKeyBlob, password string) (*rsa.PrivateKey, error)
}

// EnvelopeService seals and opens hybrid-encrypted message envelopes.
type EnvelopeService interface {
	// Seal encrypts plaintext under a fresh session key, wraps the key for
	// both parties, and signs and hashes the plaintext.
	Seal(plaintext []byte, recipient *rsa.PublicKey, sender *rsa.PrivateKey) (Envelope, error)

	// SealFor validates the recipient certificate first, then seals to its
	// embedded public key.
	SealFor(plaintext []byte, recipientCert Certificate, sender *rsa.PrivateKey) (Envelope, error)

	// Open unwraps the session key selected by role and decrypts the content.
	Open(env Envelope, key *rsa.PrivateKey, role Role) ([]byte, error)
}

// TrustService is the single receive-side entry point combining
// certificate, decryption, signature and hash checks into one verdict.
type TrustService interface {
	VerifyIncoming(env Envelope, senderCert Certificate, recipientKey *rsa.PrivateKey) Verdict
}

// CertificateStore persists certificates keyed by serial number.
type CertificateStore interface {
	SaveCertificate(cert Certificate) error
	LoadCertificate(serial SerialNumber) (Certificate, bool, error)

	// CertificateFor returns the newest non-revoked certificate whose
	// subject name matches user.
	CertificateFor(user Username) (Certificate, bool, error)

	ListCertificates() ([]Certificate, error)
}

// KeyBlobStore persists password-wrapped private keys keyed by username.
type KeyBlobStore interface {
	SaveKeyBlob(user Username, blob EncryptedKeyBlob) error
	LoadKeyBlob(user Username) (EncryptedKeyBlob, bool, error)
}

// MessageStore persists sealed messages. Implementations assign an ID when
// the record carries none.
type MessageStore interface {
	SaveMessage(msg SealedMessage) (SealedMessage, error)
	LoadMessage(id string) (SealedMessage, bool, error)
	ListMessages(user Username) ([]SealedMessage, error)
}

// PublicKeyLookup resolves a peer's public key, typically from their
// stored certificate. The core never resolves identities itself; it is
// handed keys through this collaborator.
type PublicKeyLookup interface {
	PublicKeyFor(user Username) (*rsa.PublicKey, error)
}
