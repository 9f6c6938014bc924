package envelope

import (
	"crypto/rsa"
	"fmt"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// Service seals and opens hybrid-encrypted envelopes.
type Service struct {
	validator domain.CertificateValidator
}

// New returns an envelope cipher. The validator guards SealFor; Seal and
// Open never consult it.
func New(validator domain.CertificateValidator) *Service {
	return &Service{validator: validator}
}

// Seal encrypts plaintext for recipient and signs it as sender.
//
// Per message: one fresh session key, one fresh IV, two OAEP wraps of the
// same session key (recipient and sender), a PKCS#1 v1.5 signature and a
// SHA-256 hash over the plaintext.
func (s *Service) Seal(plaintext []byte, recipient *rsa.PublicKey, sender *rsa.PrivateKey) (domain.Envelope, error) {
	if recipient == nil || recipient.N == nil {
		return domain.Envelope{}, fmt.Errorf("%w: nil recipient key", domain.ErrInvalidKeyFormat)
	}
	if sender == nil {
		return domain.Envelope{}, fmt.Errorf("%w: nil sender key", domain.ErrInvalidKeyFormat)
	}

	sessionKey, err := crypto.RandomBytes(crypto.SessionKeyBytes)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", domain.ErrEncryption, err)
	}
	defer crypto.Wipe(sessionKey)

	iv, ciphertext, err := crypto.EncryptAESGCM(sessionKey, plaintext)
	if err != nil {
		return domain.Envelope{}, err
	}

	recipientWrap, err := crypto.WrapKey(recipient, sessionKey)
	if err != nil {
		return domain.Envelope{}, err
	}
	senderWrap, err := crypto.WrapKey(crypto.PublicFromPrivate(sender), sessionKey)
	if err != nil {
		return domain.Envelope{}, err
	}

	signature, err := crypto.Sign(plaintext, sender)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", domain.ErrEncryption, err)
	}

	return domain.Envelope{
		Ciphertext:       ciphertext,
		IV:               iv,
		RecipientKeyWrap: recipientWrap,
		SenderKeyWrap:    senderWrap,
		Signature:        signature,
		ContentHash:      crypto.Hash(plaintext),
	}, nil
}

// SealFor validates recipientCert before sealing to its embedded key. An
// untrusted certificate fails with CertificateInvalidError.
func (s *Service) SealFor(plaintext []byte, recipientCert domain.Certificate, sender *rsa.PrivateKey) (domain.Envelope, error) {
	if res := s.validator.Validate(recipientCert); !res.Valid {
		return domain.Envelope{}, &domain.CertificateInvalidError{Reason: res.Reason}
	}
	recipient, err := recipientCert.RSAPublicKey()
	if err != nil {
		return domain.Envelope{}, err
	}
	return s.Seal(plaintext, recipient, sender)
}

// Open unwraps the session key selected by role and decrypts the content.
//
// The wrap length must equal the key's modulus size; a mismatch means the
// wrong key was supplied and fails with ErrKeyMismatch before any
// decryption is attempted.
func (s *Service) Open(env domain.Envelope, key *rsa.PrivateKey, role domain.Role) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil private key", domain.ErrInvalidKeyFormat)
	}

	wrap := env.RecipientKeyWrap
	if role == domain.RoleSender {
		wrap = env.SenderKeyWrap
	}
	if len(wrap) != key.Size() {
		return nil, fmt.Errorf("%w: wrap is %d bytes, key expects %d", domain.ErrKeyMismatch, len(wrap), key.Size())
	}

	sessionKey, err := crypto.UnwrapKey(key, wrap)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(sessionKey)

	if len(sessionKey) != crypto.SessionKeyBytes {
		return nil, domain.ErrDecryption
	}
	return crypto.DecryptAESGCM(sessionKey, env.IV, env.Ciphertext)
}

// Compile-time assertion that Service implements domain.EnvelopeService.
var _ domain.EnvelopeService = (*Service)(nil)
