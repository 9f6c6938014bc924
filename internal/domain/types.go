package domain

import "crypto/rsa"

// Username identifies a local or peer account.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// SerialNumber uniquely identifies a certificate (128 bits of entropy, hex).
type SerialNumber string

// String returns the string form of the serial number.
func (s SerialNumber) String() string { return string(s) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// SubjectInfo names the party a certificate is issued to (and, for
// self-signed certificates, by).
type SubjectInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Role selects which key wrap of an envelope is opened.
type Role int

const (
	// RoleRecipient opens the envelope with the recipient's key wrap.
	RoleRecipient Role = iota
	// RoleSender opens the envelope with the sender's own key wrap
	// (encrypt-to-self).
	RoleSender
)

// KeyPair holds the long-term RSA material of an identity. The private
// half must never leave the boundary it was generated in.
type KeyPair struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}

// Identity bundles a keypair with its self-signed certificate. Created
// once at registration; rotation produces a fresh Identity and revokes
// the prior certificate.
type Identity struct {
	KeyPair     KeyPair
	Certificate Certificate
}
