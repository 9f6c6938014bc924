package domain

// EncryptedKeyBlob is a password-wrapped private key, safe to persist
// outside the trust boundary. Created at registration or rotation, read at
// every login, never mutated.
type EncryptedKeyBlob struct {
	Ciphertext []byte `json:"ciphertext"`
	Salt       []byte `json:"salt"`
	IV         []byte `json:"iv"`
}
