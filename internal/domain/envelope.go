package domain

// Envelope is the sealed form of one message. RecipientKeyWrap and
// SenderKeyWrap both wrap the same per-message session key, under the
// recipient's and sender's public keys respectively, so the sender can
// re-read sent content without retaining plaintext. The session key is
// never persisted or transmitted unwrapped.
type Envelope struct {
	Ciphertext       []byte `json:"ciphertext"`
	IV               []byte `json:"iv"`
	RecipientKeyWrap []byte `json:"recipient_key_wrap"`
	SenderKeyWrap    []byte `json:"sender_key_wrap"`
	Signature        []byte `json:"signature"`
	ContentHash      []byte `json:"content_hash"`
}

// CheckFailure names a trust-pipeline check that failed.
type CheckFailure string

const (
	CheckCertificate CheckFailure = "certificate"
	CheckDecryption  CheckFailure = "decryption"
	CheckSignature   CheckFailure = "signature"
	CheckHash        CheckFailure = "hash"
)

// Verdict is the outcome of the receive-side trust pipeline. Plaintext is
// populated whenever decryption succeeded, even with a failed signature or
// hash check, so callers can surface an unverified message instead of
// dropping it.
type Verdict struct {
	Valid     bool
	Plaintext []byte
	Reasons   []CheckFailure
}

// SealedMessage is an envelope at rest, as handed to the persistence
// collaborator. The envelope is stored verbatim.
type SealedMessage struct {
	ID       string   `json:"id"`
	From     Username `json:"from"`
	To       Username `json:"to"`
	Envelope Envelope `json:"envelope"`
	StoredAt int64    `json:"stored_at"`
}
