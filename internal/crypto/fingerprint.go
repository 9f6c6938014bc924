package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// Fingerprint returns a short fingerprint of PKIX public key bytes.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
