package crypto

import "crypto/sha256"

// Hash returns the SHA-256 digest of content. The digest covers the exact
// byte representation; callers canonicalize structured content (fixed field
// order) before hashing or signing.
func Hash(content []byte) []byte {
	sum := sha256.Sum256(content)
	return sum[:]
}
