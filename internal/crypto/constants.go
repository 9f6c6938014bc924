package crypto

const (
	// SessionKeyBytes is the size of a per-message symmetric key.
	SessionKeyBytes = 32
	// SaltBytes is the size of a KDF salt.
	SaltBytes = 16
	// IVBytes is the AES-GCM nonce size.
	IVBytes = 12
	// SerialBytes is the entropy of a certificate serial number.
	SerialBytes = 16

	// MinRSABits is the smallest key size accepted for identity keys.
	MinRSABits = 2048

	// MinKDFIterations is the floor for PBKDF2 rounds; DefaultKDFIterations
	// follows the current OWASP recommendation for PBKDF2-SHA256.
	MinKDFIterations     = 10_000
	DefaultKDFIterations = 210_000
)
