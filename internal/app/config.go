package app

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/services/identity"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string `yaml:"home"`           // data directory, e.g. $HOME/.chatsecure
	KeyBits       int    `yaml:"key_bits"`       // RSA key size for new identities
	ValidityDays  int    `yaml:"validity_days"`  // certificate lifetime
	KDFIterations int    `yaml:"kdf_iterations"` // PBKDF2 rounds for key protection
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		KeyBits:       crypto.MinRSABits,
		ValidityDays:  365,
		KDFIterations: crypto.DefaultKDFIterations,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; flags still override the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validity returns the certificate lifetime as a duration.
func (c Config) Validity() time.Duration {
	if c.ValidityDays <= 0 {
		return identity.DefaultValidity
	}
	return time.Duration(c.ValidityDays) * 24 * time.Hour
}
