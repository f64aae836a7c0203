package token

import (
	"crypto/rsa"
	"errors"
	"time"
)

// Config configures the token Authority.
//
// The key pair is provisioned once at process start and never rotated at
// runtime; rotation requires a restart with new configuration.
type Config struct {
	// PrivateKey is the RSA key used to sign issued tokens.
	// It must never leave the issuing process.
	PrivateKey *rsa.PrivateKey

	// PublicKey is the RSA key used to verify tokens. It must be the
	// mathematical pair of PrivateKey — a mismatched pair is not detected
	// here and manifests as every verification failing, not as a crash.
	PublicKey *rsa.PublicKey

	// AccessTokenTTL is the default token lifetime (default: 24h).
	AccessTokenTTL time.Duration
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.AccessTokenTTL == 0 {
		c.AccessTokenTTL = 24 * time.Hour
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.PrivateKey == nil {
		return errors.New("private key is required")
	}
	if c.PublicKey == nil {
		return errors.New("public key is required")
	}
	return nil
}
