package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kbukum/convertapi/auth/token"
	"github.com/kbukum/convertapi/database"
	"github.com/kbukum/convertapi/logger"
	"github.com/kbukum/convertapi/server"
)

// Config is the full application configuration.
type Config struct {
	Base     BaseConfig      `yaml:"base" mapstructure:"base"`
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Database database.Config `yaml:"database" mapstructure:"database"`
	Auth     AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Credits  CreditsConfig   `yaml:"credits" mapstructure:"credits"`
	Log      logger.Config   `yaml:"logging" mapstructure:"logging"`
}

// AuthConfig contains the authentication configuration.
//
// Key material arrives base64-wrapped so it survives .env files and
// environment variable UIs that cannot hold embedded newlines. Raw PEM is
// also accepted.
type AuthConfig struct {
	PrivateKeyBase64         string `yaml:"private_key_base64" mapstructure:"private_key_base64"`
	PublicKeyBase64          string `yaml:"public_key_base64" mapstructure:"public_key_base64"`
	AccessTokenExpireMinutes int    `yaml:"access_token_expire_minutes" mapstructure:"access_token_expire_minutes"`
	BcryptCost               int    `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
	PasswordMinLength        int    `yaml:"password_min_length" mapstructure:"password_min_length"`
}

// ApplyDefaults applies default values to authentication configuration.
func (c *AuthConfig) ApplyDefaults() {
	if c.AccessTokenExpireMinutes == 0 {
		c.AccessTokenExpireMinutes = 1440
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
	if c.PasswordMinLength == 0 {
		c.PasswordMinLength = 8
	}
}

// Validate validates authentication configuration.
func (c *AuthConfig) Validate() error {
	if c.PrivateKeyBase64 == "" {
		return fmt.Errorf("auth.private_key_base64 is required")
	}
	if c.PublicKeyBase64 == "" {
		return fmt.Errorf("auth.public_key_base64 is required")
	}
	if c.AccessTokenExpireMinutes < 0 {
		return fmt.Errorf("auth.access_token_expire_minutes must not be negative")
	}
	return nil
}

// TokenConfig parses the configured key material into a token.Config.
// A parse failure here means the deployment is broken and must be treated
// as fatal by the caller.
func (c *AuthConfig) TokenConfig() (token.Config, error) {
	priv, err := token.LoadPrivateKey(c.PrivateKeyBase64)
	if err != nil {
		return token.Config{}, fmt.Errorf("auth.private_key_base64: %w", err)
	}
	pub, err := token.LoadPublicKey(c.PublicKeyBase64)
	if err != nil {
		return token.Config{}, fmt.Errorf("auth.public_key_base64: %w", err)
	}
	return token.Config{
		PrivateKey:     priv,
		PublicKey:      pub,
		AccessTokenTTL: time.Duration(c.AccessTokenExpireMinutes) * time.Minute,
	}, nil
}

// CreditsConfig configures the credit ledger.
type CreditsConfig struct {
	// InitialBalance is granted to every newly registered account.
	InitialBalance int64 `yaml:"initial_balance" mapstructure:"initial_balance"`
}

// ApplyDefaults applies default values to credits configuration.
func (c *CreditsConfig) ApplyDefaults() {}

// Validate validates credits configuration.
func (c *CreditsConfig) Validate() error {
	if c.InitialBalance < 0 {
		return fmt.Errorf("credits.initial_balance must not be negative")
	}
	return nil
}

// ApplyDefaults applies default values across the configuration.
func (c *Config) ApplyDefaults() {
	if c.Base.Name == "" {
		c.Base.Name = "convertapi"
	}
	c.Base.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Credits.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate validates the full configuration.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Credits.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

// Load loads, defaults, and validates the application configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig("convertapi", &cfg, opts...); err != nil {
		return nil, err
	}

	// Bare PRIVATE_KEY_BASE64 / PUBLIC_KEY_BASE64 env vars are accepted for
	// parity with existing deployments.
	if cfg.Auth.PrivateKeyBase64 == "" {
		cfg.Auth.PrivateKeyBase64 = os.Getenv("PRIVATE_KEY_BASE64")
	}
	if cfg.Auth.PublicKeyBase64 == "" {
		cfg.Auth.PublicKeyBase64 = os.Getenv("PUBLIC_KEY_BASE64")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
