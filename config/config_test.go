package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBaseConfig_ApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := BaseConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := BaseConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})
}

func TestBaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BaseConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", BaseConfig{Name: "svc", Environment: "development"}, false, ""},
		{"valid staging", BaseConfig{Name: "svc", Environment: "staging"}, false, ""},
		{"valid production", BaseConfig{Name: "svc", Environment: "production"}, false, ""},
		{"missing name", BaseConfig{Environment: "production"}, true, "base.name is required"},
		{"invalid environment", BaseConfig{Name: "svc", Environment: "invalid"}, true, "base.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthConfig_ApplyDefaults(t *testing.T) {
	cfg := AuthConfig{}
	cfg.ApplyDefaults()
	if cfg.AccessTokenExpireMinutes != 1440 {
		t.Errorf("AccessTokenExpireMinutes = %d, want 1440", cfg.AccessTokenExpireMinutes)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.PasswordMinLength != 8 {
		t.Errorf("PasswordMinLength = %d, want 8", cfg.PasswordMinLength)
	}
}

func TestAuthConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		wantErr bool
	}{
		{"valid", AuthConfig{PrivateKeyBase64: "x", PublicKeyBase64: "y", AccessTokenExpireMinutes: 60}, false},
		{"missing private key", AuthConfig{PublicKeyBase64: "y"}, true},
		{"missing public key", AuthConfig{PrivateKeyBase64: "x"}, true},
		{"negative expiry", AuthConfig{PrivateKeyBase64: "x", PublicKeyBase64: "y", AccessTokenExpireMinutes: -5}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

// testKeyPair returns a base64-wrapped PEM key pair as deployments supply it.
func testKeyPair(t *testing.T) (privB64, pubB64 string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshaling public key: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	return base64.StdEncoding.EncodeToString(privPEM), base64.StdEncoding.EncodeToString(pubPEM)
}

func TestAuthConfig_TokenConfig(t *testing.T) {
	priv, pub := testKeyPair(t)
	cfg := AuthConfig{
		PrivateKeyBase64:         priv,
		PublicKeyBase64:          pub,
		AccessTokenExpireMinutes: 60,
	}

	tc, err := cfg.TokenConfig()
	if err != nil {
		t.Fatalf("TokenConfig() error = %v", err)
	}
	if tc.PrivateKey == nil || tc.PublicKey == nil {
		t.Fatal("expected both keys to be parsed")
	}
	if tc.AccessTokenTTL != time.Hour {
		t.Errorf("AccessTokenTTL = %v, want 1h", tc.AccessTokenTTL)
	}
}

func TestAuthConfig_TokenConfig_Garbage(t *testing.T) {
	cfg := AuthConfig{
		PrivateKeyBase64: "not a key",
		PublicKeyBase64:  "also not a key",
	}
	if _, err := cfg.TokenConfig(); err == nil {
		t.Error("expected error for unparseable key material")
	}
}

func TestCreditsConfig_Validate(t *testing.T) {
	cfg := CreditsConfig{InitialBalance: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative initial balance")
	}
	cfg.InitialBalance = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfig_WithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
base:
  name: test-service
  environment: staging
  version: "1.0.0"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	type TestConfig struct {
		Base BaseConfig `yaml:"base" mapstructure:"base"`
	}

	var cfg TestConfig
	err := LoadConfig("test-service", &cfg, WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Base.Name != "test-service" {
		t.Errorf("expected name 'test-service', got %q", cfg.Base.Name)
	}
	if cfg.Base.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Base.Environment)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	type TestConfig struct {
		Base BaseConfig `yaml:"base" mapstructure:"base"`
	}

	var cfg TestConfig
	// With no config file found, LoadConfig should still succeed (just empty config)
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestResolver_WithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/my-svc/config.yml": true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	if files.ConfigFile != "./cmd/my-svc/config.yml" {
		t.Errorf("expected config file at ./cmd/my-svc/config.yml, got %q", files.ConfigFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	variants := generateEnvKeyVariants("AUTH_PRIVATE_KEY_BASE64")
	want := "auth.private_key_base64"
	for _, v := range variants {
		if v == want {
			return
		}
	}
	t.Errorf("expected variants to include %q, got %v", want, variants)
}

func TestLoad_FullConfig(t *testing.T) {
	priv, pub := testKeyPair(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
base:
  name: convertapi
  environment: production
server:
  port: 9000
database:
  driver: sqlite
  dsn: "file::memory:?cache=shared"
auth:
  access_token_expire_minutes: 30
credits:
  initial_balance: 10
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("AUTH_PRIVATE_KEY_BASE64", priv)
	t.Setenv("AUTH_PUBLIC_KEY_BASE64", pub)

	cfg, err := Load(WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenExpireMinutes != 30 {
		t.Errorf("AccessTokenExpireMinutes = %d, want 30", cfg.Auth.AccessTokenExpireMinutes)
	}
	if cfg.Credits.InitialBalance != 10 {
		t.Errorf("InitialBalance = %d, want 10", cfg.Credits.InitialBalance)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("BcryptCost default = %d, want 12", cfg.Auth.BcryptCost)
	}
}

func TestLoad_BareKeyEnvVars(t *testing.T) {
	priv, pub := testKeyPair(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
base:
  name: convertapi
database:
  driver: sqlite
  dsn: "file::memory:?cache=shared"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("PRIVATE_KEY_BASE64", priv)
	t.Setenv("PUBLIC_KEY_BASE64", pub)

	cfg, err := Load(WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.PrivateKeyBase64 != priv {
		t.Error("expected bare PRIVATE_KEY_BASE64 to populate auth config")
	}
}
