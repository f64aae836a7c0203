package token

import (
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strings"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// DecodePEM returns PEM bytes from either raw PEM text or base64-wrapped
// PEM. Configuration transports keys base64-wrapped so they survive
// environments that cannot hold embedded newlines (.env files, most
// deployment platforms' env var UIs).
func DecodePEM(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("key material is empty")
	}
	if strings.HasPrefix(s, "-----BEGIN") {
		return []byte(s), nil
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("key is neither PEM nor base64-wrapped PEM: %w", err)
	}
	return raw, nil
}

// LoadPrivateKey parses an RSA private key from raw or base64-wrapped PEM
// text (PKCS#1 or PKCS#8).
func LoadPrivateKey(s string) (*rsa.PrivateKey, error) {
	pemText, err := DecodePEM(s)
	if err != nil {
		return nil, fmt.Errorf("token: private key: %w", err)
	}
	key, err := gojwt.ParseRSAPrivateKeyFromPEM(pemText)
	if err != nil {
		return nil, fmt.Errorf("token: parse private key: %w", err)
	}
	return key, nil
}

// LoadPublicKey parses an RSA public key from raw or base64-wrapped PEM
// text (PKIX or PKCS#1).
func LoadPublicKey(s string) (*rsa.PublicKey, error) {
	pemText, err := DecodePEM(s)
	if err != nil {
		return nil, fmt.Errorf("token: public key: %w", err)
	}
	key, err := gojwt.ParseRSAPublicKeyFromPEM(pemText)
	if err != nil {
		return nil, fmt.Errorf("token: parse public key: %w", err)
	}
	return key, nil
}
