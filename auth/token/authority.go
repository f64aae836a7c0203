// Package token issues and verifies the service's bearer tokens.
//
// Tokens are compact RS256-signed JWTs carrying exactly three claims:
// "sub" (the principal's UUID), "iat", and "exp". The private key signs,
// the distributable public key verifies — holding the verification key
// does not grant the ability to forge tokens.
//
// Validity is determined purely by recomputing the signature and comparing
// the expiry to the current time; there is no server-side token record and
// no revocation path. A compromised token stays usable until its embedded
// expiry — a stated limitation of this design, not an oversight.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single error every verification failure collapses
// to: malformed token, bad signature, unexpected algorithm, expired, or a
// missing/invalid subject. Callers must not be able to distinguish these
// cases — distinguishable rejections would hand an attacker a signature
// oracle.
var ErrInvalidToken = errors.New("token: invalid or expired token")

// Authority issues and verifies bearer tokens with a fixed RSA key pair.
// It is read-only after construction and safe for unsynchronized concurrent
// use; every operation is a pure function of its inputs and the clock.
type Authority struct {
	cfg Config
}

// NewAuthority creates an Authority from configuration.
func NewAuthority(cfg Config) (*Authority, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &Authority{cfg: cfg}, nil
}

// Issue mints a signed token for an already-authenticated identity using
// the configured default lifetime. The Authority performs no authentication
// itself — it trusts the caller that identity is verified.
func (a *Authority) Issue(identity uuid.UUID) (string, error) {
	return a.IssueFor(identity, a.cfg.AccessTokenTTL)
}

// IssueFor mints a signed token with an explicit lifetime. The signature
// covers the entire claim set including the expiry; mutating any claim
// invalidates it. Pure computation — no persistence, no locks.
func (a *Authority) IssueFor(identity uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := gojwt.RegisteredClaims{
		Subject:   identity.String(),
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodRS256, claims).SignedString(a.cfg.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify validates a token string and returns the identity it was issued
// for. The accepted algorithm is pinned to RS256 both through the parser's
// valid-methods list and in the key func — a token self-declaring "none" or
// an HMAC scheme is rejected before any key material is applied.
//
// Verification is stateless and repeatable: the same token yields the same
// result until its expiry elapses. All failures return ErrInvalidToken.
func (a *Authority) Verify(tokenString string) (uuid.UUID, error) {
	parsed, err := gojwt.ParseWithClaims(tokenString, &gojwt.RegisteredClaims{}, a.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodRS256.Alg()}),
		gojwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*gojwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, ErrInvalidToken
	}

	identity, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return identity, nil
}

// keyFunc returns the verification key after checking the token's declared
// signing method family.
func (a *Authority) keyFunc(t *gojwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*gojwt.SigningMethodRSA); !ok {
		return nil, ErrInvalidToken
	}
	return a.cfg.PublicKey, nil
}
