package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kbukum/convertapi/auth/password"
	"github.com/kbukum/convertapi/auth/token"
	"github.com/kbukum/convertapi/logger"
)

// ErrUnknownEmail is returned by CredentialSource implementations when no
// principal exists for the email.
var ErrUnknownEmail = errors.New("auth: unknown email")

// ErrInvalidCredentials is the single error every login failure collapses
// to: unknown email, wrong password, or an unreadable stored record. The
// caller must not be able to tell which — the distinction only appears in
// internal logs.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Credentials is what the user store resolves a login email to: the
// principal's identity and its stored password record. The record is opaque
// here — only the credential verifier reads it.
type Credentials struct {
	ID           uuid.UUID
	PasswordHash string
}

// CredentialSource resolves a login email to stored credentials.
// Implemented by the user store; Service depends on this interface rather
// than on a concrete store.
type CredentialSource interface {
	LookupByEmail(ctx context.Context, email string) (Credentials, error)
}

// CredentialSourceFunc adapts an ordinary function to the CredentialSource
// interface.
type CredentialSourceFunc func(ctx context.Context, email string) (Credentials, error)

// LookupByEmail implements CredentialSource.
func (f CredentialSourceFunc) LookupByEmail(ctx context.Context, email string) (Credentials, error) {
	return f(ctx, email)
}

// Service composes the credential verifier and the token authority into the
// two request-shaped operations the routing layer consumes: Authenticate
// (login) and Identify (guarding protected routes). It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	source    CredentialSource
	hasher    password.Hasher
	authority *token.Authority
	log       *logger.Logger
}

// NewService creates an authentication service.
func NewService(source CredentialSource, hasher password.Hasher, authority *token.Authority, log *logger.Logger) *Service {
	return &Service{
		source:    source,
		hasher:    hasher,
		authority: authority,
		log:       log.WithComponent("auth"),
	}
}

// Authenticate verifies the password for email and mints a bearer token for
// the resolved identity. Every rejection path returns ErrInvalidCredentials
// so the response cannot reveal whether the email exists, the password was
// wrong, or the stored record was unreadable.
func (s *Service) Authenticate(ctx context.Context, email, plaintext string) (string, error) {
	creds, err := s.source.LookupByEmail(ctx, email)
	if err != nil {
		s.log.Debug("Login rejected", map[string]interface{}{"reason": "unknown email"})
		return "", ErrInvalidCredentials
	}

	if err := s.hasher.Verify(plaintext, creds.PasswordHash); err != nil {
		reason := "password mismatch"
		if errors.Is(err, password.ErrUnsupportedRecord) {
			reason = "unsupported credential record"
		}
		s.log.Debug("Login rejected", map[string]interface{}{"reason": reason})
		return "", ErrInvalidCredentials
	}

	signed, err := s.authority.Issue(creds.ID)
	if err != nil {
		// Signing failure is an internal fault, not a credential rejection.
		return "", err
	}
	return signed, nil
}

// Identify validates a bearer token and returns the identity it names.
// The credential verifier is never consulted here — token verification
// alone recovers the identity. Fails with token.ErrInvalidToken for every
// rejection class.
func (s *Service) Identify(tokenString string) (uuid.UUID, error) {
	return s.authority.Verify(tokenString)
}
