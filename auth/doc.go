// Package auth composes the service's authentication core.
//
// Two layers do the real work, each in its own subpackage:
//
//   - auth/password — credential verification: slow, salted one-way hashing
//     of user passwords (bcrypt) and constant-time verification of login
//     attempts. Leaf component; no dependencies.
//   - auth/token    — the token authority: issues and verifies RS256-signed
//     bearer tokens with a process-wide RSA key pair.
//
// The top-level package ties them together behind Service:
//
//   - Authenticate(ctx, email, password) — resolve the email through a
//     CredentialSource, verify the password, mint a token. Invoked once at
//     login; the credential verifier is never consulted again afterwards.
//   - Identify(token) — recover and validate the identity from a bearer
//     token. Invoked before dispatching every protected operation.
//
// Failure collapsing is a deliberate security property, not a shortcut:
// every login failure is ErrInvalidCredentials, every token failure is
// token.ErrInvalidToken. Distinguishable rejections would let an attacker
// probe which check failed (oracle leakage) — do not "improve" these errors
// into more specific ones.
//
// auth/authctx propagates the authenticated identity through request
// context for handlers.
//
// Out of scope by design: session revocation lists, refresh-token rotation,
// multi-factor authentication, and role checks. The service issues a single
// bearer token type with a fixed expiry and no revocation mechanism.
package auth
