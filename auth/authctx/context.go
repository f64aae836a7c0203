// Package authctx propagates the authenticated identity through request
// context.
//
// The bearer middleware stores the identity after a successful Identify;
// handlers retrieve it without knowing anything about tokens.
//
// Usage:
//
//	// in middleware
//	ctx = authctx.Set(ctx, identity)
//
//	// in handlers
//	identity, ok := authctx.Identity(ctx)
//	identity := authctx.MustIdentity(ctx) // panics if missing
package authctx

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

// identityKey is the single key used to store the identity in context.
var identityKey = contextKey{}

// ErrNoIdentity is returned when no identity is present in the context.
var ErrNoIdentity = errors.New("authctx: no identity in context")

// Set stores the authenticated identity in the context.
func Set(ctx context.Context, identity uuid.UUID) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// Identity retrieves the authenticated identity from the context.
// Returns the identity and true if present, uuid.Nil and false otherwise.
func Identity(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(identityKey).(uuid.UUID)
	return id, ok
}

// MustIdentity retrieves the authenticated identity from the context.
// Panics if missing. Use in handlers where the bearer middleware guarantees
// the identity exists.
func MustIdentity(ctx context.Context) uuid.UUID {
	id, ok := Identity(ctx)
	if !ok {
		panic("authctx: identity not found in context")
	}
	return id
}

// IdentityOrError retrieves the authenticated identity from the context.
// Returns ErrNoIdentity if missing.
func IdentityOrError(ctx context.Context) (uuid.UUID, error) {
	id, ok := Identity(ctx)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}
	return id, nil
}
