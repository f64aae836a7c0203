package api

import (
	"context"

	"github.com/kbukum/convertapi/auth"
	"github.com/kbukum/convertapi/user"
)

// CredentialSource adapts the user store to the auth service's lookup
// interface. Inactive accounts resolve to no credentials, which the auth
// service collapses into the same rejection as an unknown email.
func CredentialSource(users *user.Store) auth.CredentialSource {
	return auth.CredentialSourceFunc(func(ctx context.Context, email string) (auth.Credentials, error) {
		u, err := users.ByEmail(ctx, email)
		if err != nil {
			return auth.Credentials{}, auth.ErrUnknownEmail
		}
		if !u.IsActive {
			return auth.Credentials{}, auth.ErrUnknownEmail
		}
		return auth.Credentials{ID: u.ID, PasswordHash: u.HashedPassword}, nil
	})
}
