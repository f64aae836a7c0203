package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/convertapi/auth/authctx"
	apperrors "github.com/kbukum/convertapi/errors"
)

// IdentityKey is the Gin context key the bearer guard stores the
// authenticated identity under.
const IdentityKey = "identity"

// TokenIdentifier validates a bearer token string and returns the identity
// it names. Every rejection must come back as a single opaque error.
type TokenIdentifier func(token string) (uuid.UUID, error)

// RequireAuth returns a Gin middleware that guards routes with bearer token
// authentication. Every rejection produces the same 401 body regardless of
// whether the header was missing, malformed, or the token failed
// verification.
func RequireAuth(identify TokenIdentifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		identity, err := identify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(IdentityKey, identity)
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), identity))
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	appErr := apperrors.InvalidToken()
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

// Identity returns the authenticated identity stored by RequireAuth.
func Identity(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
