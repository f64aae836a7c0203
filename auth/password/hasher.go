// Package password implements the credential side of authentication:
// deliberately slow, salted one-way hashing of user passwords and
// verification of login attempts against stored records.
//
// Records are bcrypt strings (e.g. "$2a$12$...") — the algorithm, cost
// factor, and salt are embedded in the record itself, so verification
// needs no state beyond the record and the candidate password.
//
// Usage:
//
//	hasher := password.NewBcryptHasher()
//	record, err := hasher.Hash("my-password")
//	err = hasher.Verify("my-password", record) // nil on match
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is the normal negative result: the password does not match
// the record, or the record is malformed or in a foreign format. This is
// not an internal failure and must never be reported as one.
var ErrMismatch = errors.New("password: credentials do not match")

// ErrUnsupportedRecord reports a record whose embedded cost parameter is
// outside the supported range. Unlike ErrMismatch this is an internal
// condition; callers at the authentication boundary still collapse both
// into a generic rejection so the response does not reveal which check
// failed.
var ErrUnsupportedRecord = errors.New("password: unsupported credential record")

// Hasher hashes passwords and verifies login attempts against stored records.
type Hasher interface {
	// Hash returns a self-describing hashed record for the password.
	// Two calls with the same password produce different records (fresh salt).
	Hash(password string) (string, error)

	// Verify checks a password against a stored record. It returns nil on a
	// match, ErrMismatch for a wrong password or an unreadable record, and
	// ErrUnsupportedRecord when the record's cost parameter is unsupported.
	Verify(password, record string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost      int
	minLength int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
// Out-of-range values are ignored and the default kept.
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// WithMinLength sets the minimum accepted password length (default: 8).
func WithMinLength(n int) BcryptOption {
	return func(h *BcryptHasher) {
		if n > 0 {
			h.minLength = n
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12, minLength: 8}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the bcrypt record for the password. bcrypt generates a
// fresh random salt on every call, so the output bytes differ between
// calls even for identical inputs.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) < h.minLength {
		return "", fmt.Errorf("password: minimum length is %d characters", h.minLength)
	}
	if len(password) > 72 {
		return "", errors.New("password: maximum length is 72 characters (bcrypt limit)")
	}
	record, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(record), nil
}

// Verify recomputes the hash using the cost and salt embedded in record and
// compares it against the stored digest in constant time. A wrong password
// is a normal ErrMismatch, never a panic or an internal error; so is a
// record this hasher cannot read at all.
func (h *BcryptHasher) Verify(password, record string) error {
	err := bcrypt.CompareHashAndPassword([]byte(record), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		var costErr bcrypt.InvalidCostError
		if errors.As(err, &costErr) {
			return ErrUnsupportedRecord
		}
		// Truncated, foreign-format, or otherwise unreadable records are a
		// normal "does not match".
		return ErrMismatch
	}
}
