package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kbukum/convertapi/database"
	"github.com/kbukum/convertapi/logger"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user: not found")

// ErrDuplicateEmail is returned when registering an email that already has
// an account.
var ErrDuplicateEmail = errors.New("user: email already registered")

// Store persists users.
type Store struct {
	db  *database.DB
	log *logger.Logger
}

// NewStore creates a user store.
func NewStore(db *database.DB, log *logger.Logger) *Store {
	return &Store{db: db, log: log.WithComponent("user")}
}

// Create inserts a new user with the given email and stored password record.
// Email uniqueness is enforced by the database; a violation surfaces as
// ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, email, hashedPassword string) (*User, error) {
	u := &User{
		Email:          normalizeEmail(email),
		HashedPassword: hashedPassword,
		IsActive:       true,
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	s.log.Info("User created", map[string]interface{}{"user_id": u.ID.String()})
	return u, nil
}

// ByEmail finds a user by email.
func (s *Store) ByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ByID finds a user by its identity.
func (s *Store) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// normalizeEmail lowercases and trims the address so lookups are
// case-insensitive on the email while passwords stay case-sensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isUniqueViolation detects unique-constraint errors across drivers.
// gorm translates postgres violations to ErrDuplicatedKey; sqlite reports
// them as plain errors mentioning the constraint.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
