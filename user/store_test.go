package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/convertapi/database"
	"github.com/kbukum/convertapi/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.New(context.Background(), database.Config{
		Driver:     "sqlite",
		DSN:        "file:" + t.Name() + "?mode=memory&cache=shared",
		MaxRetries: 1,
	}, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return NewStore(db, logger.NewDefault("test"))
}

func TestStore_CreateAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "User@Example.com", "$2b$12$fakehash")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if !created.IsActive {
		t.Error("expected new user to be active")
	}
	if created.Email != "user@example.com" {
		t.Errorf("Email = %q, want normalized lowercase", created.Email)
	}

	byEmail, err := s.ByEmail(ctx, "USER@example.COM")
	if err != nil {
		t.Fatalf("ByEmail() error = %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("ByEmail ID = %v, want %v", byEmail.ID, created.ID)
	}

	byID, err := s.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if byID.Email != created.Email {
		t.Errorf("ByID Email = %q, want %q", byID.Email, created.Email)
	}
}

func TestStore_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, "dup@example.com", "h1"); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	_, err := s.Create(ctx, "dup@example.com", "h2")
	if err != ErrDuplicateEmail {
		t.Errorf("second Create() error = %v, want ErrDuplicateEmail", err)
	}

	// Same address with different case is still a duplicate.
	_, err = s.Create(ctx, "DUP@example.com", "h3")
	if err != ErrDuplicateEmail {
		t.Errorf("case-variant Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.ByEmail(ctx, "ghost@example.com"); err != ErrNotFound {
		t.Errorf("ByEmail() error = %v, want ErrNotFound", err)
	}
	if _, err := s.ByID(ctx, uuid.New()); err != ErrNotFound {
		t.Errorf("ByID() error = %v, want ErrNotFound", err)
	}
}
