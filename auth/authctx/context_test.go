package authctx

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSetAndIdentity(t *testing.T) {
	want := uuid.New()
	ctx := Set(context.Background(), want)

	got, ok := Identity(ctx)
	if !ok {
		t.Fatal("Identity() ok = false, want true")
	}
	if got != want {
		t.Errorf("Identity() = %s, want %s", got, want)
	}
}

func TestIdentity_Missing(t *testing.T) {
	got, ok := Identity(context.Background())
	if ok {
		t.Error("Identity() ok = true on empty context")
	}
	if got != uuid.Nil {
		t.Errorf("Identity() = %s, want uuid.Nil", got)
	}
}

func TestMustIdentity_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on missing identity")
		}
	}()
	MustIdentity(context.Background())
}

func TestIdentityOrError(t *testing.T) {
	if _, err := IdentityOrError(context.Background()); !errors.Is(err, ErrNoIdentity) {
		t.Errorf("IdentityOrError() error = %v, want ErrNoIdentity", err)
	}

	want := uuid.New()
	got, err := IdentityOrError(Set(context.Background(), want))
	if err != nil {
		t.Fatalf("IdentityOrError() error = %v", err)
	}
	if got != want {
		t.Errorf("IdentityOrError() = %s, want %s", got, want)
	}
}
