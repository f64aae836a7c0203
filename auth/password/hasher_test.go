package password

import (
	"errors"
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	record, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(record, "$2") {
		t.Errorf("record = %q, want bcrypt format", record)
	}
	if err := h.Verify("Secret123", record); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}

func TestBcryptHasher_FreshSalt(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	first, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
	if err := h.Verify("Secret123", first); err != nil {
		t.Errorf("Verify(first) error = %v", err)
	}
	if err := h.Verify("Secret123", second); err != nil {
		t.Errorf("Verify(second) error = %v", err)
	}
}

func TestBcryptHasher_Verify_Rejections(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	record, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		record   string
	}{
		{"wrong password", "Secret124", record},
		{"case variant", "secret123", record},
		{"empty password", "", record},
		{"empty record", "Secret123", ""},
		{"truncated record", "Secret123", record[:10]},
		{"foreign format record", "Secret123", "plaintext-not-a-hash"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := h.Verify(tc.password, tc.record); !errors.Is(err, ErrMismatch) {
				t.Errorf("Verify() error = %v, want ErrMismatch", err)
			}
		})
	}
}

func TestBcryptHasher_Hash_LengthBounds(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	if _, err := h.Hash("Ab1"); err == nil {
		t.Error("expected error for password below minimum length")
	}
	if _, err := h.Hash(strings.Repeat("a", 73)); err == nil {
		t.Error("expected error for password above bcrypt's 72 byte limit")
	}
	if _, err := h.Hash(strings.Repeat("a", 72)); err != nil {
		t.Errorf("Hash(72 bytes) error = %v, want nil", err)
	}
}

func TestBcryptHasher_Options(t *testing.T) {
	h := NewBcryptHasher(WithCost(99), WithMinLength(4))
	if h.cost != 12 {
		t.Errorf("out-of-range cost must keep default, got %d", h.cost)
	}
	if h.minLength != 4 {
		t.Errorf("minLength = %d, want 4", h.minLength)
	}
	if _, err := h.Hash("Ab12"); err != nil {
		t.Errorf("Hash() with lowered minimum error = %v", err)
	}
}

func TestBcryptHasher_CrossHasherRecords(t *testing.T) {
	// A record written at one cost verifies under a hasher configured with a
	// different cost: the cost lives in the record, not the verifier.
	writer := NewBcryptHasher(WithCost(4))
	reader := NewBcryptHasher(WithCost(10))

	record, err := writer.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if err := reader.Verify("Secret123", record); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}
