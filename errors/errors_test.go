package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error_WithoutCause(t *testing.T) {
	e := New(ErrCodeNotFound, "not here", http.StatusNotFound)
	want := "NOT_FOUND: not here"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	e := Internal(cause)
	got := e.Error()
	want := "INTERNAL_ERROR: An unexpected error occurred. Please try again or contact support. (cause: disk on fire)"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	e := DatabaseError(cause)
	if !stderrors.Is(e, cause) {
		t.Error("expected errors.Is to find the cause through Unwrap")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	e := Validation("bad input").WithDetails(map[string]any{"field": "email"})
	if e.Details["field"] != "email" {
		t.Errorf("expected detail field=email, got %v", e.Details["field"])
	}
	e.WithDetail("reason", "format")
	if e.Details["reason"] != "format" {
		t.Errorf("expected detail reason=format, got %v", e.Details["reason"])
	}
}

func TestNew_RetryableDetection(t *testing.T) {
	tests := []struct {
		code      ErrorCode
		retryable bool
	}{
		{ErrCodeServiceUnavailable, true},
		{ErrCodeTimeout, true},
		{ErrCodeDatabaseError, true},
		{ErrCodeNotFound, false},
		{ErrCodeInvalidCredentials, false},
		{ErrCodeInvalidToken, false},
		{ErrCodeInternal, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			e := New(tc.code, "msg", http.StatusInternalServerError)
			if e.Retryable != tc.retryable {
				t.Errorf("Retryable = %v, want %v", e.Retryable, tc.retryable)
			}
		})
	}
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   ErrorCode
		status int
	}{
		{"not found", NotFound("user", "42"), ErrCodeNotFound, http.StatusNotFound},
		{"already exists", AlreadyExists("user"), ErrCodeAlreadyExists, http.StatusConflict},
		{"invalid input", InvalidInput("email", "bad format"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"missing field", MissingField("password"), ErrCodeMissingField, http.StatusBadRequest},
		{"unauthorized", Unauthorized(""), ErrCodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden(""), ErrCodeForbidden, http.StatusForbidden},
		{"invalid credentials", InvalidCredentials(), ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", InvalidToken(), ErrCodeInvalidToken, http.StatusUnauthorized},
		{"insufficient credits", InsufficientCredits(), ErrCodeInsufficientCredits, http.StatusPaymentRequired},
		{"internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError},
		{"database", DatabaseError(nil), ErrCodeDatabaseError, http.StatusInternalServerError},
		{"service unavailable", ServiceUnavailable("db"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("Code = %q, want %q", tc.err.Code, tc.code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("HTTPStatus = %d, want %d", tc.err.HTTPStatus, tc.status)
			}
		})
	}
}

func TestInvalidCredentials_UniformMessage(t *testing.T) {
	// The login rejection message must carry no hint of the rejection cause.
	a := InvalidCredentials()
	b := InvalidCredentials()
	if a.Message != b.Message {
		t.Error("expected identical message on every call")
	}
	if a.Message != "Invalid credentials." {
		t.Errorf("Message = %q, want %q", a.Message, "Invalid credentials.")
	}
	if a.Details != nil {
		t.Error("expected no details on credential rejection")
	}
}

func TestInvalidToken_UniformMessage(t *testing.T) {
	e := InvalidToken()
	if e.Message != "Invalid or expired token." {
		t.Errorf("Message = %q, want %q", e.Message, "Invalid or expired token.")
	}
	if e.Details != nil {
		t.Error("expected no details on token rejection")
	}
}

func TestToResponse(t *testing.T) {
	e := NotFound("conversion", "abc")
	resp := e.ToResponse()
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("response code = %q, want %q", resp.Error.Code, ErrCodeNotFound)
	}
	if resp.Error.Message != e.Message {
		t.Errorf("response message = %q, want %q", resp.Error.Message, e.Message)
	}
	if resp.Error.Details["resource"] != "conversion" {
		t.Errorf("response details missing resource, got %v", resp.Error.Details)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("user", "")) {
		t.Error("expected IsAppError true for AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError false for plain error")
	}
	wrapped := fmt.Errorf("wrapped: %w", Unauthorized(""))
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError true for wrapped AppError")
	}
}

func TestAsAppError(t *testing.T) {
	e := Forbidden("nope")
	got, ok := AsAppError(fmt.Errorf("outer: %w", e))
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if got.Code != ErrCodeForbidden {
		t.Errorf("Code = %q, want %q", got.Code, ErrCodeForbidden)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail for plain error")
	}
}
