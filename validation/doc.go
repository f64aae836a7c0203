// Package validation provides request validation on top of
// go-playground/validator.
//
// Struct validation uses `validate` tags and returns errors.AppError with
// per-field details:
//
//	type registerRequest struct {
//		Email    string `json:"email" validate:"required,email"`
//		Password string `json:"password" validate:"required,strongpassword"`
//	}
//	if err := validation.Validate(req); err != nil { ... }
//
// The custom strongpassword rule enforces the account password policy:
// at least 8 characters, one digit, one uppercase letter.
package validation
