package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/convertapi/conversion"
	"github.com/kbukum/convertapi/credit"
	"github.com/kbukum/convertapi/user"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,strongpassword,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of an account. The stored password record
// never appears here.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// CreditResponse reports the account balance and its transaction history.
type CreditResponse struct {
	Balance      int64                 `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionResponse is one ledger entry.
type TransactionResponse struct {
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCreditResponse(account *credit.Account, history []credit.Transaction) CreditResponse {
	txs := make([]TransactionResponse, 0, len(history))
	for _, tx := range history {
		txs = append(txs, TransactionResponse{
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return CreditResponse{Balance: account.Balance, Transactions: txs}
}

// ConvertRequest is the body of POST /conversions.
type ConvertRequest struct {
	SourceFormat   string `json:"source_format" validate:"required,max=20"`
	TargetFormat   string `json:"target_format" validate:"required,max=20"`
	InputSizeBytes int64  `json:"input_size_bytes" validate:"min=0"`
}

// ConversionResponse is the public view of a conversion record.
type ConversionResponse struct {
	ID             uuid.UUID `json:"id"`
	SourceFormat   string    `json:"source_format"`
	TargetFormat   string    `json:"target_format"`
	InputSizeBytes int64     `json:"input_size_bytes"`
	CreditsUsed    int64     `json:"credits_used"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func newConversionResponse(c *conversion.Conversion) ConversionResponse {
	return ConversionResponse{
		ID:             c.ID,
		SourceFormat:   c.SourceFormat,
		TargetFormat:   c.TargetFormat,
		InputSizeBytes: c.InputSizeBytes,
		CreditsUsed:    c.CreditsUsed,
		Status:         c.Status,
		ErrorMessage:   c.ErrorMessage,
		CreatedAt:      c.CreatedAt,
	}
}

func newConversionList(list []conversion.Conversion) []ConversionResponse {
	out := make([]ConversionResponse, 0, len(list))
	for i := range list {
		out = append(out, newConversionResponse(&list[i]))
	}
	return out
}
