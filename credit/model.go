// Package credit provides the credit ledger: one account per user plus an
// append-only transaction history.
package credit

import (
	"github.com/google/uuid"

	"github.com/kbukum/convertapi/database"
)

// Account holds the current credit balance for a user.
type Account struct {
	database.BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Balance int64     `gorm:"not null;default:0"`
}

// TableName sets the GORM table name.
func (Account) TableName() string { return "credits" }

// Transaction types.
const (
	TypeGrant = "grant"
	TypeSpend = "spend"
)

// Transaction records a single balance change. Rows are never updated or
// deleted; the account balance is the sum of its transactions.
type Transaction struct {
	database.BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount      int64     `gorm:"not null"`
	Type        string    `gorm:"size:50;not null"`
	Description string    `gorm:"size:255"`
}

// TableName sets the GORM table name.
func (Transaction) TableName() string { return "credit_transactions" }
