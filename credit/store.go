package credit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kbukum/convertapi/database"
	"github.com/kbukum/convertapi/logger"
)

// ErrNoAccount is returned when a user has no credit account.
var ErrNoAccount = errors.New("credit: no account for user")

// ErrInsufficient is returned when a spend exceeds the balance.
var ErrInsufficient = errors.New("credit: insufficient balance")

// Store persists credit accounts and their transaction history.
type Store struct {
	db  *database.DB
	log *logger.Logger
}

// NewStore creates a credit store.
func NewStore(db *database.DB, log *logger.Logger) *Store {
	return &Store{db: db, log: log.WithComponent("credit")}
}

// CreateAccount opens a credit account for the user. A non-zero initial
// balance is recorded as a grant transaction in the same database
// transaction as the account row.
func (s *Store) CreateAccount(ctx context.Context, userID uuid.UUID, initialBalance int64) (*Account, error) {
	account := &Account{UserID: userID, Balance: initialBalance}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		if initialBalance > 0 {
			grant := &Transaction{
				UserID:      userID,
				Amount:      initialBalance,
				Type:        TypeGrant,
				Description: "initial balance",
			}
			if err := tx.Create(grant).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Credit account opened", map[string]interface{}{
		"user_id": userID.String(),
		"balance": initialBalance,
	})
	return account, nil
}

// AccountFor returns the credit account for the user.
func (s *Store) AccountFor(ctx context.Context, userID uuid.UUID) (*Account, error) {
	var account Account
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Grant adds amount to the user's balance and records the transaction.
func (s *Store) Grant(ctx context.Context, userID uuid.UUID, amount int64, description string) error {
	return s.apply(ctx, userID, amount, TypeGrant, description)
}

// Spend subtracts amount from the user's balance and records the
// transaction. Fails with ErrInsufficient when the balance cannot cover it.
func (s *Store) Spend(ctx context.Context, userID uuid.UUID, amount int64, description string) error {
	return s.apply(ctx, userID, -amount, TypeSpend, description)
}

// apply adjusts the balance by delta and records the transaction. The
// balance guard and the adjustment are a single UPDATE statement, so two
// concurrent spends racing on the same row cannot both pass the guard and
// overdraw; a read-then-write would lose one of the updates under READ
// COMMITTED.
func (s *Store) apply(ctx context.Context, userID uuid.UUID, delta int64, txType, description string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Account{}).
			Where("user_id = ? AND balance + ? >= 0", userID, delta).
			Update("balance", gorm.Expr("balance + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNoAccount
			}
			return ErrInsufficient
		}

		record := &Transaction{
			UserID:      userID,
			Amount:      delta,
			Type:        txType,
			Description: description,
		}
		return tx.Create(record).Error
	})
}

// History returns the user's transactions, most recent first.
func (s *Store) History(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	var txs []Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}
