package conversion

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/convertapi/database"
	"github.com/kbukum/convertapi/logger"
)

// Store persists conversion records.
type Store struct {
	db  *database.DB
	log *logger.Logger
}

// NewStore creates a conversion store.
func NewStore(db *database.DB, log *logger.Logger) *Store {
	return &Store{db: db, log: log.WithComponent("conversion")}
}

// Record inserts a conversion row.
func (s *Store) Record(ctx context.Context, c *Conversion) error {
	if c.Status == "" {
		c.Status = StatusPending
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	s.log.Debug("Conversion recorded", map[string]interface{}{
		"conversion_id": c.ID.String(),
		"user_id":       c.UserID.String(),
		"status":        c.Status,
	})
	return nil
}

// ListByUser returns the user's conversions, most recent first.
func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]Conversion, error) {
	var conversions []Conversion
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&conversions).Error
	if err != nil {
		return nil, err
	}
	return conversions, nil
}
