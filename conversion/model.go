// Package conversion records file conversion jobs per user.
package conversion

import (
	"github.com/google/uuid"

	"github.com/kbukum/convertapi/database"
)

// Conversion statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Conversion is a single conversion job and its outcome.
type Conversion struct {
	database.BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	SourceFormat   string    `gorm:"size:20;not null"`
	TargetFormat   string    `gorm:"size:20;not null"`
	InputSizeBytes int64     `gorm:"not null"`
	CreditsUsed    int64     `gorm:"not null"`
	Status         string    `gorm:"size:20;not null"`
	ErrorMessage   string    `gorm:"size:500"`
}

// TableName sets the GORM table name.
func (Conversion) TableName() string { return "conversions" }
