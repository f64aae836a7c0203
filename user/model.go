// Package user provides the account model and its persistence.
package user

import (
	"github.com/kbukum/convertapi/database"
)

// User is an account that can log in. The stored password record is a bcrypt
// hash; the plaintext never reaches this package.
type User struct {
	database.BaseModel
	Email          string `gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:255;not null"`
	IsActive       bool   `gorm:"default:true"`
}

// TableName sets the GORM table name.
func (User) TableName() string { return "users" }
