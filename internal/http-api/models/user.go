package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an anonymous library-card identity. The library code is the only
// credential a reader ever presents.
type User struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	LibraryID   string    `gorm:"uniqueIndex;not null" json:"library_id"`
	CreatedAt   time.Time `json:"created_at"`
	LastAccess  time.Time `json:"last_access"`
	AccessCount int       `gorm:"default:0" json:"access_count"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
