package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Credential holds the password hash for a user, one row per user.
// It is created in the same transaction as the User row at registration.
type Credential struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// UserID links the credential to its owning user.
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (c *Credential) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
