// Package entity defines the domain entities for the auth feature.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account, rider and driver alike.
// The original schema carries no timestamps on this table, so neither do we.
type User struct {
	// ID is the unique identifier for the user.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Age in years, supplied at registration.
	Age int `gorm:"not null" json:"age"`

	// Gender as free text, supplied at registration.
	Gender string `gorm:"size:32;not null" json:"gender"`

	// Phone is the user's phone number. It must be unique across all users.
	Phone string `gorm:"uniqueIndex;size:32;not null" json:"phone"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
