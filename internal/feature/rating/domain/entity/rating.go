// Package entity defines the domain entities for the rating feature.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// MinRating is the lowest accepted score.
	MinRating = 1
	// MaxRating is the highest accepted score.
	MaxRating = 5
)

// Rating is post-ride feedback left by a user.
type Rating struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// RideID is the rated ride.
	RideID uuid.UUID `gorm:"type:uuid;not null;index" json:"rideId"`

	// GivenBy is the user leaving the feedback.
	GivenBy uuid.UUID `gorm:"type:uuid;not null" json:"givenBy"`

	// Rating is the score, within [MinRating, MaxRating].
	Rating int `gorm:"not null" json:"rating"`

	// Feedback is optional free text.
	Feedback string `gorm:"type:text" json:"feedback"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (r *Rating) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
