// Package entity defines the domain entities for the ride feature.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RideStatus is the lifecycle state of a ride. The column is stored as text,
// but every write path goes through this closed enumeration, so no other
// value is ever produced.
type RideStatus string

const (
	// RideStatusPending is the state of a freshly created ride.
	RideStatusPending RideStatus = "pending"
	// RideStatusOngoing is the state of a booked ride.
	RideStatusOngoing RideStatus = "ongoing"
	// RideStatusCompleted is the terminal state.
	RideStatusCompleted RideStatus = "completed"
)

// Valid reports whether s is a member of the closed status set.
func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusPending, RideStatusOngoing, RideStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is legal.
// Booking requires pending; completion is deliberately permissive and is
// accepted from any non-terminal state.
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	switch next {
	case RideStatusOngoing:
		return s == RideStatusPending
	case RideStatusCompleted:
		return s == RideStatusPending || s == RideStatusOngoing
	}
	return false
}

// Ride is a single transportation request from a rider, optionally matched to
// a driver, with a lifecycle status.
type Ride struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// DriverID is optional at creation; a ride may be created unmatched.
	DriverID *uuid.UUID `gorm:"type:uuid" json:"driverId"`

	// RiderID is the requesting user, taken from the authenticated caller.
	RiderID uuid.UUID `gorm:"type:uuid;not null" json:"riderId"`

	VehicleType string `gorm:"size:64;not null" json:"vehicleType"`

	Status RideStatus `gorm:"size:16;not null;default:pending" json:"status"`

	SeatsAvailable int     `gorm:"not null" json:"seatsAvailable"`
	Price          float64 `gorm:"not null" json:"price"`

	Src  string `gorm:"size:255;not null" json:"src"`
	Dest string `gorm:"size:255;not null" json:"dest"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (r *Ride) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
