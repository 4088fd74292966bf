// Package entity defines the domain entities for the driver feature.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	authentity "ride_backend/internal/feature/auth/domain/entity"
)

// DriverStatus is the approval state of a driver offer.
// It is independent of any ride's lifecycle status.
type DriverStatus string

const (
	// DriverStatusPending is the initial state of every registration.
	DriverStatusPending DriverStatus = "pending"
	// DriverStatusApproved marks an offer cleared by the operator.
	DriverStatusApproved DriverStatus = "approved"
	// DriverStatusRejected marks an offer turned down by the operator.
	DriverStatusRejected DriverStatus = "rejected"
)

// Valid reports whether s is a member of the closed status set.
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusPending, DriverStatusApproved, DriverStatusRejected:
		return true
	}
	return false
}

// Driver is a standing offer: a route, vehicle, capacity and price advertised
// by a driver, pending operator approval.
type Driver struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// UserID is the owning user's ID.
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"userId"`

	VehicleType string `gorm:"size:64;not null" json:"vehicleType"`

	// Availability is the advertised seat count. Defaults to 1 when not supplied.
	Availability int `gorm:"not null;default:1" json:"availability"`

	Origin      string  `gorm:"size:255;not null" json:"origin"`
	Destination string  `gorm:"size:255;not null" json:"destination"`
	Price       float64 `gorm:"not null" json:"price"`

	// RegistrationNumber is the vehicle's plate number, unique per vehicle.
	RegistrationNumber string `gorm:"uniqueIndex;size:64;not null" json:"registrationNumber"`

	LicenseNumber     string `gorm:"size:64;not null" json:"licenseNumber"`
	LicenseHolderName string `gorm:"size:255;not null" json:"licenseHolderName"`

	Status DriverStatus `gorm:"size:16;not null;default:pending" json:"status"`

	HelmetRequired bool `gorm:"not null;default:false" json:"helmetRequired"`

	// User is the owning user, preloaded on listing.
	User authentity.User `gorm:"foreignKey:UserID" json:"User"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (d *Driver) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
