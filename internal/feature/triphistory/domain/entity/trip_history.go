// Package entity defines the domain entities for the triphistory feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus is the settlement state of a logged trip.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// TripHistory is one entry in the append-only trip log. A row is written in
// the same transaction that completes a ride with an assigned driver.
type TripHistory struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	DriverID uuid.UUID `gorm:"type:uuid;not null;index" json:"driverId"`
	RideID   uuid.UUID `gorm:"type:uuid;not null" json:"rideId"`

	// Fare is the ride price at completion time.
	Fare float64 `gorm:"not null" json:"fare"`

	PaymentStatus PaymentStatus `gorm:"size:16;not null;default:pending" json:"paymentStatus"`

	Date time.Time `gorm:"not null" json:"date"`
}

// BeforeCreate assigns a UUID primary key and stamps the entry date.
func (t *TripHistory) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if t.PaymentStatus == "" {
		t.PaymentStatus = PaymentStatusPending
	}
	return nil
}
