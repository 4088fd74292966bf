// Package usecase implements the business logic for the driver feature.
package usecase

import "errors"

var (
	// ErrDriverNotFound is returned when no driver offer exists for the given ID.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrDuplicateRegistration is returned when a vehicle registration number
	// is already advertised by another driver offer.
	ErrDuplicateRegistration = errors.New("registration number already registered")

	// ErrInvalidStatusChange is returned when an approval decision is applied
	// to an offer that is no longer pending.
	ErrInvalidStatusChange = errors.New("driver status can only change while pending")
)
