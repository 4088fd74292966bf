// Package usecase implements the business logic for the ride feature.
package usecase

import "errors"

var (
	// ErrRideNotFound is returned when no ride exists for the given ID.
	ErrRideNotFound = errors.New("ride not found")

	// ErrRideNotAvailable is returned when booking a ride that does not exist
	// or is no longer pending. Callers cannot distinguish the two cases, by
	// the same contract as the original API.
	ErrRideNotAvailable = errors.New("ride not available")
)
