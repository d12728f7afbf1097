package models

import "errors"

// Validation errors returned by the booking core. They never leave a room or
// the hotel in a modified state.
var (
	// ErrInvalidPeriod is returned when a period's start is not before its end
	ErrInvalidPeriod = errors.New("invalid reservation period")
	// ErrInvalidArgument is returned when a required value is missing
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNullState is returned when an operation needs a current stay and there is none
	ErrNullState = errors.New("room has no current stay")
	// ErrNoActiveReservation is returned by checkout when no reservation covers the date
	ErrNoActiveReservation = errors.New("no active reservation for this date")
)
