package service

import "errors"

var (
	// ErrRoomNotFound is returned when no room has the requested number
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidRequest is returned when a booking request fails validation
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRoomBooked is returned when the requested period overlaps an existing reservation
	ErrRoomBooked = errors.New("room is already booked for the requested dates")
	// ErrRoomFull is returned when a stay has no space for another guest
	ErrRoomFull = errors.New("room is at full capacity")
)
