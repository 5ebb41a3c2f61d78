package domain

import "errors"

// Common errors
var (
	ErrMissingFields    = errors.New("userId and eventSlug are required")
	ErrEventNotFound    = errors.New("event not found")
	ErrAlreadyBooked    = errors.New("already booked")
	ErrInvalidBookingID = errors.New("invalid booking id")
)
