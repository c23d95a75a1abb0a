package domain

import "errors"

// Booking and auth failures the handlers translate to HTTP statuses. The
// messages double as the response bodies, so they are phrased for the caller.
var (
	ErrMissingDates       = errors.New("please select both check-in and check-out dates")
	ErrPastDate           = errors.New("check-in date cannot be in the past")
	ErrInvalidRange       = errors.New("check-out date must be after the check-in date")
	ErrListingNotFound    = errors.New("listing not found")
	ErrDateConflict       = errors.New("the listing is already booked for the selected dates")
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("an account with that email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain upper case, lower case, a digit and a special character")
)
