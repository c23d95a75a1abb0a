package services

import (
	"time"

	"github.com/IrfanulM/MyBNB/domain"
)

const dateLayout = "2006-01-02"

// ValidateBookingDates applies the admission rules for a proposed stay, in
// order, stopping at the first failure:
//
//  1. both dates present and parseable          -> ErrMissingDates
//  2. check-in not before the caller's today    -> ErrPastDate
//  3. check-in strictly before check-out        -> ErrInvalidRange
//
// The caller's "today" is reconstructed by subtracting the client-supplied
// UTC offset (minutes, as reported by JS getTimezoneOffset) from the server
// clock. That value is spoofable and drifts around DST changes, so this is a
// best-effort UX guard rather than a security control.
func ValidateBookingDates(checkIn, checkOut string, timezoneOffset int, now time.Time) error {
	if checkIn == "" || checkOut == "" {
		return domain.ErrMissingDates
	}
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return domain.ErrMissingDates
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return domain.ErrMissingDates
	}

	local := now.UTC().Add(-time.Duration(timezoneOffset) * time.Minute)
	localToday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(localToday) {
		return domain.ErrPastDate
	}

	if !in.Before(out) {
		return domain.ErrInvalidRange
	}
	return nil
}
