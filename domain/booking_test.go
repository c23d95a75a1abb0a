package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingOverlaps(t *testing.T) {
	existing := Booking{CheckIn: "2024-03-10", CheckOut: "2024-03-15"}

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"straddles the end", "2024-03-14", "2024-03-20", true},
		{"straddles the start", "2024-03-05", "2024-03-11", true},
		{"fully inside", "2024-03-11", "2024-03-13", true},
		{"fully covers", "2024-03-01", "2024-03-31", true},
		{"identical range", "2024-03-10", "2024-03-15", true},
		{"touches the end boundary", "2024-03-15", "2024-03-20", false},
		{"touches the start boundary", "2024-03-05", "2024-03-10", false},
		{"entirely before", "2024-03-01", "2024-03-05", false},
		{"entirely after", "2024-03-20", "2024-03-25", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, existing.Overlaps(tc.checkIn, tc.checkOut))
		})
	}
}
