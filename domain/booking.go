package domain

import (
	"encoding/json"
	"io"
	"time"
)

// Booking is an embedded reservation record on a listing. Date ranges use
// half-open [checkIn, checkOut) semantics so adjacent stays can share a
// boundary date. Bookings are append-only; there is no cancellation flow.
type Booking struct {
	BookingID          string    `bson:"bookingId" json:"bookingId"`
	ListingID          string    `bson:"listingId" json:"listingId"`
	CheckIn            string    `bson:"checkIn" json:"checkIn"`
	CheckOut           string    `bson:"checkOut" json:"checkOut"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	Mobile             string    `bson:"mobile" json:"mobile"`
	PostalAddress      string    `bson:"postalAddress,omitempty" json:"postalAddress,omitempty"`
	ResidentialAddress string    `bson:"residentialAddress,omitempty" json:"residentialAddress,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the payload of the booking endpoint. CheckIn and CheckOut
// carry no binding tags on purpose: missing or malformed dates must surface
// as the MissingDates validation error, not as a bind failure.
type BookingRequest struct {
	ListingID          string `json:"listingId" validate:"required"`
	CheckIn            string `json:"checkIn"`
	CheckOut           string `json:"checkOut"`
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Mobile             string `json:"mobile" validate:"required,min=8,max=15"`
	PostalAddress      string `json:"postalAddress"`
	ResidentialAddress string `json:"residentialAddress"`
	TimezoneOffset     int    `json:"timezoneOffset"`
}

// Overlaps reports whether the booking's stay intersects [checkIn, checkOut).
// Stored dates are "YYYY-MM-DD", so string comparison orders the same way the
// dates do. Ranges that merely touch at a boundary do not overlap.
func (o *Booking) Overlaps(checkIn, checkOut string) bool {
	return o.CheckIn < checkOut && o.CheckOut > checkIn
}

func (o *Booking) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *BookingRequest) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}
