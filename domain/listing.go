package domain

import (
	"encoding/json"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street         string `bson:"street" json:"street"`
	Suburb         string `bson:"suburb" json:"suburb"`
	GovernmentArea string `bson:"government_area" json:"government_area"`
	Market         string `bson:"market" json:"market"`
	Country        string `bson:"country" json:"country"`
}

type Images struct {
	PictureURL string `bson:"picture_url" json:"picture_url"`
}

type ReviewScores struct {
	Rating *int32 `bson:"review_scores_rating,omitempty" json:"review_scores_rating,omitempty"`
}

// Listing is a bookable property with its reservation history embedded in the
// bookings array. Identifiers are plain strings, matching the source dataset.
type Listing struct {
	ID           string               `bson:"_id" json:"_id"`
	Name         string               `bson:"name" json:"name"`
	Summary      string               `bson:"summary" json:"summary"`
	Price        primitive.Decimal128 `bson:"price" json:"price"`
	Bedrooms     int32                `bson:"bedrooms" json:"bedrooms"`
	PropertyType string               `bson:"property_type" json:"property_type"`
	Images       Images               `bson:"images" json:"images"`
	ReviewScores ReviewScores         `bson:"review_scores" json:"review_scores"`
	Address      Address              `bson:"address" json:"address"`
	Bookings     []Booking            `bson:"bookings,omitempty" json:"bookings,omitempty"`
}

type Listings []*Listing

// ListingSummary is the projection returned by the browse and search
// endpoints. The full document, bookings included, stays server-side.
type ListingSummary struct {
	ID           string               `bson:"_id" json:"_id"`
	Name         string               `bson:"name" json:"name"`
	Summary      string               `bson:"summary" json:"summary"`
	Price        primitive.Decimal128 `bson:"price" json:"price"`
	Bedrooms     int32                `bson:"bedrooms" json:"bedrooms"`
	PropertyType string               `bson:"property_type" json:"property_type"`
	Images       Images               `bson:"images" json:"images"`
	ReviewScores ReviewScores         `bson:"review_scores" json:"review_scores"`
	Address      Address              `bson:"address" json:"address"`
}

type ListingSummaries []*ListingSummary

func (o *Listing) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Listings) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Listing) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}
