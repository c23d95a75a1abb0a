package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IrfanulM/MyBNB/domain"
)

// BookingServiceImpl is the sole writer of booking records. Bookings live
// embedded in their listing document, which keeps the overlap check and the
// append scoped to a single document.
type BookingServiceImpl struct {
	collection *mongo.Collection
}

func NewBookingServiceImpl(collection *mongo.Collection) BookingService {
	return &BookingServiceImpl{collection: collection}
}

// CreateBooking appends a validated stay to its listing. The overlap check
// and the append are a single conditional UpdateOne: the filter only matches
// the listing while no embedded booking satisfies
// checkIn < newCheckOut && checkOut > newCheckIn, so two concurrent requests
// for overlapping dates cannot both commit. Date sanity checks are the
// booking validator's job and happen before this is called.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, request *domain.BookingRequest) (*domain.Booking, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"_id": request.ListingID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrListingNotFound
	}

	booking := &domain.Booking{
		BookingID:          uuid.NewString(),
		ListingID:          request.ListingID,
		CheckIn:            request.CheckIn,
		CheckOut:           request.CheckOut,
		Name:               request.Name,
		Email:              request.Email,
		Mobile:             request.Mobile,
		PostalAddress:      request.PostalAddress,
		ResidentialAddress: request.ResidentialAddress,
		CreatedAt:          time.Now().UTC(),
	}

	// Dates are stored as "YYYY-MM-DD" strings, which order lexicographically
	// the same as the dates themselves, so $lt/$gt is the half-open interval
	// overlap test.
	filter := bson.M{
		"_id": request.ListingID,
		"bookings": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"checkIn":  bson.M{"$lt": booking.CheckOut},
			"checkOut": bson.M{"$gt": booking.CheckIn},
		}}},
	}
	update := bson.M{"$push": bson.M{"bookings": booking}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// The listing exists, so the filter can only have missed because an
		// overlapping booking is present.
		return nil, domain.ErrDateConflict
	}

	return booking, nil
}

// BookingsByEmail returns every listing holding at least one booking made
// under the given email, bookings included.
func (s *BookingServiceImpl) BookingsByEmail(ctx context.Context, email string) (domain.Listings, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"bookings.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := domain.Listings{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
