package services

import (
	"context"

	"github.com/IrfanulM/MyBNB/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, request *domain.BookingRequest) (*domain.Booking, error)
	BookingsByEmail(ctx context.Context, email string) (domain.Listings, error)
}
