package services

import (
	"context"

	"github.com/IrfanulM/MyBNB/domain"
)

type ListingService interface {
	InitialListings(ctx context.Context) (domain.ListingSummaries, error)
	Search(ctx context.Context, filter *domain.SearchFilter) (domain.ListingSummaries, error)
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	PropertyTypes(ctx context.Context) ([]string, error)
	BedroomCounts(ctx context.Context) ([]int, error)
}
