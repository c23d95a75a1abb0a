package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/IrfanulM/MyBNB/domain"
)

// initialSampleSize bounds the random sample served on first page load.
const initialSampleSize = 15

// summaryProjection trims listing documents to the fields the browse and
// search responses expose.
var summaryProjection = bson.M{
	"name":                               1,
	"summary":                            1,
	"price":                              1,
	"bedrooms":                           1,
	"property_type":                      1,
	"images.picture_url":                 1,
	"review_scores.review_scores_rating": 1,
	"address.market":                     1,
}

type ListingServiceImpl struct {
	collection *mongo.Collection
}

func NewListingServiceImpl(collection *mongo.Collection) ListingService {
	return &ListingServiceImpl{collection: collection}
}

func (s *ListingServiceImpl) InitialListings(ctx context.Context) (domain.ListingSummaries, error) {
	pipeline := []bson.M{
		{"$sample": bson.M{"size": initialSampleSize}},
		{"$project": summaryProjection},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := domain.ListingSummaries{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *ListingServiceImpl) Search(ctx context.Context, filter *domain.SearchFilter) (domain.ListingSummaries, error) {
	opts := options.Find().SetProjection(summaryProjection)
	cursor, err := s.collection.Find(ctx, filter.ToBSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := domain.ListingSummaries{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *ListingServiceImpl) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	var listing domain.Listing
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (s *ListingServiceImpl) PropertyTypes(ctx context.Context) ([]string, error) {
	values, err := s.collection.Distinct(ctx, "property_type", bson.M{})
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(values))
	for _, value := range values {
		if propertyType, ok := value.(string); ok && propertyType != "" {
			types = append(types, propertyType)
		}
	}
	sort.Strings(types)
	return types, nil
}

func (s *ListingServiceImpl) BedroomCounts(ctx context.Context) ([]int, error) {
	values, err := s.collection.Distinct(ctx, "bedrooms", bson.M{})
	if err != nil {
		return nil, err
	}

	counts := make([]int, 0, len(values))
	for _, value := range values {
		// The sample dataset is not consistent about the numeric type.
		switch n := value.(type) {
		case int32:
			counts = append(counts, int(n))
		case int64:
			counts = append(counts, int(n))
		case float64:
			counts = append(counts, int(n))
		}
	}
	sort.Ints(counts)
	return counts, nil
}
