package domain

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterClause is one optional criterion of a listing search. Clauses are
// independent of each other and combined conjunctively by SearchFilter.
type FilterClause interface {
	ToBSON() bson.M
}

// LocationContains matches listings where any address field contains the
// given text, case-insensitively.
type LocationContains struct {
	Location string
}

func (c LocationContains) ToBSON() bson.M {
	pattern := primitive.Regex{
		Pattern: regexp.QuoteMeta(strings.TrimSpace(c.Location)),
		Options: "i",
	}
	return bson.M{"$or": bson.A{
		bson.M{"address.street": pattern},
		bson.M{"address.suburb": pattern},
		bson.M{"address.government_area": pattern},
		bson.M{"address.market": pattern},
		bson.M{"address.country": pattern},
	}}
}

// PropertyTypeEquals matches listings of exactly the given property type.
type PropertyTypeEquals struct {
	PropertyType string
}

func (c PropertyTypeEquals) ToBSON() bson.M {
	return bson.M{"property_type": c.PropertyType}
}

// BedroomsEquals matches listings with exactly the given bedroom count.
type BedroomsEquals struct {
	Bedrooms int
}

func (c BedroomsEquals) ToBSON() bson.M {
	return bson.M{"bedrooms": c.Bedrooms}
}

// SearchFilter is a conjunction of filter clauses. An empty filter matches
// every listing.
type SearchFilter struct {
	Clauses []FilterClause
}

func (f *SearchFilter) ToBSON() bson.M {
	query := bson.M{}
	for _, clause := range f.Clauses {
		for key, value := range clause.ToBSON() {
			query[key] = value
		}
	}
	return query
}

// SearchRequest is the payload of the search endpoint. Bedrooms arrives as a
// string because the UI sends the raw dropdown value.
type SearchRequest struct {
	Location     string `json:"location"`
	PropertyType string `json:"property_type"`
	Bedrooms     string `json:"bedrooms"`
}

// Filter translates the request into typed clauses. Blank criteria are
// dropped, as is a bedroom value that does not parse as an integer.
func (r *SearchRequest) Filter() *SearchFilter {
	filter := &SearchFilter{}
	if strings.TrimSpace(r.Location) != "" {
		filter.Clauses = append(filter.Clauses, LocationContains{Location: r.Location})
	}
	if r.PropertyType != "" {
		filter.Clauses = append(filter.Clauses, PropertyTypeEquals{PropertyType: r.PropertyType})
	}
	if r.Bedrooms != "" {
		if bedrooms, err := strconv.Atoi(r.Bedrooms); err == nil {
			filter.Clauses = append(filter.Clauses, BedroomsEquals{Bedrooms: bedrooms})
		}
	}
	return filter
}
