package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilterEmpty(t *testing.T) {
	request := &SearchRequest{}
	filter := request.Filter()

	assert.Empty(t, filter.Clauses)
	assert.Equal(t, bson.M{}, filter.ToBSON())
}

func TestSearchFilterLocation(t *testing.T) {
	request := &SearchRequest{Location: "Sydney"}
	query := request.Filter().ToBSON()

	or, ok := query["$or"].(bson.A)
	assert.True(t, ok, "location clause should expand to $or")
	assert.Len(t, or, 5)

	fields := map[string]bool{}
	for _, condition := range or {
		for field, value := range condition.(bson.M) {
			fields[field] = true
			pattern := value.(primitive.Regex)
			assert.Equal(t, "Sydney", pattern.Pattern)
			assert.Equal(t, "i", pattern.Options)
		}
	}
	for _, field := range []string{
		"address.street", "address.suburb", "address.government_area",
		"address.market", "address.country",
	} {
		assert.True(t, fields[field], field)
	}
}

func TestSearchFilterLocationIsEscaped(t *testing.T) {
	request := &SearchRequest{Location: "St. Kilda (East)"}
	query := request.Filter().ToBSON()

	or := query["$or"].(bson.A)
	pattern := or[0].(bson.M)["address.street"].(primitive.Regex)
	assert.Equal(t, `St\. Kilda \(East\)`, pattern.Pattern)
}

func TestSearchFilterConjunction(t *testing.T) {
	request := &SearchRequest{Location: "Sydney", PropertyType: "House", Bedrooms: "3"}
	filter := request.Filter()

	assert.Len(t, filter.Clauses, 3)

	query := filter.ToBSON()
	assert.Contains(t, query, "$or")
	assert.Equal(t, "House", query["property_type"])
	assert.Equal(t, 3, query["bedrooms"])
}

func TestSearchFilterDropsBlankAndInvalidCriteria(t *testing.T) {
	request := &SearchRequest{Location: "   ", PropertyType: "", Bedrooms: "two"}
	filter := request.Filter()

	assert.Empty(t, filter.Clauses)
}
