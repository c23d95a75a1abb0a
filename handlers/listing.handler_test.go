package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/IrfanulM/MyBNB/domain"
)

type mockListingService struct {
	summaries  domain.ListingSummaries
	listing    *domain.Listing
	getErr     error
	lastFilter *domain.SearchFilter
}

func (m *mockListingService) InitialListings(context.Context) (domain.ListingSummaries, error) {
	return m.summaries, nil
}

func (m *mockListingService) Search(_ context.Context, filter *domain.SearchFilter) (domain.ListingSummaries, error) {
	m.lastFilter = filter
	return m.summaries, nil
}

func (m *mockListingService) GetListingByID(context.Context, string) (*domain.Listing, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.listing, nil
}

func (m *mockListingService) PropertyTypes(context.Context) ([]string, error) {
	return []string{"Apartment", "House"}, nil
}

func (m *mockListingService) BedroomCounts(context.Context) ([]int, error) {
	return []int{1, 2, 3}, nil
}

func newListingRouter(service *mockListingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewListingHandler(service, logger)
	router := gin.New()
	router.GET("/api/initial", handler.InitialListings)
	router.POST("/api/search", handler.Search)
	router.GET("/api/listings/:id", handler.GetListingByID)
	router.GET("/api/property-types", handler.PropertyTypes)
	router.GET("/api/bedrooms", handler.BedroomCounts)
	return router
}

func TestSearchPassesTypedFilter(t *testing.T) {
	service := &mockListingService{}
	router := newListingRouter(service)

	body := strings.NewReader(`{"location":"Sydney","property_type":"House","bedrooms":"2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/search", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, service.lastFilter)
	assert.Len(t, service.lastFilter.Clauses, 3)
}

func TestSearchWithoutCriteria(t *testing.T) {
	service := &mockListingService{summaries: domain.ListingSummaries{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
	}}
	router := newListingRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, service.lastFilter.Clauses)
	assert.Contains(t, rec.Body.String(), "First")
	assert.Contains(t, rec.Body.String(), "Second")
}

func TestGetListingByIDNotFound(t *testing.T) {
	service := &mockListingService{getErr: domain.ErrListingNotFound}
	router := newListingRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/listings/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetListingByID(t *testing.T) {
	service := &mockListingService{listing: &domain.Listing{ID: "10006546", Name: "Ribeira Charming Duplex"}}
	router := newListingRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/listings/10006546", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ribeira Charming Duplex")
}

func TestPropertyTypesAndBedrooms(t *testing.T) {
	router := newListingRouter(&mockListingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/property-types", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Apartment")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bedrooms", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[1,2,3]", rec.Body.String())
}
