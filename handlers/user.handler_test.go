package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IrfanulM/MyBNB/domain"
	"github.com/IrfanulM/MyBNB/middleware"
	"github.com/IrfanulM/MyBNB/utils"
)

func newUserRouter(userSvc *mockUserService, bookingSvc *mockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewUserHandler(userSvc, bookingSvc, logger)
	router := gin.New()
	router.Use(middleware.Authenticate(testSecret))

	group := router.Group("/api/user")
	group.Use(middleware.RequireAuth())
	group.GET("/details", handler.Details)
	group.GET("/bookings", handler.Bookings)
	return router
}

func getWithSession(t *testing.T, router *gin.Engine, url, email string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := utils.CreateToken(email, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUserDetails(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	router := newUserRouter(
		&mockUserService{user: &domain.User{Email: "guest@example.com", CreatedAt: created}},
		&mockBookingService{},
	)

	rec := getWithSession(t, router, "/api/user/details", "guest@example.com")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "guest@example.com")
	assert.Contains(t, rec.Body.String(), "2024-01-15")
}

func TestUserDetailsUnknownUser(t *testing.T) {
	router := newUserRouter(&mockUserService{}, &mockBookingService{})

	rec := getWithSession(t, router, "/api/user/details", "ghost@example.com")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDetailsRequiresAuth(t *testing.T) {
	router := newUserRouter(&mockUserService{}, &mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/details", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserBookings(t *testing.T) {
	listings := domain.Listings{{
		ID:   "10006546",
		Name: "Ribeira Charming Duplex",
		Bookings: []domain.Booking{{
			BookingID: "b-1",
			ListingID: "10006546",
			CheckIn:   "2024-03-10",
			CheckOut:  "2024-03-15",
			Email:     "guest@example.com",
		}},
	}}
	router := newUserRouter(&mockUserService{}, &mockBookingService{listings: listings})

	rec := getWithSession(t, router, "/api/user/bookings", "guest@example.com")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ribeira Charming Duplex")
	assert.Contains(t, rec.Body.String(), "2024-03-10")
}

func TestUserBookingsRequiresAuth(t *testing.T) {
	router := newUserRouter(&mockUserService{}, &mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
