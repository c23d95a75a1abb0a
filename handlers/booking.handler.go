package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/IrfanulM/MyBNB/domain"
	"github.com/IrfanulM/MyBNB/services"
)

var validate = validator.New()

type BookingHandler struct {
	bookingService services.BookingService
	logger         *logrus.Logger
}

func NewBookingHandler(bookingService services.BookingService, logger *logrus.Logger) BookingHandler {
	return BookingHandler{bookingService, logger}
}

func (bh *BookingHandler) CreateBooking(ctx *gin.Context) {
	var request domain.BookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := services.ValidateBookingDates(request.CheckIn, request.CheckOut, request.TimezoneOffset, time.Now()); err != nil {
		bh.bookingError(ctx, err)
		return
	}

	booking, err := bh.bookingService.CreateBooking(ctx.Request.Context(), &request)
	if err != nil {
		bh.bookingError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, booking)
}

// bookingError maps the booking error taxonomy onto HTTP statuses. Validation
// failures are the caller's to fix, a date conflict gets its own status so the
// UI can re-prompt for dates, and anything else is logged and hidden behind a
// generic failure.
func (bh *BookingHandler) bookingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingDates),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrInvalidRange):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrListingNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrDateConflict):
		ctx.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		bh.logger.WithFields(logrus.Fields{"path": "handlers/booking"}).Error("create booking: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}
