package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IrfanulM/MyBNB/handlers"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler}
}

func (rc *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	rg.POST("/book", rc.bookingHandler.CreateBooking)
}
