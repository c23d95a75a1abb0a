package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IrfanulM/MyBNB/middleware"
	"github.com/IrfanulM/MyBNB/services"
)

// UserHandler serves the account pages: profile details and the listings the
// signed-in user has booked. Both routes sit behind RequireAuth.
type UserHandler struct {
	userService    services.UserService
	bookingService services.BookingService
	logger         *logrus.Logger
}

func NewUserHandler(userService services.UserService, bookingService services.BookingService, logger *logrus.Logger) UserHandler {
	return UserHandler{userService, bookingService, logger}
}

func (uh *UserHandler) Details(ctx *gin.Context) {
	principal := middleware.CurrentPrincipal(ctx)

	user, err := uh.userService.FindUserByEmail(ctx.Request.Context(), principal.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		uh.logger.WithFields(logrus.Fields{"path": "handlers/user"}).Error("user details: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"email": user.Email, "createdAt": user.CreatedAt})
}

func (uh *UserHandler) Bookings(ctx *gin.Context) {
	principal := middleware.CurrentPrincipal(ctx)

	listings, err := uh.bookingService.BookingsByEmail(ctx.Request.Context(), principal.Email)
	if err != nil {
		uh.logger.WithFields(logrus.Fields{"path": "handlers/user"}).Error("user bookings: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, listings)
}
