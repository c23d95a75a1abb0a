package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IrfanulM/MyBNB/handlers"
	"github.com/IrfanulM/MyBNB/middleware"
)

type UserRouteHandler struct {
	userHandler handlers.UserHandler
}

func NewUserRouteHandler(userHandler handlers.UserHandler) UserRouteHandler {
	return UserRouteHandler{userHandler}
}

func (rc *UserRouteHandler) UserRoute(rg *gin.RouterGroup) {
	router := rg.Group("/user")
	router.Use(middleware.RequireAuth())

	router.GET("/details", rc.userHandler.Details)
	router.GET("/bookings", rc.userHandler.Bookings)
}
