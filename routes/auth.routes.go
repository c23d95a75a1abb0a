package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IrfanulM/MyBNB/handlers"
)

type AuthRouteHandler struct {
	authHandler handlers.AuthHandler
}

func NewAuthRouteHandler(authHandler handlers.AuthHandler) AuthRouteHandler {
	return AuthRouteHandler{authHandler}
}

func (rc *AuthRouteHandler) AuthRoute(rg *gin.RouterGroup) {
	router := rg.Group("/auth")

	router.POST("/signup", rc.authHandler.Signup)
	router.POST("/signin", rc.authHandler.Signin)
	router.POST("/signout", rc.authHandler.Signout)
	router.GET("/status", rc.authHandler.Status)
}
