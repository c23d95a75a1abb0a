package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/IrfanulM/MyBNB/domain"
	"github.com/IrfanulM/MyBNB/middleware"
	"github.com/IrfanulM/MyBNB/services"
	"github.com/IrfanulM/MyBNB/utils"
)

type AuthHandler struct {
	userService services.UserService
	jwtSecret   string
	logger      *logrus.Logger
}

func NewAuthHandler(userService services.UserService, jwtSecret string, logger *logrus.Logger) AuthHandler {
	return AuthHandler{userService, jwtSecret, logger}
}

func (ah *AuthHandler) Signup(ctx *gin.Context) {
	var credentials domain.Credentials
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := ah.userService.Register(ctx.Request.Context(), &credentials); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			ctx.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case errors.Is(err, domain.ErrWeakPassword):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			ah.logger.WithFields(logrus.Fields{"path": "handlers/auth"}).Error("signup: ", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

func (ah *AuthHandler) Signin(ctx *gin.Context) {
	var credentials domain.Credentials
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ah.userService.Authenticate(ctx.Request.Context(), &credentials)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		ah.logger.WithFields(logrus.Fields{"path": "handlers/auth"}).Error("signin: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	token, err := utils.CreateToken(user.Email, ah.jwtSecret)
	if err != nil {
		ah.logger.WithFields(logrus.Fields{"path": "handlers/auth"}).Error("signin: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	ctx.SetCookie(middleware.SessionCookieName, token, int(utils.TokenLifetime.Seconds()), "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Signed in successfully"})
}

func (ah *AuthHandler) Signout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// Status reports whether the request carries a valid session. It never
// fails; an invalid token is just an anonymous caller.
func (ah *AuthHandler) Status(ctx *gin.Context) {
	principal := middleware.CurrentPrincipal(ctx)
	if !principal.Authenticated() {
		ctx.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "email": principal.Email})
}
