package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IrfanulM/MyBNB/domain"
	"github.com/IrfanulM/MyBNB/utils"
)

// principalKey is the gin context key the resolved Principal is stored under.
const principalKey = "principal"

// SessionCookieName is the cookie the signin handler sets and this
// middleware reads.
const SessionCookieName = "token"

// Authenticate resolves the request's principal from the session cookie or a
// Bearer header and stores it in the request context. It never rejects a
// request; an invalid or absent token simply yields an anonymous principal.
// Use RequireAuth on routes that must not be reached anonymously.
func Authenticate(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := extractToken(ctx); token != "" {
			if claims, err := utils.ValidateToken(token, secret); err == nil {
				ctx.Set(principalKey, domain.Principal{Email: claims.Email})
			}
		}
		ctx.Next()
	}
}

// RequireAuth aborts anonymous requests with 401. It assumes Authenticate
// ran earlier in the chain.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !CurrentPrincipal(ctx).Authenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domain.ErrAuthRequired.Error()})
			return
		}
		ctx.Next()
	}
}

// CurrentPrincipal returns the principal Authenticate attached to the
// request, or the anonymous principal.
func CurrentPrincipal(ctx *gin.Context) domain.Principal {
	if value, exists := ctx.Get(principalKey); exists {
		if principal, ok := value.(domain.Principal); ok {
			return principal
		}
	}
	return domain.Principal{}
}

func extractToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	fields := strings.Fields(ctx.GetHeader("Authorization"))
	if len(fields) == 2 && fields[0] == "Bearer" {
		return fields[1]
	}
	return ""
}
