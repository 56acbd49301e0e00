package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

// AuthCookieName is the HTTP-only cookie carrying the token for browser
// clients; API clients use the Authorization header.
const AuthCookieName = "auth-token"

// Context keys set for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxName   = "name"
)

// AuthMiddleware resolves the caller's identity from a bearer header or the
// auth cookie. It rejects before any validation or storage access happens.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := utils.ParseJWT(secret, token)
		if err != nil {
			utils.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxName, claims.Name)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
