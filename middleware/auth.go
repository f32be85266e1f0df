package middleware

import (
	"net/http"
	"strings"

	"tripplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

// OptionalAuth reads a bearer token issued by the auth service and stores
// its subject under UserIDKey. Requests without a valid token continue
// anonymously.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(secret) == 0 || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString, secret)
		if err != nil {
			zap.L().Debug("Ignoring invalid bearer token", zap.Error(err))
			c.Next()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// RequireUser rejects requests that OptionalAuth did not authenticate.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
