package middleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/pkg/token"
	"github.com/gin-gonic/gin"
)

// UserChecker confirms a token's user still exists.
type UserChecker interface {
	UserExists(id uint) (bool, error)
}

// AuthMiddleware requires a valid bearer token. users may be nil, in which
// case the token alone is trusted.
func AuthMiddleware(jwtSecret string, users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		if users != nil {
			if ok, err := users.UserExists(claims.UserID); err != nil || !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
				return
			}
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Set(common.ContextUsernameKey, claims.Username)
		c.Set(common.ContextRoleKey, claims.Role)
		c.Next()
	}
}
