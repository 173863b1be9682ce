package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/gin-gonic/gin"
)

// RoleAdmin may create, score and delete matches.
const RoleAdmin = "admin"

// RoleMiddleware admits callers whose token role is one of requiredRoles.
// It must run after middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := common.GetUserIDFromContext(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		role := common.GetRoleFromContext(c)
		for _, required := range requiredRoles {
			if strings.EqualFold(role, required) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "Forbidden",
			"message":   "You don't have permission to access this resource",
			"required":  requiredRoles,
			"user_role": role,
		})
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(RoleAdmin)
}
