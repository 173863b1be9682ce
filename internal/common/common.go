package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}

// GetRoleFromContext returns the role carried by the caller's token.
func GetRoleFromContext(c *gin.Context) string {
	return c.GetString(ContextRoleKey)
}

// GetUsernameFromContext returns the caller's username, or "" for anonymous requests.
func GetUsernameFromContext(c *gin.Context) string {
	return c.GetString(ContextUsernameKey)
}
