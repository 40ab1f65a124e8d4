package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUsername extracts the username from the Gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}

// GetRole extracts the operator role from the Gin context
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the operator has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetRole(c) == "admin"
}

// parseUUIDParam parses a UUID path parameter, returning false when it is
// malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
