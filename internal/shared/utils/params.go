package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"grievance/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// entityName is used in error messages (e.g., "concern", "category").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// AuthenticatedUser extracts the authenticated user's ID and role from the
// request context set by the auth middleware.
func AuthenticatedUser(c *gin.Context) (uint, string) {
	userID, _ := c.Get("user_id")
	id, _ := userID.(uint)
	role := c.GetString("user_role")
	return id, role
}
