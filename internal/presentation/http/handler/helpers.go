package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserName extracts the user name from the Gin context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the authenticated user is an admin
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == "admin"
}

// bindPagination reads page/perPage query parameters
func bindPagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}

// parseDateQuery parses a YYYY-MM-DD query parameter as midnight in
// the business timezone; nil when absent or malformed. Parsing in loc
// keeps query bounds aligned with how settlement buckets days.
func parseDateQuery(c *gin.Context, name string, loc *time.Location) *time.Time {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(entity.DateLayout, value, loc)
	if err != nil {
		return nil
	}
	return &t
}

// parseUUIDQuery parses a UUID query parameter; nil when absent or
// malformed
func parseUUIDQuery(c *gin.Context, name string) *uuid.UUID {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &id
}

// dateRange builds [from, to) bounds from from/to query parameters in
// the business timezone, treating "to" as inclusive of its whole day
func dateRange(c *gin.Context, loc *time.Location) (*time.Time, *time.Time) {
	from := parseDateQuery(c, "from", loc)
	to := parseDateQuery(c, "to", loc)
	if to != nil {
		end := to.AddDate(0, 0, 1)
		to = &end
	}
	return from, to
}
