package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/schemas"
)

// respondError writes an RFC 7807 error response and logs it.
func respondError(c *gin.Context, logger *logrus.Logger, apiErr *schemas.ErrorResponse) {
	if logger != nil {
		logger.Error(apiErr.Title + ": " + apiErr.Detail)
	}
	c.JSON(apiErr.Status, apiErr)
}

// respondDomainError maps a domain error onto its RFC 7807 shape for the
// current route and writes it.
func respondDomainError(c *gin.Context, logger *logrus.Logger, err error) {
	respondError(c, logger, schemas.FromDomainError(err, c.FullPath()))
}

// parseTimestamp parses an RFC 3339 timestamp, returning nil for "".
func parseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// paging reads limit/offset query params with defaults and caps.
func paging(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// optionalID converts an empty route/body ID into a nil pointer.
func optionalID(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
