// Package validation normalizes and validates request parameters before
// they reach the services: listing query parameters are clamped to safe
// ranges, and binding failures are flattened into a client-readable
// detail string.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blog-backend-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// ParseListQuery reads limit/offset/sortby/direct from the query string.
// Out-of-range or unparsable values fall back to defaults instead of
// failing the request.
func ParseListQuery(c *gin.Context) service.ListQuery {
	q := service.ListQuery{
		SortBy: c.Query("sortby"),
		Direct: c.Query("direct"),
		Limit:  defaultLimit,
	}

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 && limit <= maxLimit {
			q.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.ParseInt(raw, 10, 64); err == nil && offset > 0 {
			q.Offset = offset
		}
	}
	if q.Direct != "asc" {
		q.Direct = "desc"
	}
	return q
}

// ParseArticleFields splits the articleFields query parameter into field
// names. Empty entries are dropped; unknown fields are filtered later at
// the projection.
func ParseArticleFields(c *gin.Context) []string {
	raw := c.Query("articleFields")
	if raw == "" {
		return nil
	}
	fields := []string{}
	for _, field := range strings.Split(raw, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// BindingDetail flattens a binding error into the detail string carried
// by the error envelope's extra field.
func BindingDetail(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			details = append(details, fmt.Sprintf(
				"%s failed on the %s rule", fieldError.Field(), fieldError.Tag(),
			))
		}
		return errors.New(strings.Join(details, "; "))
	}
	return err
}
