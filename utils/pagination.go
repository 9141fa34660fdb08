package utils

import (
	"errors"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultMaxPageSize = 100
	defaultStrictLimit = 10
)

var ErrInvalidLimit = errors.New("limit must be a positive number")

// MaxPageSize is the ceiling applied to every limit, configurable via
// MAX_PAGE_SIZE.
func MaxPageSize() int {
	if v, err := strconv.Atoi(os.Getenv("MAX_PAGE_SIZE")); err == nil && v > 0 {
		return v
	}
	return defaultMaxPageSize
}

// PageParams is the decoded limit/page pair of a list request. Limited is
// false when the caller did not ask for pagination, in which case all rows
// are returned and no pagination metadata is emitted.
type PageParams struct {
	Limit   int
	Page    int
	Limited bool
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams implements the lenient family: a missing, non-numeric or
// non-positive limit means "no limit requested". page falls back to 1,
// never an error.
func ParsePageParams(c *gin.Context) PageParams {
	p := PageParams{Page: 1}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		if max := MaxPageSize(); limit > max {
			limit = max
		}
		p.Limit = limit
		p.Limited = true
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		p.Page = page
	}
	return p
}

// ParseStrictPageParams implements the strict family: pagination is always
// in effect, limit defaults to 10 and an explicitly bad limit is rejected.
// page still falls back to 1.
func ParseStrictPageParams(c *gin.Context) (PageParams, error) {
	p := PageParams{Limit: defaultStrictLimit, Page: 1, Limited: true}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return PageParams{}, ErrInvalidLimit
		}
		if max := MaxPageSize(); limit > max {
			limit = max
		}
		p.Limit = limit
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		p.Page = page
	}
	return p, nil
}

// ParseID decodes a positive integer path parameter. On failure it writes
// the 400 response itself and reports false.
func ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		RespondBadRequest(c, "id must be a number")
		return 0, false
	}
	return uint(id), true
}
