package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

// Query normalises page, limit and order. It never rejects a request:
// anything unusable falls back to page 1, limit 10, DESC. Limit is capped
// at types.MaxLimit and a page past types.MaxOffset falls back to page 1.
func Query() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxPagination, ParsePagination(c.Query("page"), c.Query("limit"), c.Query("order")))
		c.Next()
	}
}

func ParsePagination(page, limit, order string) types.Pagination {
	p := types.DefaultPagination()
	if n, ok := leadingInt(limit); ok && n > 0 {
		p.Limit = min(n, types.MaxLimit)
	}
	if n, ok := leadingInt(page); ok && n > 0 && n-1 <= types.MaxOffset/p.Limit {
		p.Page = n
	}
	if o := strings.ToUpper(strings.TrimSpace(order)); o == types.OrderAsc || o == types.OrderDesc {
		p.Order = o
	}
	return p
}

// leadingInt reads the optionally signed digits at the start of s, so "2abc"
// is 2 and "1.5" is 1. Out of range values come back clamped.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

// GetPagination returns the pagination stored by Query, parsing the query string when it is absent.
func GetPagination(c *gin.Context) types.Pagination {
	if v, ok := c.Get(ctxPagination); ok {
		if p, ok := v.(types.Pagination); ok {
			return p
		}
	}
	return ParsePagination(c.Query("page"), c.Query("limit"), c.Query("order"))
}
