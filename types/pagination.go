package types

import (
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxOffset keeps (page-1)*limit inside what every SQL driver accepts.
	MaxOffset = math.MaxInt32
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Pagination is the normalised page, limit and order of a list request.
type Pagination struct {
	Page  int
	Limit int
	Order string
}

func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Limit: DefaultLimit, Order: OrderDesc}
}

// Offset is zero for any page whose offset would pass MaxOffset.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 || p.Page-1 > MaxOffset/p.Limit {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// SafeOrder only ever returns ASC or DESC.
func (p Pagination) SafeOrder() string {
	if strings.ToUpper(p.Order) == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}
