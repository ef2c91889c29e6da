package validation

import (
	"github.com/valentineezeh/leader-are-readers/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	msgIDEmpty    = "The id parameter cannot be empty."
	msgIDInteger  = "The id must be an integer."
	msgIDPositive = "The report id must be a positive integer."
)

// ValidateID checks a numeric path parameter and answers 400 with the first failure.
func ValidateID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, msg := checkID(c.Param(param))
		if msg != "" {
			response.ValidationFailed(c, msg)
			return
		}
		c.Set(ctxID, id)
		c.Next()
	}
}

func checkID(raw string) (uint64, string) {
	if !required(raw, raw != "") {
		return 0, msgIDEmpty
	}
	n, ok := toInt(raw)
	if !ok {
		return 0, msgIDInteger
	}
	if !positive(n) {
		return 0, msgIDPositive
	}
	return uint64(n), ""
}

// GetID returns the id stored by ValidateID.
func GetID(c *gin.Context) uint64 {
	v, _ := c.Get(ctxID)
	id, _ := v.(uint64)
	return id
}
