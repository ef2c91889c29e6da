package validation

import (
	"fmt"

	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

func msgRequired(field string) string { return fmt.Sprintf("The %s field is required.", field) }

func msgTooLong(field string, n int) string {
	return fmt.Sprintf("The %s is too long. Max length is %d characters.", field, n)
}

func msgTooShort(field string, n int) string {
	return fmt.Sprintf("The %s is too short. Min length is %d characters.", field, n)
}

// lengthRule checks a required text field against [min, max].
func lengthRule(errs Errors, m map[string]any, field string, min, max int) string {
	value, present := str(m, field)
	if !required(value, present) {
		errs.Add(field, msgRequired(field))
		return value
	}
	if !maxLen(value, max) {
		errs.Add(field, msgTooLong(field, max))
	}
	if !minLen(value, min) {
		errs.Add(field, msgTooShort(field, min))
	}
	return value
}

// ValidateReport checks categoryId and details of a new report.
func ValidateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		m := body(c)
		errs := make(Errors)
		req := &types.ReportRequest{}

		if raw, ok := m["categoryId"]; !ok || raw == nil || raw == "" {
			errs.Add("categoryId", msgRequired("categoryId"))
		} else if n, ok := toInt(raw); !ok {
			errs.Add("categoryId", "The categoryId must be an integer.")
		} else if !positive(n) {
			errs.Add("categoryId", "The report categoryId must be a positive integer.")
		} else {
			req.CategoryID = uint64(n)
		}

		req.Details = lengthRule(errs, m, "details", 10, 1000)

		if !errs.Empty() {
			response.ValidationFailed(c, errs)
			return
		}
		c.Set(ctxPayload, req)
		c.Next()
	}
}

// ValidateReportCategory checks title and description of a new category.
func ValidateReportCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		m := body(c)
		errs := make(Errors)
		req := &types.ReportCategoryRequest{
			Title:       lengthRule(errs, m, "title", 5, 1000),
			Description: lengthRule(errs, m, "description", 10, 1000),
		}

		if !errs.Empty() {
			response.ValidationFailed(c, errs)
			return
		}
		c.Set(ctxPayload, req)
		c.Next()
	}
}
