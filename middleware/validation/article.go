package validation

import (
	"fmt"
	"net/http"

	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

// CreateArticle rejects unverified accounts before looking at the body.
func CreateArticle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !context.IsVerified(c) {
			response.Abort(c, http.StatusForbidden, "Access denied.")
			return
		}
		articleRules(c)
	}
}

func UpdateArticle() gin.HandlerFunc {
	return articleRules
}

func articleRules(c *gin.Context) {
	m := body(c)
	errs := make(Errors)
	req := &types.ArticleRequest{
		Title:       minRule(errs, m, "title", 3),
		Body:        minRule(errs, m, "body", 8),
		Description: minRule(errs, m, "description", 3),
	}
	if req.Description != "" && !maxLen(req.Description, 300) {
		errs.Add("description", "The description may not be greater than 300 characters.")
	}

	if raw, ok := m["tagList"]; ok && raw != nil {
		list, isList := raw.([]any)
		if !isList {
			errs.Add("tagList", "The tagList must be an array.")
		}
		for _, v := range list {
			req.TagList = append(req.TagList, fmt.Sprint(v))
		}
	}

	if !errs.Empty() {
		response.ValidationFailed(c, errs)
		return
	}
	c.Set(ctxPayload, req)
	c.Next()
}

func minRule(errs Errors, m map[string]any, field string, min int) string {
	value, present := str(m, field)
	if !required(value, present) {
		errs.Add(field, msgRequired(field))
		return ""
	}
	if !minLen(value, min) {
		errs.Add(field, fmt.Sprintf("The %s must be at least %d characters.", field, min))
	}
	return value
}
