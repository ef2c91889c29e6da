// Package validation normalises and checks request input before it reaches a handler.
// Every middleware either aborts with 400 {errors} or stores a typed payload for the handler.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	ctxPayload    = "validation.payload"
	ctxPagination = "validation.pagination"
	ctxID         = "validation.id"
)

var (
	validate = validator.New()

	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

func init() {
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
}

// Errors maps a field name to its messages, in rule order.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Payload returns the value stored by the validating middleware, or nil.
func Payload[T any](c *gin.Context) *T {
	v, ok := c.Get(ctxPayload)
	if !ok {
		return nil
	}
	p, _ := v.(*T)
	return p
}

// body reads the JSON object body. A missing or malformed body reads as empty.
func body(c *gin.Context) map[string]any {
	m := make(map[string]any)
	if err := c.ShouldBindBodyWith(&m, binding.JSON); err != nil || m == nil {
		return make(map[string]any)
	}
	return m
}

// nested returns body[key] when it is an object.
func nested(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return make(map[string]any)
}

// str reads a scalar as text. The bool reports whether the key was sent at all.
func str(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		b, _ := json.Marshal(t)
		return string(b), true
	}
}

// toInt accepts JSON numbers and numeric strings without a fraction.
func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func required(value string, present bool) bool {
	return present && validate.Var(strings.TrimSpace(value), "required") == nil
}

func minLen(value string, n int) bool {
	return validate.Var(value, fmt.Sprintf("min=%d", n)) == nil
}

func maxLen(value string, n int) bool {
	return validate.Var(value, fmt.Sprintf("max=%d", n)) == nil
}

func positive(n int64) bool {
	return validate.Var(n, "gt=0") == nil
}

func isEmail(value string) bool {
	return validate.Var(value, "email") == nil
}
