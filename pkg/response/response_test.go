package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		size      int
		total     int64
		count     int
		pageCount int
	}{
		{"exact", 1, 10, 20, 10, 2},
		{"remainder", 3, 10, 21, 1, 3},
		{"empty", 1, 10, 0, 0, 0},
		{"single", 1, 1, 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPaginationMeta(tc.page, tc.size, tc.total, tc.count)
			assert.Equal(t, tc.pageCount, meta.PageCount)
			assert.Equal(t, tc.page, meta.CurrentPage)
			assert.Equal(t, tc.size, meta.PageSize)
			assert.Equal(t, tc.total, meta.TotalCount)
			assert.Equal(t, tc.count, meta.ResultCount)
		})
	}
}

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/ok", func(c *gin.Context) { Message(c, "fine") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"fine"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
