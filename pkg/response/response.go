package response

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

const InternalErrorMessage = "Internal server error"

type Response struct {
	Message string `json:"message"`
}

// ValidationResponse carries field level messages, or a single message for path params.
type ValidationResponse struct {
	Errors any `json:"errors"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	ResultCount int   `json:"resultCount"`
	PageCount   int   `json:"pageCount"`
}

// NewPaginationMeta builds the list metadata; pageCount is ceil(total/pageSize).
func NewPaginationMeta(page, pageSize int, total int64, resultCount int) PaginationMeta {
	pageCount := 0
	if pageSize > 0 {
		pageCount = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	return PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  total,
		ResultCount: resultCount,
		PageCount:   pageCount,
	}
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{Message: msg})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{Message: msg})
}

func ValidationFailed(c *gin.Context, errs any) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationResponse{Errors: errs})
}
