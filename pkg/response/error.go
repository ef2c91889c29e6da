package response

import (
	"net/http"

	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError is an expected failure that maps to an HTTP status and a message.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func BadRequest(msg string) *BizError { return NewError(http.StatusBadRequest, msg) }

// ErrorMiddleware recovers panics. Handler errors are rendered by context.Wrap.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("trace", utils.PanicTrace(r)),
					zap.String("path", c.Request.URL.Path),
				)
				Abort(c, http.StatusInternalServerError, InternalErrorMessage)
			}
		}()

		c.Next()
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Message: msg,
	})
}
