package context

import (
	"errors"
	"net/http"

	"github.com/valentineezeh/leader-are-readers/pkg/jwt"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxClaims = "claims"
)

var ErrNoUser = errors.New("user_id missing from context")

type HandlerFunc func(*gin.Context) error

// Wrap renders the handler's error. A BizError keeps its own status; anything else is a 500.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil || c.Writer.Written() {
			return
		}

		var be *response.BizError
		if errors.As(err, &be) {
			c.JSON(be.Code, response.Response{Message: be.Msg})
			return
		}

		log.L.Error("handler error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.Response{Message: response.InternalErrorMessage})
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, ErrNoUser
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, ErrNoUser
	}

	return uid, nil
}

func GetClaims(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

// IsVerified reports the verification flag carried by the caller's token.
func IsVerified(c *gin.Context) bool {
	claims := GetClaims(c)
	return claims != nil && claims.IsVerified
}
