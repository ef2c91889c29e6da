package middleware

import (
	"net/http"
	"strings"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/jwt"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgUnauthorized = "You do not have permission to this page."
	MsgAccessDenied = "Access denied."
)

// Auth accepts "Bearer <token>" or the bare token in the Authorization header.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c.GetHeader("Authorization"))
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		claims, err := jwt.ParseToken(secret, token)
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxClaims, claims)
		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := context.GetClaims(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			response.Abort(c, http.StatusForbidden, MsgAccessDenied)
			return
		}
		c.Next()
	}
}

func bearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
