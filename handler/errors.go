package handler

import (
	"errors"
	"net/http"

	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/response"

	"github.com/gin-gonic/gin"
)

type errCase struct {
	target error
	biz    *response.BizError
}

func on(target error, code int, msg string) errCase {
	return errCase{target: target, biz: response.NewError(code, msg)}
}

// mapError turns a known service error into the endpoint's BizError.
// Unknown errors pass through and end up as a 500.
func mapError(err error, cases ...errCase) error {
	for _, c := range cases {
		if errors.Is(err, c.target) {
			return c.biz
		}
	}
	return err
}

func userID(c *gin.Context) (uint64, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0, response.NewError(http.StatusUnauthorized, "You do not have permission to this page.")
	}
	return uid, nil
}
