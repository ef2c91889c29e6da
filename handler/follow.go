package handler

import (
	"fmt"
	"net/http"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/middleware"
	"github.com/valentineezeh/leader-are-readers/middleware/validation"
	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/service"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/profiles/:username")
	g.POST("/follow", authorize, context.Wrap(f.FollowUser))
	g.DELETE("/unfollow", authorize, context.Wrap(f.UnfollowUser))
	g.GET("/following", validation.Query(), context.Wrap(f.Following))
	g.GET("/followers", validation.Query(), context.Wrap(f.Followers))
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	username := c.Param("username")
	_, err = f.FollowService.Follow(c.Request.Context(), uid, username)
	if err != nil {
		return mapError(err,
			on(service.ErrTargetNotFound, http.StatusNotFound, "User not found"),
			on(service.ErrSelfRelation, http.StatusConflict, "You cannot follow yourself"),
			on(service.ErrRelationExists, http.StatusConflict, fmt.Sprintf("You are already following %s", username)),
		)
	}

	response.Message(c, fmt.Sprintf("You are now following %s", username))
	return nil
}

// UnfollowUser 取消关注
func (f *Follow) UnfollowUser(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	username := c.Param("username")
	_, err = f.FollowService.Unfollow(c.Request.Context(), uid, username)
	if err != nil {
		return mapError(err,
			on(service.ErrTargetNotFound, http.StatusNotFound, "User not found"),
			on(service.ErrRelationMissing, http.StatusNotFound, fmt.Sprintf("You never followed %s", username)),
		)
	}

	response.Message(c, fmt.Sprintf("You have Unfollowed %s", username))
	return nil
}

func (f *Follow) Following(c *gin.Context) error {
	p := validation.GetPagination(c)
	page, err := f.FollowService.Following(c.Request.Context(), c.Param("username"), p)
	if err != nil {
		return mapError(err, on(service.ErrTargetNotFound, http.StatusNotFound, "User not found."))
	}
	if page.Total == 0 {
		response.Message(c, "You are yet to follow an Author.")
		return nil
	}

	response.Success(c, types.FollowingListResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, page.Total, len(page.Items)),
		AuthorsIFollow: page.Items,
	})
	return nil
}

func (f *Follow) Followers(c *gin.Context) error {
	p := validation.GetPagination(c)
	page, err := f.FollowService.Followers(c.Request.Context(), c.Param("username"), p)
	if err != nil {
		return mapError(err, on(service.ErrTargetNotFound, http.StatusNotFound, "User not found."))
	}
	if page.Total == 0 {
		response.Message(c, "You are yet to have followers.")
		return nil
	}

	response.Success(c, types.FollowersListResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, page.Total, len(page.Items)),
		Followers:      page.Items,
	})
	return nil
}
