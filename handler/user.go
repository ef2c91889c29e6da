package handler

import (
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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	r.GET("/profiles", authorize, validation.Query(), context.Wrap(u.List))
	r.GET("/profiles/:username", context.Wrap(u.Profile))
	r.PUT("/profiles/:username", authorize, validation.EditProfile(), context.Wrap(u.Edit))
}

func (u *User) Profile(c *gin.Context) error {
	profile, err := u.UserService.Profile(c.Request.Context(), c.Param("username"))
	if err != nil {
		return mapError(err, on(service.ErrUserNotFound, http.StatusNotFound, "User not found."))
	}

	response.Success(c, gin.H{"profile": profile})
	return nil
}

func (u *User) Edit(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	req := validation.Payload[types.UpdateProfileRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	profile, err := u.UserService.UpdateProfile(c.Request.Context(), uid, c.Param("username"), req)
	if err != nil {
		return mapError(err,
			on(service.ErrUserNotFound, http.StatusNotFound, "User not found."),
			on(service.ErrForbidden, http.StatusForbidden, "You can only edit your own profile."),
		)
	}

	response.Success(c, gin.H{"message": "Profile updated successfully", "profile": profile})
	return nil
}

func (u *User) List(c *gin.Context) error {
	p := validation.GetPagination(c)
	profiles, total, err := u.UserService.ListProfiles(c.Request.Context(), p)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{
		"paginationMeta": response.NewPaginationMeta(p.Page, p.Limit, total, len(profiles)),
		"profiles":       profiles,
	})
	return nil
}
