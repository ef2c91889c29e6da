package handler

import (
	"fmt"
	"net/http"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/middleware"
	"github.com/valentineezeh/leader-are-readers/middleware/validation"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/service"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	r.GET("", u.Welcome)
	r.POST("/users", validation.SignUp(), context.Wrap(u.SignUp))
	r.POST("/users/login", validation.Login(), context.Wrap(u.Login))
	r.POST("/users/reverify", validation.Email(), context.Wrap(u.Reverify))
	r.POST("/users/reset-password", validation.Email(), context.Wrap(u.RequestReset))
	r.POST("/users/change-password", validation.ResetPassword(), context.Wrap(u.ResetPassword))
	r.PUT("/users/password", authorize, validation.ChangePassword(), context.Wrap(u.ChangePassword))
	r.GET("/confirmation", context.Wrap(u.Confirm))
}

func (u *Auth) Welcome(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, "Welcome to Author Haven.")
}

func authUser(user *models.User, token string) *types.AuthUser {
	return &types.AuthUser{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Bio:        user.Bio,
		Image:      user.Image,
		IsVerified: user.IsVerified,
		Token:      token,
	}
}

func (u *Auth) SignUp(c *gin.Context) error {
	req := validation.Payload[types.SignUpRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	user, token, err := u.UserService.SignUp(c.Request.Context(), req)
	if err != nil {
		return mapError(err,
			on(service.ErrUsernameTaken, http.StatusConflict, "Username already exists."),
			on(service.ErrEmailTaken, http.StatusConflict, "Email already exists."),
		)
	}

	response.Created(c, types.AuthResponse{
		Message: "Account created. A verification email has been sent to you.",
		User:    authUser(user, token),
	})
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	req := validation.Payload[types.LoginRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	user, token, err := u.UserService.Login(c.Request.Context(), req)
	if err != nil {
		return mapError(err, on(service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password."))
	}

	response.Success(c, types.AuthResponse{User: authUser(user, token)})
	return nil
}

// Confirm activates the account from the emailed link.
func (u *Auth) Confirm(c *gin.Context) error {
	err := u.UserService.VerifyEmail(c.Request.Context(), c.Query("emailToken"))
	if err != nil {
		return mapError(err,
			on(service.ErrInvalidToken, http.StatusBadRequest, "The verification link is invalid."),
			on(service.ErrAlreadyVerified, http.StatusBadRequest, "Your account has already been activated."),
			on(service.ErrLinkExpired, http.StatusBadRequest, "The verification link has expired."),
		)
	}

	response.Message(c, "Your account was successfully activated.")
	return nil
}

func (u *Auth) Reverify(c *gin.Context) error {
	req := validation.Payload[types.EmailRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	if err := u.UserService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		return mapError(err,
			on(service.ErrUserNotFound, http.StatusNotFound, "The email entered is not registered"),
			on(service.ErrAlreadyVerified, http.StatusBadRequest, "Your account has already been activated."),
		)
	}

	response.Message(c, "A verification email has been sent to you.")
	return nil
}

func (u *Auth) RequestReset(c *gin.Context) error {
	req := validation.Payload[types.EmailRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	if err := u.UserService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		return mapError(err, on(service.ErrUserNotFound, http.StatusNotFound, "Email was not found"))
	}

	response.Message(c, fmt.Sprintf("A reset password link has been sent to %s", req.Email))
	return nil
}

// ResetPassword completes a reset started by RequestReset.
func (u *Auth) ResetPassword(c *gin.Context) error {
	req := validation.Payload[types.ResetPasswordRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	if err := u.UserService.ResetPassword(c.Request.Context(), req); err != nil {
		return mapError(err,
			on(service.ErrInvalidToken, http.StatusBadRequest, "The password reset link is invalid."),
			on(service.ErrLinkExpired, http.StatusBadRequest, "The password reset link has expired."),
		)
	}

	response.Message(c, "Password successfully updated, you can now login with your new password")
	return nil
}

func (u *Auth) ChangePassword(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	req := validation.Payload[types.ChangePasswordRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	if err := u.UserService.ChangePassword(c.Request.Context(), uid, req); err != nil {
		return mapError(err,
			on(service.ErrUserNotFound, http.StatusNotFound, "User not found."),
			on(service.ErrWrongPassword, http.StatusBadRequest, "The old password is incorrect."),
		)
	}

	response.Message(c, "Password successfully updated.")
	return nil
}
