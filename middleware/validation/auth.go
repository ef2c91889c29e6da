package validation

import (
	"fmt"

	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

const (
	msgEmailInvalid     = "Please enter a valid email address."
	msgPasswordShort    = "The password must be at least 8 characters."
	msgPasswordMismatch = "The password confirmation does not match."
)

func userRequired(field string) string {
	return fmt.Sprintf("This %s field is required.", field)
}

// userInput runs check over the object under the "user" key.
func userInput[T any](check func(u map[string]any, errs Errors) *T) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := nested(body(c), "user")
		errs := make(Errors)
		req := check(u, errs)

		if !errs.Empty() {
			response.ValidationFailed(c, errs)
			return
		}
		c.Set(ctxPayload, req)
		c.Next()
	}
}

func requiredField(u map[string]any, errs Errors, field string) string {
	value, present := str(u, field)
	if !required(value, present) {
		errs.Add(field, userRequired(field))
		return ""
	}
	return value
}

func emailField(u map[string]any, errs Errors) string {
	email := requiredField(u, errs, "email")
	if email != "" && !isEmail(email) {
		errs.Add("email", msgEmailInvalid)
	}
	return email
}

func passwordFields(u map[string]any, errs Errors) (string, string) {
	password := requiredField(u, errs, "password")
	if password != "" && !minLen(password, 8) {
		errs.Add("password", msgPasswordShort)
	}
	confirmation := requiredField(u, errs, "password_confirmation")
	if password != "" && confirmation != "" && validate.VarWithValue(confirmation, password, "eqfield") != nil {
		errs.Add("password_confirmation", msgPasswordMismatch)
	}
	return password, confirmation
}

func SignUp() gin.HandlerFunc {
	return userInput(func(u map[string]any, errs Errors) *types.SignUpRequest {
		username := requiredField(u, errs, "username")
		if username != "" {
			if !minLen(username, 3) {
				errs.Add("username", "The username must be at least 3 characters.")
			}
			if validate.Var(username, "username") != nil {
				errs.Add("username", "The username may only contain letters, numbers and underscores.")
			}
		}
		email := emailField(u, errs)
		password := requiredField(u, errs, "password")
		if password != "" && !minLen(password, 8) {
			errs.Add("password", msgPasswordShort)
		}
		return &types.SignUpRequest{Username: username, Email: email, Password: password}
	})
}

func Login() gin.HandlerFunc {
	return userInput(func(u map[string]any, errs Errors) *types.LoginRequest {
		return &types.LoginRequest{
			Username: requiredField(u, errs, "username"),
			Password: requiredField(u, errs, "password"),
		}
	})
}

func Email() gin.HandlerFunc {
	return userInput(func(u map[string]any, errs Errors) *types.EmailRequest {
		return &types.EmailRequest{Email: emailField(u, errs)}
	})
}

// ResetPassword checks the body that completes a mailed password reset.
func ResetPassword() gin.HandlerFunc {
	return userInput(func(u map[string]any, errs Errors) *types.ResetPasswordRequest {
		password, confirmation := passwordFields(u, errs)
		return &types.ResetPasswordRequest{
			Password:             password,
			PasswordConfirmation: confirmation,
			PasswordToken:        requiredField(u, errs, "passwordtoken"),
		}
	})
}

func ChangePassword() gin.HandlerFunc {
	return userInput(func(u map[string]any, errs Errors) *types.ChangePasswordRequest {
		old := requiredField(u, errs, "oldPassword")
		password, confirmation := passwordFields(u, errs)
		return &types.ChangePasswordRequest{
			OldPassword:          old,
			Password:             password,
			PasswordConfirmation: confirmation,
		}
	})
}

// EditProfile accepts an optional bio and image under "user".
func EditProfile() gin.HandlerFunc {
	return userInput(func(u map[string]any, errs Errors) *types.UpdateProfileRequest {
		req := &types.UpdateProfileRequest{}
		if bio, ok := str(u, "bio"); ok {
			if !maxLen(bio, 500) {
				errs.Add("bio", "The bio may not be greater than 500 characters.")
			}
			req.Bio = &bio
		}
		if image, ok := str(u, "image"); ok {
			if validate.Var(image, "omitempty,url") != nil {
				errs.Add("image", "The image format is invalid.")
			}
			req.Image = &image
		}
		return req
	})
}
