package types

// Auth request bodies are nested under a top-level "user" key.

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset with the mailed token.
type ResetPasswordRequest struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	PasswordToken        string `json:"passwordtoken"`
}

type ChangePasswordRequest struct {
	OldPassword          string `json:"oldPassword"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type AuthUser struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	Image      string `json:"image"`
	IsVerified bool   `json:"isVerified"`
	Token      string `json:"token"`
}

type AuthResponse struct {
	Message string    `json:"message,omitempty"`
	User    *AuthUser `json:"user"`
}
