package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/encrypt"
	"github.com/valentineezeh/leader-are-readers/pkg/jwt"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	SignUp(ctx context.Context, req *types.SignUpRequest) (*models.User, string, error)
	Login(ctx context.Context, req *types.LoginRequest) (*models.User, string, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uint64, req *types.ChangePasswordRequest) error
	Profile(ctx context.Context, username string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, actorID uint64, username string, req *types.UpdateProfileRequest) (*types.Profile, error)
	ListProfiles(ctx context.Context, p types.Pagination) ([]*types.Profile, int64, error)
}

type UserService struct {
	Config        *config.Config
	UserDAO       *dao.Users
	FollowService IFollowService
	MailService   IMailService
}

func (s *UserService) SignUp(ctx context.Context, req *types.SignUpRequest) (*models.User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if exist, err := s.UserDAO.IsExist(ctx, "username = ?", username); err != nil {
		return nil, "", err
	} else if exist {
		return nil, "", ErrUsernameTaken
	}
	if exist, err := s.UserDAO.IsExist(ctx, "email = ?", email); err != nil {
		return nil, "", err
	} else if exist {
		return nil, "", ErrEmailTaken
	}

	password, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	expires := time.Now().Add(s.Config.Mail.VerifyExpire())
	user := &models.User{
		Username:      username,
		Email:         email,
		Password:      password,
		Role:          models.RoleUser,
		Hash:          uuid.NewString(),
		HashExpiresAt: &expires,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	if err := s.MailService.SendVerification(ctx, user.Username, user.Email, user.Hash); err != nil {
		log.L.Error("send verification mail", zap.Uint64("user", user.ID), zap.Error(err))
	}

	token, err := s.token(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*models.User, string, error) {
	user, err := s.UserDAO.FindByLogin(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, "", err
	}
	if user == nil || !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.token(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) token(user *models.User) (string, error) {
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), jwt.Identity{
		UserID:     user.ID,
		Username:   user.Username,
		IsVerified: user.IsVerified,
		Role:       user.Role,
	}, s.Config.Jwt.Expire())
}

// VerifyEmail activates the account owning token. The token stays on the
// account so a second visit reports it as already activated.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.UserDAO.FindByHash(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	if user.HashExpiresAt == nil || time.Now().After(*user.HashExpiresAt) {
		return ErrLinkExpired
	}
	return s.UserDAO.UpdateById(ctx, user.ID, map[string]any{"is_verified": true})
}

func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.UserDAO.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	hash := uuid.NewString()
	expires := time.Now().Add(s.Config.Mail.VerifyExpire())
	if err := s.UserDAO.UpdateById(ctx, user.ID, map[string]any{
		"hash":            hash,
		"hash_expires_at": expires,
	}); err != nil {
		return err
	}
	if err := s.MailService.SendVerification(ctx, user.Username, user.Email, hash); err != nil {
		log.L.Error("send verification mail", zap.Uint64("user", user.ID), zap.Error(err))
	}
	return nil
}

func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.UserDAO.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash := uuid.NewString()
	expires := time.Now().Add(s.Config.Mail.ResetExpire())
	if err := s.UserDAO.UpdateById(ctx, user.ID, map[string]any{
		"reset_password_hash":       hash,
		"reset_password_expires_at": expires,
	}); err != nil {
		return err
	}
	if err := s.MailService.SendPasswordReset(ctx, user.Username, user.Email, hash); err != nil {
		log.L.Error("send password reset mail", zap.Uint64("user", user.ID), zap.Error(err))
	}
	return nil
}

// ResetPassword consumes a reset token; each token works once.
func (s *UserService) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error {
	user, err := s.UserDAO.FindByResetHash(ctx, req.PasswordToken)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}
	if user.ResetPasswordExpiresAt == nil || time.Now().After(*user.ResetPasswordExpiresAt) {
		return ErrLinkExpired
	}

	password, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.UserDAO.UpdateById(ctx, user.ID, map[string]any{
		"password":                  password,
		"reset_password_hash":       "",
		"reset_password_expires_at": nil,
	})
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint64, req *types.ChangePasswordRequest) error {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !encrypt.VerifyPassword(user.Password, req.OldPassword) {
		return ErrWrongPassword
	}

	password, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.UserDAO.UpdateById(ctx, user.ID, map[string]any{"password": password})
}

func (s *UserService) Profile(ctx context.Context, username string) (*types.Profile, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.profile(ctx, user)
}

func (s *UserService) UpdateProfile(ctx context.Context, actorID uint64, username string, req *types.UpdateProfileRequest) (*types.Profile, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.ID != actorID {
		return nil, ErrForbidden
	}

	data := make(map[string]any)
	if req.Bio != nil {
		data["bio"] = *req.Bio
		user.Bio = *req.Bio
	}
	if req.Image != nil {
		data["image"] = *req.Image
		user.Image = *req.Image
	}
	if err := s.UserDAO.UpdateById(ctx, user.ID, data); err != nil {
		return nil, err
	}
	return s.profile(ctx, user)
}

func (s *UserService) ListProfiles(ctx context.Context, p types.Pagination) ([]*types.Profile, int64, error) {
	users, total, err := s.UserDAO.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]*types.Profile, 0, len(users))
	for _, u := range users {
		profile, err := s.profile(ctx, u)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, total, nil
}

func (s *UserService) profile(ctx context.Context, user *models.User) (*types.Profile, error) {
	followers, following, err := s.FollowService.Counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &types.Profile{
		Username:       user.Username,
		Bio:            user.Bio,
		Image:          user.Image,
		FollowersCount: followers,
		FollowingCount: following,
		CreatedAt:      user.CreatedAt,
	}, nil
}
