package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/valentineezeh/leader-are-readers/pkg/jwt"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mailToken(t *testing.T, env *testEnv, param string) string {
	t.Helper()
	var job MailJob
	require.NoError(t, json.Unmarshal(env.pub.last().body, &job))
	u, err := url.Parse(job.Link)
	require.NoError(t, err)
	return u.Query().Get(param)
}

func TestUserService_SignUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, token, err := env.user.SignUp(ctx, &types.SignUpRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "password123", user.Password)

	claims, err := jwt.ParseToken([]byte(env.cfg.Jwt.Secret), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsVerified)

	sent := env.pub.last()
	assert.Equal(t, "test_mail", sent.topic)
	assert.Equal(t, "alice@example.com", sent.key)
	assert.Equal(t, user.Hash, mailToken(t, env, "emailToken"))

	_, _, err = env.user.SignUp(ctx, &types.SignUpRequest{Username: "alice", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, _, err = env.user.SignUp(ctx, &types.SignUpRequest{Username: "other", Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")

	user, token, err := env.user.Login(ctx, &types.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = env.user.Login(ctx, &types.LoginRequest{Username: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, err = env.user.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = env.user.Login(ctx, &types.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_VerifyEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, _, err := env.user.SignUp(ctx, &types.SignUpRequest{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.ErrorIs(t, env.user.VerifyEmail(ctx, "not-a-token"), ErrInvalidToken)
	assert.ErrorIs(t, env.user.VerifyEmail(ctx, ""), ErrInvalidToken)

	require.NoError(t, env.user.VerifyEmail(ctx, user.Hash))
	assert.ErrorIs(t, env.user.VerifyEmail(ctx, user.Hash), ErrAlreadyVerified)

	assert.ErrorIs(t, env.user.ResendVerification(ctx, "alice@example.com"), ErrAlreadyVerified)
}

func TestUserService_VerifyEmailExpired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, _, err := env.user.SignUp(ctx, &types.SignUpRequest{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NoError(t, env.users.UpdateById(ctx, user.ID, map[string]any{"hash_expires_at": time.Now().Add(-time.Minute)}))

	assert.ErrorIs(t, env.user.VerifyEmail(ctx, user.Hash), ErrLinkExpired)

	require.NoError(t, env.user.ResendVerification(ctx, "alice@example.com"))
	fresh := mailToken(t, env, "emailToken")
	assert.NotEqual(t, user.Hash, fresh)
	require.NoError(t, env.user.VerifyEmail(ctx, fresh))

	assert.ErrorIs(t, env.user.ResendVerification(ctx, "nobody@example.com"), ErrUserNotFound)
}

func TestUserService_ResetPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.newUser(t, "alice")

	assert.ErrorIs(t, env.user.RequestPasswordReset(ctx, "nobody@example.com"), ErrUserNotFound)
	require.NoError(t, env.user.RequestPasswordReset(ctx, "alice@example.com"))
	token := mailToken(t, env, "passwordtoken")
	require.NotEmpty(t, token)
	var job MailJob
	require.NoError(t, json.Unmarshal(env.pub.last().body, &job))
	assert.Equal(t, "http://localhost:8080/reset-password?passwordtoken="+token, job.Link)

	req := &types.ResetPasswordRequest{Password: "new-password", PasswordConfirmation: "new-password", PasswordToken: token}
	require.NoError(t, env.user.ResetPassword(ctx, req))
	assert.ErrorIs(t, env.user.ResetPassword(ctx, req), ErrInvalidToken, "a reset token works once")

	_, _, err := env.user.Login(ctx, &types.LoginRequest{Username: "alice", Password: "new-password"})
	require.NoError(t, err)
}

func TestUserService_MailFailureDoesNotFailRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	require.NoError(t, env.users.UpdateById(ctx, alice.ID, map[string]any{"is_verified": false}))
	env.pub.err = errors.New("broker down")

	require.NoError(t, env.user.ResendVerification(ctx, "alice@example.com"))
	require.NoError(t, env.user.RequestPasswordReset(ctx, "alice@example.com"))
	assert.Empty(t, env.pub.sent)

	stored, err := env.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Hash)
	assert.NotEmpty(t, stored.ResetPasswordHash)
}

func TestUserService_ResetPasswordExpired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")

	require.NoError(t, env.user.RequestPasswordReset(ctx, "alice@example.com"))
	token := mailToken(t, env, "passwordtoken")
	require.NoError(t, env.users.UpdateById(ctx, alice.ID, map[string]any{"reset_password_expires_at": time.Now().Add(-time.Minute)}))

	err := env.user.ResetPassword(ctx, &types.ResetPasswordRequest{Password: "new-password", PasswordConfirmation: "new-password", PasswordToken: token})
	assert.ErrorIs(t, err, ErrLinkExpired)
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")

	err := env.user.ChangePassword(ctx, alice.ID, &types.ChangePasswordRequest{OldPassword: "wrong", Password: "changed-pass"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = env.user.ChangePassword(ctx, alice.ID, &types.ChangePasswordRequest{OldPassword: "password123", Password: "changed-pass"})
	require.NoError(t, err)

	_, _, err = env.user.Login(ctx, &types.LoginRequest{Username: "alice", Password: "changed-pass"})
	require.NoError(t, err)

	err = env.user.ChangePassword(ctx, 9999, &types.ChangePasswordRequest{OldPassword: "password123", Password: "changed-pass"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Profiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	bob := env.newUser(t, "bob")

	_, err := env.follow.Follow(ctx, bob.ID, "alice")
	require.NoError(t, err)

	profile, err := env.user.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.FollowersCount)
	assert.Equal(t, int64(0), profile.FollowingCount)

	_, err = env.user.Profile(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	bio := "writes about Go"
	profile, err = env.user.UpdateProfile(ctx, alice.ID, "alice", &types.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, profile.Bio)

	_, err = env.user.UpdateProfile(ctx, bob.ID, "alice", &types.UpdateProfileRequest{Bio: &bio})
	assert.ErrorIs(t, err, ErrForbidden)

	profiles, total, err := env.user.ListProfiles(ctx, types.Pagination{Page: 1, Limit: 10, Order: types.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, profiles, 2)
	assert.Equal(t, "alice", profiles[0].Username)
	assert.Equal(t, int64(1), profiles[1].FollowingCount)
}
