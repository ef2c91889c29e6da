package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, Identity{UserID: 7, Username: "joeeasy", IsVerified: true, Role: "admin"}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "joeeasy", claims.Username)
	assert.True(t, claims.IsVerified)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejects(t *testing.T) {
	token, err := GenerateToken(secret, Identity{UserID: 1}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), token)
	assert.Error(t, err)

	expired, err := GenerateToken(secret, Identity{UserID: 1}, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, expired)
	assert.Error(t, err)

	_, err = ParseToken(secret, "not-a-token")
	assert.Error(t, err)
}
