package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/database/dbtest"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, users *Users, names ...string) []*models.User {
	t.Helper()
	out := make([]*models.User, 0, len(names))
	for _, name := range names {
		u := &models.User{Username: name, Email: name + "@example.com", Password: "x", Role: models.RoleUser}
		require.NoError(t, users.Create(context.Background(), u))
		out = append(out, u)
	}
	return out
}

func TestRelationDAO_UniquePair(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	follows := NewFollowDAO(db)

	require.NoError(t, follows.Add(ctx, 1, 2))
	assert.ErrorIs(t, follows.Add(ctx, 1, 2), ErrDuplicate)
	require.NoError(t, follows.Add(ctx, 2, 1), "the reverse pair is a different relation")

	ok, err := follows.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := follows.Remove(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = follows.Remove(ctx, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRelationDAO_Counts(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	likes := NewReplyLikeDAO(db)

	for _, userID := range []uint64{1, 2, 3} {
		require.NoError(t, likes.Add(ctx, userID, 10))
	}
	require.NoError(t, likes.Add(ctx, 1, 11))

	n, err := likes.CountActors(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = likes.CountTargets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRelationDAO_ListActors(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	users := seedUsers(t, NewUsers(db), "alice", "bob", "carol")
	follows := NewFollowDAO(db)

	require.NoError(t, follows.Add(ctx, users[1].ID, users[0].ID))
	require.NoError(t, follows.Add(ctx, users[2].ID, users[0].ID))

	items, total, err := follows.ListActors(ctx, users[0].ID, types.Pagination{Page: 1, Limit: 10, Order: types.OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "carol", items[0].Username)
	assert.Equal(t, "bob", items[1].Username)

	items, total, err = follows.ListActors(ctx, users[0].ID, types.Pagination{Page: 3, Limit: 1, Order: types.OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, items)

	items, total, err = follows.ListFollowing(ctx, users[1].ID, types.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alice", items[0].Username)
}

func TestRepo_FindByWhereMissing(t *testing.T) {
	db := dbtest.New(t)
	users := NewUsers(db)

	u, err := users.FindByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = users.FindByHash(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRepo_DuplicateUsername(t *testing.T) {
	db := dbtest.New(t)
	users := NewUsers(db)
	seedUsers(t, users, "alice")

	err := users.Create(context.Background(), &models.User{Username: "alice", Email: "second@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, translate(errors.New("Error 1062 (23000): Duplicate entry 'a-b' for key 'uk_follows_pair'")), ErrDuplicate)
	assert.ErrorIs(t, translate(errors.New("UNIQUE constraint failed: follows.follower_id")), ErrDuplicate)

	other := errors.New("connection refused")
	assert.Equal(t, other, translate(other))
}
