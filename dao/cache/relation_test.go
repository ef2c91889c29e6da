package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/valentineezeh/leader-are-readers/pkg/log"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*RelationCache, *miniredis.Miniredis) {
	t.Helper()
	log.L = zap.NewNop()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewRelationCache(rds, nil), mr
}

func TestRelationCache_CountCachesLoad(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (int64, error) {
		calls++
		return 3, nil
	}

	n, err := c.Count(ctx, KindFollowers, 9, load)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = c.Count(ctx, KindFollowers, 9, load)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 1, calls)

	v, err := mr.Get("relation:followers:9")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
	assert.Equal(t, defaultCounterExpire, mr.TTL("relation:followers:9"))
}

func TestRelationCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("relation:likes:1", "5"))
	require.NoError(t, mr.Set("relation:likes:2", "6"))

	require.NoError(t, c.Invalidate(ctx, KindLikes, 1, 2))
	assert.False(t, mr.Exists("relation:likes:1"))
	assert.False(t, mr.Exists("relation:likes:2"))

	n, err := c.Count(ctx, KindLikes, 1, func(context.Context) (int64, error) { return 4, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestRelationCache_FallsBackWhenRedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	n, err := c.Count(context.Background(), KindBookmarks, 1, func(context.Context) (int64, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRelationCache_LoadError(t *testing.T) {
	c, _ := newTestCache(t)
	boom := errors.New("boom")

	_, err := c.Count(context.Background(), KindFollowing, 1, func(context.Context) (int64, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}
