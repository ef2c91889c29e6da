package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCounterExpire = 5 * time.Minute

// Counter kinds kept in redis.
const (
	KindFollowers = "followers"
	KindFollowing = "following"
	KindLikes     = "likes"
	KindBookmarks = "bookmarks"
)

// RelationCache keeps relation counters in redis, cache-aside.
type RelationCache struct {
	redis  *redis.Client
	expire time.Duration
}

func NewRelationCache(rds *redis.Client, conf *config.Config) *RelationCache {
	expire := defaultCounterExpire
	if conf != nil && conf.Redis != nil && conf.Redis.CacheTTL > 0 {
		expire = time.Duration(conf.Redis.CacheTTL) * time.Second
	}
	return &RelationCache{redis: rds, expire: expire}
}

// Count returns the cached counter, filling it from load on a miss.
// Redis failures fall through to load.
func (r *RelationCache) Count(ctx context.Context, kind string, id uint64, load func(ctx context.Context) (int64, error)) (int64, error) {
	key := r.name(kind, id)

	n, err := r.redis.Get(ctx, key).Int64()
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.L.Warn("relation cache get", zap.String("key", key), zap.Error(err))
	}

	n, err = load(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.redis.Set(ctx, key, n, r.expire).Err(); err != nil {
		log.L.Warn("relation cache set", zap.String("key", key), zap.Error(err))
	}
	return n, nil
}

// Invalidate drops the counter of kind for every id.
func (r *RelationCache) Invalidate(ctx context.Context, kind string, ids ...uint64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.redis.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, r.name(kind, id))
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RelationCache) name(kind string, id uint64) string {
	return fmt.Sprintf("relation:%s:%d", kind, id)
}
