package service

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/dao/cache"
)

// countWith reads a relation counter through the cache when one is configured.
func countWith(ctx context.Context, c *cache.RelationCache, kind string, id uint64, load func(ctx context.Context) (int64, error)) (int64, error) {
	if c == nil {
		return load(ctx)
	}
	return c.Count(ctx, kind, id, load)
}

func invalidate(ctx context.Context, c *cache.RelationCache, kind string, ids ...uint64) error {
	if c == nil {
		return nil
	}
	return c.Invalidate(ctx, kind, ids...)
}
