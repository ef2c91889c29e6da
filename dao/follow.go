package dao

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type FollowDAO struct {
	RelationDAO[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		RelationDAO: NewRelationDAO(db, "follower_id", "followee_id", func(followerID, followeeID uint64) *models.Follow {
			return &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
		}),
	}
}

// ListFollowing pages through the users followerID follows.
func (d *FollowDAO) ListFollowing(ctx context.Context, followerID uint64, p types.Pagination) ([]*models.ActorSummary, int64, error) {
	return d.listUsers(ctx, d.ActorColumn, followerID, d.TargetColumn, p)
}
