package service

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/dao/cache"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID uint64, username string) (*models.User, error)
	Unfollow(ctx context.Context, followerID uint64, username string) (*models.User, error)
	Followers(ctx context.Context, username string, p types.Pagination) (*RelationPage[models.User], error)
	Following(ctx context.Context, username string, p types.Pagination) (*RelationPage[models.User], error)
	Counts(ctx context.Context, userID uint64) (followers int64, following int64, err error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
	Cache     *cache.RelationCache
}

func (s *FollowService) relation() *Relation[string, models.User] {
	return &Relation[string, models.User]{
		Kind:     "follow",
		Store:    s.FollowDAO,
		Resolve:  s.UserDAO.FindByUsername,
		TargetID: func(u *models.User) uint64 { return u.ID },
		NoSelf:   true,
		OnChange: func(ctx context.Context, followerID, followeeID uint64) error {
			if err := invalidate(ctx, s.Cache, cache.KindFollowers, followeeID); err != nil {
				return err
			}
			return invalidate(ctx, s.Cache, cache.KindFollowing, followerID)
		},
	}
}

func (s *FollowService) Follow(ctx context.Context, followerID uint64, username string) (*models.User, error) {
	return s.relation().Add(ctx, followerID, username)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID uint64, username string) (*models.User, error) {
	return s.relation().Remove(ctx, followerID, username)
}

// Followers lists who follows username.
func (s *FollowService) Followers(ctx context.Context, username string, p types.Pagination) (*RelationPage[models.User], error) {
	return s.relation().List(ctx, username, p)
}

// Following lists who username follows.
func (s *FollowService) Following(ctx context.Context, username string, p types.Pagination) (*RelationPage[models.User], error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTargetNotFound
	}

	items, total, err := s.FollowDAO.ListFollowing(ctx, user.ID, p)
	if err != nil {
		return nil, err
	}
	return &RelationPage[models.User]{Target: user, Items: items, Total: total}, nil
}

func (s *FollowService) Counts(ctx context.Context, userID uint64) (int64, int64, error) {
	followers, err := countWith(ctx, s.Cache, cache.KindFollowers, userID, func(ctx context.Context) (int64, error) {
		return s.FollowDAO.CountActors(ctx, userID)
	})
	if err != nil {
		return 0, 0, err
	}
	following, err := countWith(ctx, s.Cache, cache.KindFollowing, userID, func(ctx context.Context) (int64, error) {
		return s.FollowDAO.CountTargets(ctx, userID)
	})
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
