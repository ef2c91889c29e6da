package service

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/dao/cache"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"
)

var _ IReplyLikeService = (*ReplyLikeService)(nil)

type IReplyLikeService interface {
	Like(ctx context.Context, userID, replyID uint64) error
	Unlike(ctx context.Context, userID, replyID uint64) error
	Likes(ctx context.Context, replyID uint64, p types.Pagination) (*RelationPage[models.Reply], error)
	LikesCount(ctx context.Context, replyID uint64) (int64, error)
}

type ReplyLikeService struct {
	ReplyLikeDAO *dao.ReplyLikeDAO
	ReplyDAO     *dao.ReplyDAO
	Cache        *cache.RelationCache
}

func (s *ReplyLikeService) relation() *Relation[uint64, models.Reply] {
	return &Relation[uint64, models.Reply]{
		Kind:     "reply_like",
		Store:    s.ReplyLikeDAO,
		Resolve:  s.ReplyDAO.FindById,
		TargetID: func(r *models.Reply) uint64 { return r.ID },
		OnChange: func(ctx context.Context, _, replyID uint64) error {
			return invalidate(ctx, s.Cache, cache.KindLikes, replyID)
		},
	}
}

func (s *ReplyLikeService) Like(ctx context.Context, userID, replyID uint64) error {
	_, err := s.relation().Add(ctx, userID, replyID)
	return err
}

func (s *ReplyLikeService) Unlike(ctx context.Context, userID, replyID uint64) error {
	_, err := s.relation().Remove(ctx, userID, replyID)
	return err
}

func (s *ReplyLikeService) Likes(ctx context.Context, replyID uint64, p types.Pagination) (*RelationPage[models.Reply], error) {
	return s.relation().List(ctx, replyID, p)
}

func (s *ReplyLikeService) LikesCount(ctx context.Context, replyID uint64) (int64, error) {
	return countWith(ctx, s.Cache, cache.KindLikes, replyID, func(ctx context.Context) (int64, error) {
		return s.ReplyLikeDAO.CountActors(ctx, replyID)
	})
}
