package service

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/dao/cache"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Bookmark(ctx context.Context, userID uint64, slug string) (*models.Article, error)
	Unbookmark(ctx context.Context, userID uint64, slug string) (*models.Article, error)
	ArticleBookmarks(ctx context.Context, slug string, p types.Pagination) (*RelationPage[models.Article], error)
	UserBookmarks(ctx context.Context, userID uint64, p types.Pagination) ([]*models.ArticleSummary, int64, error)
	Count(ctx context.Context, articleID uint64) (int64, error)
}

type BookmarkService struct {
	BookmarkDAO *dao.BookmarkDAO
	ArticleDAO  *dao.ArticleDAO
	Cache       *cache.RelationCache
}

func (s *BookmarkService) relation() *Relation[string, models.Article] {
	return &Relation[string, models.Article]{
		Kind:     "bookmark",
		Store:    s.BookmarkDAO,
		Resolve:  s.ArticleDAO.FindBySlug,
		TargetID: func(a *models.Article) uint64 { return a.ID },
		OnChange: func(ctx context.Context, _, articleID uint64) error {
			return invalidate(ctx, s.Cache, cache.KindBookmarks, articleID)
		},
	}
}

func (s *BookmarkService) Bookmark(ctx context.Context, userID uint64, slug string) (*models.Article, error) {
	return s.relation().Add(ctx, userID, slug)
}

func (s *BookmarkService) Unbookmark(ctx context.Context, userID uint64, slug string) (*models.Article, error) {
	return s.relation().Remove(ctx, userID, slug)
}

// ArticleBookmarks lists who bookmarked the article.
func (s *BookmarkService) ArticleBookmarks(ctx context.Context, slug string, p types.Pagination) (*RelationPage[models.Article], error) {
	return s.relation().List(ctx, slug, p)
}

// UserBookmarks lists the articles userID bookmarked.
func (s *BookmarkService) UserBookmarks(ctx context.Context, userID uint64, p types.Pagination) ([]*models.ArticleSummary, int64, error) {
	return s.BookmarkDAO.ListByUser(ctx, userID, p)
}

func (s *BookmarkService) Count(ctx context.Context, articleID uint64) (int64, error) {
	return countWith(ctx, s.Cache, cache.KindBookmarks, articleID, func(ctx context.Context) (int64, error) {
		return s.BookmarkDAO.CountActors(ctx, articleID)
	})
}
