package service

import (
	"context"
	"encoding/json"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/snowflake"
	"github.com/valentineezeh/leader-are-readers/pkg/utils"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/datatypes"
)

var _ IArticleService = (*ArticleService)(nil)

type IArticleService interface {
	Create(ctx context.Context, authorID uint64, req *types.ArticleRequest) (*types.ArticleItem, error)
	Get(ctx context.Context, slug string) (*types.ArticleItem, error)
	List(ctx context.Context, p types.Pagination) ([]*types.ArticleItem, int64, error)
	Update(ctx context.Context, actorID uint64, slug string, req *types.ArticleRequest) (*types.ArticleItem, error)
	Delete(ctx context.Context, actorID uint64, slug string) error
}

type ArticleService struct {
	Config          *config.Config
	ArticleDAO      *dao.ArticleDAO
	BookmarkService IBookmarkService
}

func (s *ArticleService) Create(ctx context.Context, authorID uint64, req *types.ArticleRequest) (*types.ArticleItem, error) {
	tags, err := encodeTags(req.TagList)
	if err != nil {
		return nil, err
	}

	id := uint64(snowflake.GenID())
	article := &models.Article{
		ID:          id,
		Slug:        utils.ArticleSlug(s.Config.App.SlugSalt, req.Title, int64(id)),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     tags,
		AuthorID:    authorID,
	}
	if err := s.ArticleDAO.Create(ctx, article); err != nil {
		return nil, err
	}
	return s.Get(ctx, article.Slug)
}

func (s *ArticleService) Get(ctx context.Context, slug string) (*types.ArticleItem, error) {
	view, err := s.ArticleDAO.FindViewBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrArticleNotFound
	}
	return s.item(ctx, view)
}

func (s *ArticleService) List(ctx context.Context, p types.Pagination) ([]*types.ArticleItem, int64, error) {
	views, total, err := s.ArticleDAO.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*types.ArticleItem, 0, len(views))
	for _, v := range views {
		item, err := s.item(ctx, v)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

// Update rewrites the article content. The slug never changes, so links stay valid.
func (s *ArticleService) Update(ctx context.Context, actorID uint64, slug string, req *types.ArticleRequest) (*types.ArticleItem, error) {
	article, err := s.owned(ctx, actorID, slug)
	if err != nil {
		return nil, err
	}

	tags, err := encodeTags(req.TagList)
	if err != nil {
		return nil, err
	}
	err = s.ArticleDAO.UpdateById(ctx, article.ID, map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"body":        req.Body,
		"tag_list":    tags,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, slug)
}

func (s *ArticleService) Delete(ctx context.Context, actorID uint64, slug string) error {
	article, err := s.owned(ctx, actorID, slug)
	if err != nil {
		return err
	}
	return s.ArticleDAO.Delete(ctx, article.ID)
}

func (s *ArticleService) owned(ctx context.Context, actorID uint64, slug string) (*models.Article, error) {
	article, err := s.ArticleDAO.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	if article.AuthorID != actorID {
		return nil, ErrForbidden
	}
	return article, nil
}

func (s *ArticleService) item(ctx context.Context, v *models.ArticleView) (*types.ArticleItem, error) {
	count, err := s.BookmarkService.Count(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0)
	if len(v.TagList) > 0 {
		if err := json.Unmarshal(v.TagList, &tags); err != nil {
			return nil, err
		}
	}
	return &types.ArticleItem{
		Slug:           v.Slug,
		Title:          v.Title,
		Description:    v.Description,
		Body:           v.Body,
		TagList:        tags,
		Author:         v.Username,
		BookmarksCount: count,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}, nil
}

func encodeTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
