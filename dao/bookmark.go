package dao

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	RelationDAO[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{
		RelationDAO: NewRelationDAO(db, "user_id", "article_id", func(userID, articleID uint64) *models.Bookmark {
			return &models.Bookmark{UserID: userID, ArticleID: articleID}
		}),
	}
}

// ListByUser pages through the articles userID has bookmarked.
func (d *BookmarkDAO) ListByUser(ctx context.Context, userID uint64, p types.Pagination) ([]*models.ArticleSummary, int64, error) {
	total, err := d.CountTargets(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*models.ArticleSummary, 0)
	if total == 0 {
		return items, 0, nil
	}

	order := p.SafeOrder()
	err = d.Db.WithContext(ctx).
		Table("bookmarks AS b").
		Select("a.slug, a.title, a.description, b.created_at").
		Joins("JOIN articles a ON a.id = b.article_id").
		Where("b.user_id = ?", userID).
		Order("b.created_at " + order).
		Order("b.id " + order).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
