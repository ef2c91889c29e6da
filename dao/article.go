package dao

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type ArticleDAO struct {
	Repo[models.Article]
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{
		Repo: NewRepo[models.Article](db),
	}
}

func (d *ArticleDAO) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

func (d *ArticleDAO) FindViewBySlug(ctx context.Context, slug string) (*models.ArticleView, error) {
	var items []*models.ArticleView
	err := d.view(ctx).Where("a.slug = ?", slug).Limit(1).Scan(&items).Error
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return items[0], nil
}

func (d *ArticleDAO) List(ctx context.Context, p types.Pagination) ([]*models.ArticleView, int64, error) {
	var total int64
	if err := d.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*models.ArticleView, 0)
	if total == 0 {
		return items, 0, nil
	}
	err := d.view(ctx).
		Order("a.created_at " + p.SafeOrder()).
		Order("a.id " + p.SafeOrder()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&items).Error
	return items, total, err
}

func (d *ArticleDAO) view(ctx context.Context) *gorm.DB {
	return d.Db.WithContext(ctx).
		Table("articles AS a").
		Select("a.*, u.username").
		Joins("JOIN users u ON u.id = a.author_id")
}

// Delete removes the article together with everything hanging off it.
func (d *ArticleDAO) Delete(ctx context.Context, id uint64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		replies := tx.Model(&models.Reply{}).Select("replies.id").
			Joins("JOIN comments c ON c.id = replies.comment_id").
			Where("c.article_id = ?", id)
		if err := tx.Where("reply_id IN (?)", replies).Delete(&models.ReplyLike{}).Error; err != nil {
			return err
		}

		comments := tx.Model(&models.Comment{}).Select("id").Where("article_id = ?", id)
		if err := tx.Where("comment_id IN (?)", comments).Delete(&models.Reply{}).Error; err != nil {
			return err
		}

		for _, m := range []any{&models.Comment{}, &models.Bookmark{}, &models.Report{}} {
			if err := tx.Where("article_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}
