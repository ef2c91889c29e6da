package dao

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *CommentDAO) ListByArticle(ctx context.Context, articleID uint64, p types.Pagination) ([]*models.CommentView, int64, error) {
	return listViews(ctx, d.Db, "comments", "article_id", articleID, p)
}

type ReplyDAO struct {
	Repo[models.Reply]
}

func NewReplyDAO(db *gorm.DB) *ReplyDAO {
	return &ReplyDAO{
		Repo: NewRepo[models.Reply](db),
	}
}

func (d *ReplyDAO) ListByComment(ctx context.Context, commentID uint64, p types.Pagination) ([]*models.CommentView, int64, error) {
	return listViews(ctx, d.Db, "replies", "comment_id", commentID, p)
}

func listViews(ctx context.Context, db *gorm.DB, table, column string, id uint64, p types.Pagination) ([]*models.CommentView, int64, error) {
	where := "t." + column + " = ?"

	var total int64
	if err := db.WithContext(ctx).Table(table+" AS t").Where(where, id).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*models.CommentView, 0)
	if total == 0 {
		return items, 0, nil
	}
	err := db.WithContext(ctx).
		Table(table+" AS t").
		Select("t.id, t.body, t.created_at, u.username").
		Joins("JOIN users u ON u.id = t.user_id").
		Where(where, id).
		Order("t.created_at " + p.SafeOrder()).
		Order("t.id " + p.SafeOrder()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&items).Error
	return items, total, err
}
