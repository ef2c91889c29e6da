package service

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Comment(ctx context.Context, userID uint64, slug, body string) (*models.Comment, error)
	Comments(ctx context.Context, slug string, p types.Pagination) ([]*models.CommentView, int64, error)
	Reply(ctx context.Context, userID, commentID uint64, body string) (*models.Reply, error)
	Replies(ctx context.Context, commentID uint64, p types.Pagination) ([]*models.CommentView, int64, error)
}

type CommentService struct {
	ArticleDAO *dao.ArticleDAO
	CommentDAO *dao.CommentDAO
	ReplyDAO   *dao.ReplyDAO
}

func (s *CommentService) article(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.ArticleDAO.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *CommentService) Comment(ctx context.Context, userID uint64, slug, body string) (*models.Comment, error) {
	article, err := s.article(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{ArticleID: article.ID, UserID: userID, Body: body}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Comments(ctx context.Context, slug string, p types.Pagination) ([]*models.CommentView, int64, error) {
	article, err := s.article(ctx, slug)
	if err != nil {
		return nil, 0, err
	}
	return s.CommentDAO.ListByArticle(ctx, article.ID, p)
}

func (s *CommentService) Reply(ctx context.Context, userID, commentID uint64, body string) (*models.Reply, error) {
	exist, err := s.CommentDAO.IsExist(ctx, "id = ?", commentID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrCommentNotFound
	}

	reply := &models.Reply{CommentID: commentID, UserID: userID, Body: body}
	if err := s.ReplyDAO.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *CommentService) Replies(ctx context.Context, commentID uint64, p types.Pagination) ([]*models.CommentView, int64, error) {
	exist, err := s.CommentDAO.IsExist(ctx, "id = ?", commentID)
	if err != nil {
		return nil, 0, err
	}
	if !exist {
		return nil, 0, ErrCommentNotFound
	}
	return s.ReplyDAO.ListByComment(ctx, commentID, p)
}
