package types

import (
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
)

type CommentRequest struct {
	Body string `json:"body" binding:"required,min=1,max=1000"`
}

type CommentResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
}

type ReplyResponse struct {
	Message string        `json:"message"`
	Reply   *models.Reply `json:"reply"`
}

type CommentListResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	Comments       []*models.CommentView   `json:"comments"`
}

type ReplyListResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	CommentID      uint64                  `json:"commentId"`
	Replies        []*models.CommentView   `json:"replies"`
}
