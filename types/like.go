package types

import (
	"github.com/valentineezeh/leader-are-readers/pkg/response"
)

type LikeUser struct {
	Username string `json:"username"`
}

type Like struct {
	User LikeUser `json:"user"`
}

type ReplyLikesResponse struct {
	Message        string                  `json:"message,omitempty"`
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	Likes          []Like                  `json:"likes,omitempty"`
	ReplyID        uint64                  `json:"replyId"`
	LikesCount     int64                   `json:"likesCount"`
}
