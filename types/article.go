package types

import (
	"time"

	"github.com/valentineezeh/leader-are-readers/pkg/response"
)

type ArticleRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Description string   `json:"description"`
	TagList     []string `json:"tagList"`
}

type ArticleItem struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	Author         string    `json:"author"`
	BookmarksCount int64     `json:"bookmarksCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ArticleResponse struct {
	Message string       `json:"message,omitempty"`
	Article *ArticleItem `json:"article"`
}

type ArticleListResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	Articles       []*ArticleItem          `json:"articles"`
}
