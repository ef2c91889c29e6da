package types

import (
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
)

type ArticleBookmarksResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	Slug           string                  `json:"slug"`
	BookmarksCount int64                   `json:"bookmarksCount"`
	Bookmarks      []*models.ActorSummary  `json:"bookmarks"`
}

type UserBookmarksResponse struct {
	PaginationMeta response.PaginationMeta  `json:"paginationMeta"`
	Bookmarks      []*models.ArticleSummary `json:"bookmarks"`
}
