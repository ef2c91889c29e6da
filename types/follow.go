package types

import (
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
)

type FollowingListResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	AuthorsIFollow []*models.ActorSummary  `json:"authorsIFollow"`
}

type FollowersListResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	Followers      []*models.ActorSummary  `json:"followers"`
}
