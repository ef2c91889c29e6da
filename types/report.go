package types

import (
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
)

type ReportRequest struct {
	CategoryID uint64 `json:"categoryId"`
	Details    string `json:"details"`
}

type ReportCategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ReportCategoryResponse struct {
	Message  string                 `json:"message,omitempty"`
	Category *models.ReportCategory `json:"category"`
}

type ReportResponse struct {
	Message string         `json:"message,omitempty"`
	Report  *models.Report `json:"report"`
}

type ReportListResponse struct {
	PaginationMeta response.PaginationMeta `json:"paginationMeta"`
	Reports        []*models.Report        `json:"reports"`
}
