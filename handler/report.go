package handler

import (
	"net/http"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/middleware"
	"github.com/valentineezeh/leader-are-readers/middleware/validation"
	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/service"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
)

type Report struct {
	Config        *config.Config
	ReportService service.IReportService
}

func (h *Report) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.AdminOnly()
	r.POST("/reports/categories", authorize, admin, validation.ValidateReportCategory(), context.Wrap(h.CreateCategory))
	r.GET("/reports/categories", context.Wrap(h.Categories))
	r.POST("/articles/:slug/reports", authorize, validation.ValidateReport(), context.Wrap(h.Create))
	r.GET("/reports", authorize, admin, validation.Query(), context.Wrap(h.List))
	r.GET("/reports/:id", authorize, admin, validation.ValidateID("id"), context.Wrap(h.Get))
}

func (h *Report) CreateCategory(c *gin.Context) error {
	req := validation.Payload[types.ReportCategoryRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	category, err := h.ReportService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		return mapError(err, on(service.ErrCategoryExists, http.StatusConflict, "Report category already exists"))
	}

	response.Created(c, types.ReportCategoryResponse{Message: "Report category created successfully", Category: category})
	return nil
}

func (h *Report) Categories(c *gin.Context) error {
	categories, err := h.ReportService.Categories(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"categories": categories})
	return nil
}

func (h *Report) Create(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	req := validation.Payload[types.ReportRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	report, err := h.ReportService.Report(c.Request.Context(), uid, c.Param("slug"), req)
	if err != nil {
		return mapError(err,
			on(service.ErrArticleNotFound, http.StatusNotFound, msgArticleNotFound),
			on(service.ErrCategoryNotFound, http.StatusNotFound, "Report category not found"),
		)
	}

	response.Created(c, types.ReportResponse{Message: "Report submitted successfully", Report: report})
	return nil
}

func (h *Report) List(c *gin.Context) error {
	p := validation.GetPagination(c)
	reports, total, err := h.ReportService.Reports(c.Request.Context(), p)
	if err != nil {
		return err
	}
	if total == 0 {
		response.Message(c, "No reports yet.")
		return nil
	}

	response.Success(c, types.ReportListResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, total, len(reports)),
		Reports:        reports,
	})
	return nil
}

func (h *Report) Get(c *gin.Context) error {
	report, err := h.ReportService.Get(c.Request.Context(), validation.GetID(c))
	if err != nil {
		return mapError(err, on(service.ErrReportNotFound, http.StatusNotFound, "Report not found"))
	}

	response.Success(c, types.ReportResponse{Report: report})
	return nil
}
