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

type Article struct {
	Config         *config.Config
	ArticleService service.IArticleService
}

func (h *Article) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/articles")
	g.POST("", authorize, validation.CreateArticle(), context.Wrap(h.Create))
	g.GET("", validation.Query(), context.Wrap(h.List))
	g.GET("/:slug", context.Wrap(h.Get))
	g.PUT("/:slug", authorize, validation.UpdateArticle(), context.Wrap(h.Update))
	g.DELETE("/:slug", authorize, context.Wrap(h.Delete))
}

var articleErrors = []errCase{
	on(service.ErrArticleNotFound, http.StatusNotFound, msgArticleNotFound),
	on(service.ErrForbidden, http.StatusForbidden, "Access denied."),
}

func (h *Article) Create(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	req := validation.Payload[types.ArticleRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	article, err := h.ArticleService.Create(c.Request.Context(), uid, req)
	if err != nil {
		return err
	}

	response.Created(c, types.ArticleResponse{Message: "Article created successfully", Article: article})
	return nil
}

func (h *Article) Get(c *gin.Context) error {
	article, err := h.ArticleService.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return mapError(err, articleErrors...)
	}

	response.Success(c, types.ArticleResponse{Article: article})
	return nil
}

func (h *Article) List(c *gin.Context) error {
	p := validation.GetPagination(c)
	articles, total, err := h.ArticleService.List(c.Request.Context(), p)
	if err != nil {
		return err
	}
	if total == 0 {
		response.Message(c, "No articles yet.")
		return nil
	}

	response.Success(c, types.ArticleListResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, total, len(articles)),
		Articles:       articles,
	})
	return nil
}

func (h *Article) Update(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	req := validation.Payload[types.ArticleRequest](c)
	if req == nil {
		return response.BadRequest("Invalid request body.")
	}

	article, err := h.ArticleService.Update(c.Request.Context(), uid, c.Param("slug"), req)
	if err != nil {
		return mapError(err, articleErrors...)
	}

	response.Success(c, types.ArticleResponse{Message: "Article updated successfully", Article: article})
	return nil
}

func (h *Article) Delete(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.ArticleService.Delete(c.Request.Context(), uid, c.Param("slug")); err != nil {
		return mapError(err, articleErrors...)
	}

	response.Message(c, "Article deleted successfully")
	return nil
}
