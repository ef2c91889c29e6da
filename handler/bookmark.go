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

const msgArticleNotFound = "Article not found"

type Bookmark struct {
	Config          *config.Config
	BookmarkService service.IBookmarkService
}

func (h *Bookmark) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.POST("/bookmarks/:slug", authorize, context.Wrap(h.Add))
	r.DELETE("/bookmarks/:slug", authorize, context.Wrap(h.Remove))
	r.GET("/bookmarks", authorize, validation.Query(), context.Wrap(h.Mine))
	r.GET("/articles/:slug/bookmarks", validation.Query(), context.Wrap(h.ForArticle))
}

func (h *Bookmark) Add(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	article, err := h.BookmarkService.Bookmark(c.Request.Context(), uid, c.Param("slug"))
	if err != nil {
		return mapError(err,
			on(service.ErrTargetNotFound, http.StatusNotFound, msgArticleNotFound),
			on(service.ErrRelationExists, http.StatusConflict, "You have already bookmarked this article"),
		)
	}

	response.Created(c, gin.H{"slug": article.Slug, "message": "Article bookmarked successfully"})
	return nil
}

func (h *Bookmark) Remove(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	article, err := h.BookmarkService.Unbookmark(c.Request.Context(), uid, c.Param("slug"))
	if err != nil {
		return mapError(err,
			on(service.ErrTargetNotFound, http.StatusNotFound, msgArticleNotFound),
			on(service.ErrRelationMissing, http.StatusNotFound, "You have not bookmarked this article"),
		)
	}

	response.Success(c, gin.H{"slug": article.Slug, "message": "Bookmark removed successfully"})
	return nil
}

// ForArticle lists who bookmarked the article.
func (h *Bookmark) ForArticle(c *gin.Context) error {
	p := validation.GetPagination(c)
	page, err := h.BookmarkService.ArticleBookmarks(c.Request.Context(), c.Param("slug"), p)
	if err != nil {
		return mapError(err, on(service.ErrTargetNotFound, http.StatusNotFound, msgArticleNotFound))
	}
	if page.Total == 0 {
		response.Message(c, "This article has not been bookmarked yet.")
		return nil
	}

	response.Success(c, types.ArticleBookmarksResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, page.Total, len(page.Items)),
		Slug:           page.Target.Slug,
		BookmarksCount: page.Total,
		Bookmarks:      page.Items,
	})
	return nil
}

// Mine lists the caller's bookmarked articles.
func (h *Bookmark) Mine(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	p := validation.GetPagination(c)
	items, total, err := h.BookmarkService.UserBookmarks(c.Request.Context(), uid, p)
	if err != nil {
		return err
	}
	if total == 0 {
		response.Message(c, "You have no bookmarks yet.")
		return nil
	}

	response.Success(c, types.UserBookmarksResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, total, len(items)),
		Bookmarks:      items,
	})
	return nil
}
