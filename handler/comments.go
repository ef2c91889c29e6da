package handler

import (
	"errors"
	"net/http"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/middleware"
	"github.com/valentineezeh/leader-are-readers/middleware/validation"
	"github.com/valentineezeh/leader-are-readers/pkg/context"
	"github.com/valentineezeh/leader-are-readers/pkg/response"
	"github.com/valentineezeh/leader-are-readers/service"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgCommentNotFound = "Comment does not exist"

type CommentsHandler struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	validID := validation.ValidateID("id")
	r.POST("/articles/:slug/comments", authorize, context.Wrap(ch.CreateComment))
	r.GET("/articles/:slug/comments", validation.Query(), context.Wrap(ch.GetComments))
	r.POST("/comments/:id/replies", authorize, validID, context.Wrap(ch.CreateReply))
	r.GET("/comments/:id/replies", validID, validation.Query(), context.Wrap(ch.GetReplies))
}

// bindBody answers 400 {errors} itself when the body is rejected.
func bindBody(c *gin.Context, req *types.CommentRequest) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	msg := "The body field is required."
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		msg = "The body may not be greater than 1000 characters."
	}
	response.ValidationFailed(c, map[string][]string{"body": {msg}})
	return false
}

// CreateComment 创建评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req types.CommentRequest
	if !bindBody(c, &req) {
		return nil
	}

	comment, err := ch.CommentService.Comment(c.Request.Context(), uid, c.Param("slug"), req.Body)
	if err != nil {
		return mapError(err, on(service.ErrArticleNotFound, http.StatusNotFound, msgArticleNotFound))
	}

	response.Created(c, types.CommentResponse{Message: "Comment created successfully", Comment: comment})
	return nil
}

func (ch *CommentsHandler) GetComments(c *gin.Context) error {
	p := validation.GetPagination(c)
	items, total, err := ch.CommentService.Comments(c.Request.Context(), c.Param("slug"), p)
	if err != nil {
		return mapError(err, on(service.ErrArticleNotFound, http.StatusNotFound, msgArticleNotFound))
	}
	if total == 0 {
		response.Message(c, "No comments yet.")
		return nil
	}

	response.Success(c, types.CommentListResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, total, len(items)),
		Comments:       items,
	})
	return nil
}

func (ch *CommentsHandler) CreateReply(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req types.CommentRequest
	if !bindBody(c, &req) {
		return nil
	}

	reply, err := ch.CommentService.Reply(c.Request.Context(), uid, validation.GetID(c), req.Body)
	if err != nil {
		return mapError(err, on(service.ErrCommentNotFound, http.StatusNotFound, msgCommentNotFound))
	}

	response.Created(c, types.ReplyResponse{Message: "Reply created successfully", Reply: reply})
	return nil
}

func (ch *CommentsHandler) GetReplies(c *gin.Context) error {
	p := validation.GetPagination(c)
	commentID := validation.GetID(c)
	items, total, err := ch.CommentService.Replies(c.Request.Context(), commentID, p)
	if err != nil {
		return mapError(err, on(service.ErrCommentNotFound, http.StatusNotFound, msgCommentNotFound))
	}
	if total == 0 {
		response.Message(c, "No replies yet.")
		return nil
	}

	response.Success(c, types.ReplyListResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, total, len(items)),
		CommentID:      commentID,
		Replies:        items,
	})
	return nil
}
