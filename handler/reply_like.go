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

const msgReplyNotFound = "Reply does not exist"

type ReplyLike struct {
	Config           *config.Config
	ReplyLikeService service.IReplyLikeService
}

func (h *ReplyLike) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	validID := validation.ValidateID("id")
	g := r.Group("/replies/:id")
	g.POST("/like", authorize, validID, context.Wrap(h.Like))
	g.DELETE("/unlike", authorize, validID, context.Wrap(h.Unlike))
	g.GET("/likes", validID, validation.Query(), context.Wrap(h.Likes))
}

func (h *ReplyLike) Like(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	replyID := validation.GetID(c)
	if err := h.ReplyLikeService.Like(c.Request.Context(), uid, replyID); err != nil {
		return mapError(err,
			on(service.ErrTargetNotFound, http.StatusNotFound, msgReplyNotFound),
			on(service.ErrRelationExists, http.StatusBadRequest, "Reply already liked"),
		)
	}

	response.Success(c, gin.H{"replyId": replyID, "message": "Successfully liked"})
	return nil
}

func (h *ReplyLike) Unlike(c *gin.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	replyID := validation.GetID(c)
	if err := h.ReplyLikeService.Unlike(c.Request.Context(), uid, replyID); err != nil {
		return mapError(err,
			on(service.ErrTargetNotFound, http.StatusNotFound, msgReplyNotFound),
			on(service.ErrRelationMissing, http.StatusBadRequest, "Reply has not been liked"),
		)
	}

	response.Success(c, gin.H{"replyId": replyID, "message": "Successfully unliked"})
	return nil
}

func (h *ReplyLike) Likes(c *gin.Context) error {
	p := validation.GetPagination(c)
	replyID := validation.GetID(c)

	page, err := h.ReplyLikeService.Likes(c.Request.Context(), replyID, p)
	if err != nil {
		return mapError(err, on(service.ErrTargetNotFound, http.StatusNotFound, msgReplyNotFound))
	}
	count, err := h.ReplyLikeService.LikesCount(c.Request.Context(), replyID)
	if err != nil {
		return err
	}

	resp := types.ReplyLikesResponse{
		PaginationMeta: response.NewPaginationMeta(p.Page, p.Limit, page.Total, len(page.Items)),
		ReplyID:        replyID,
		LikesCount:     count,
	}
	if page.Total == 0 {
		resp.Message = "This reply has no likes yet."
		response.Success(c, resp)
		return nil
	}

	resp.Likes = make([]types.Like, 0, len(page.Items))
	for _, item := range page.Items {
		resp.Likes = append(resp.Likes, types.Like{User: types.LikeUser{Username: item.Username}})
	}
	response.Success(c, resp)
	return nil
}
