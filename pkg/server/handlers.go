package server

import (
	"github.com/valentineezeh/leader-are-readers/handler"
)

type Handlers struct {
	Auth            *handler.Auth
	User            *handler.User
	Follow          *handler.Follow
	Article         *handler.Article
	CommentsHandler *handler.CommentsHandler
	ReplyLike       *handler.ReplyLike
	Bookmark        *handler.Bookmark
	Report          *handler.Report
}
