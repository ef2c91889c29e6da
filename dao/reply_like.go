package dao

import (
	"github.com/valentineezeh/leader-are-readers/models"

	"gorm.io/gorm"
)

type ReplyLikeDAO struct {
	RelationDAO[models.ReplyLike]
}

func NewReplyLikeDAO(db *gorm.DB) *ReplyLikeDAO {
	return &ReplyLikeDAO{
		RelationDAO: NewRelationDAO(db, "user_id", "reply_id", func(userID, replyID uint64) *models.ReplyLike {
			return &models.ReplyLike{UserID: userID, ReplyID: replyID}
		}),
	}
}
