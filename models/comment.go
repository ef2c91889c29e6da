package models

import "time"

// Comment 文章评论
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArticleID uint64    `gorm:"column:article_id;not null;index:idx_comments_article" json:"articleId"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"userId"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// Reply is one entry of a comment thread and the target of reply likes.
type Reply struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CommentID uint64    `gorm:"column:comment_id;not null;index:idx_replies_comment" json:"commentId"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"userId"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Reply) TableName() string {
	return "replies"
}

// CommentView is a comment or reply joined with its author's username.
type CommentView struct {
	ID        uint64    `gorm:"column:id" json:"id"`
	Body      string    `gorm:"column:body" json:"body"`
	Username  string    `gorm:"column:username" json:"author"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}
