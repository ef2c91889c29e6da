package models

import "time"

// Follow 关注关系，一对用户只保留一行
type Follow struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follows_pair,priority:1" json:"followerId"`
	FolloweeID uint64    `gorm:"column:followee_id;not null;uniqueIndex:uk_follows_pair,priority:2;index:idx_follows_followee" json:"followeeId"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}

type ReplyLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_reply_likes_pair,priority:1" json:"userId"`
	ReplyID   uint64    `gorm:"column:reply_id;not null;uniqueIndex:uk_reply_likes_pair,priority:2;index:idx_reply_likes_reply" json:"replyId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ReplyLike) TableName() string {
	return "reply_likes"
}

type Bookmark struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_bookmarks_pair,priority:1" json:"userId"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_bookmarks_pair,priority:2;index:idx_bookmarks_article" json:"articleId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
