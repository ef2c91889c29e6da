package models

import (
	"time"

	"gorm.io/datatypes"
)

type Article struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"` // snowflake
	Slug        string         `gorm:"column:slug;type:varchar(255);not null;uniqueIndex:uk_articles_slug" json:"slug"`
	Title       string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string         `gorm:"column:description;type:varchar(300);not null" json:"description"`
	Body        string         `gorm:"column:body;type:text;not null" json:"body"`
	TagList     datatypes.JSON `gorm:"column:tag_list" json:"tagList"`
	AuthorID    uint64         `gorm:"column:author_id;not null;index:idx_articles_author" json:"authorId"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleSummary is an article as it appears in someone's bookmark list.
type ArticleSummary struct {
	Slug        string    `gorm:"column:slug" json:"slug"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"bookmarkedAt"`
}

// ArticleView is an article joined with its author's username.
type ArticleView struct {
	Article
	Username string `gorm:"column:username"`
}
