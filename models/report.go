package models

import "time"

type ReportCategory struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null;uniqueIndex:uk_report_categories_title" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (ReportCategory) TableName() string {
	return "report_categories"
}

type Report struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArticleID  uint64    `gorm:"column:article_id;not null;index:idx_reports_article" json:"articleId"`
	UserID     uint64    `gorm:"column:user_id;not null" json:"userId"`
	CategoryID uint64    `gorm:"column:category_id;not null" json:"categoryId"`
	Details    string    `gorm:"column:details;type:text;not null" json:"details"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Report) TableName() string {
	return "reports"
}
