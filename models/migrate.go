package models

// All lists every table, in creation order.
func All() []any {
	return []any{
		&User{},
		&Article{},
		&Comment{},
		&Reply{},
		&Follow{},
		&ReplyLike{},
		&Bookmark{},
		&ReportCategory{},
		&Report{},
	}
}
