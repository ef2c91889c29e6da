package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewArticleDAO,
	NewCommentDAO,
	NewReplyDAO,
	NewFollowDAO,
	NewReplyLikeDAO,
	NewBookmarkDAO,
	NewReportCategoryDAO,
	NewReportDAO,
)
