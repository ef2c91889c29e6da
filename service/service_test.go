package service

import (
	"context"
	"sync"
	"testing"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/dao/cache"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/database/dbtest"
	"github.com/valentineezeh/leader-are-readers/pkg/encrypt"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sentMail struct {
	topic, key string
	body       []byte
}

type recordPublisher struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (p *recordPublisher) Publish(_ context.Context, topic, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sentMail{topic: topic, key: key, body: body})
	return nil
}

func (p *recordPublisher) Close() error { return nil }

func (p *recordPublisher) last() sentMail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sent[len(p.sent)-1]
}

type testEnv struct {
	db  *gorm.DB
	mr  *miniredis.Miniredis
	cfg *config.Config
	pub *recordPublisher

	users     *dao.Users
	replies   *dao.ReplyDAO
	follow    *FollowService
	likes     *ReplyLikeService
	bookmarks *BookmarkService
	user      *UserService
	articles  *ArticleService
	comments  *CommentService
	reports   *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log.L = zap.NewNop()

	cfg, err := config.Parse([]byte(`
app:
  base_url: http://localhost:3000/api
  frontend_url: http://localhost:8080/
  slug_salt: test
jwt:
  secret: test-secret
rocketmq:
  mail_topic: test_mail
`))
	require.NoError(t, err)

	db := dbtest.New(t)
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	counters := cache.NewRelationCache(rds, cfg)

	env := &testEnv{db: db, mr: mr, cfg: cfg, pub: &recordPublisher{}}
	env.users = dao.NewUsers(db)
	env.replies = dao.NewReplyDAO(db)
	articleDAO := dao.NewArticleDAO(db)
	commentDAO := dao.NewCommentDAO(db)

	env.follow = &FollowService{FollowDAO: dao.NewFollowDAO(db), UserDAO: env.users, Cache: counters}
	env.likes = &ReplyLikeService{ReplyLikeDAO: dao.NewReplyLikeDAO(db), ReplyDAO: env.replies, Cache: counters}
	env.bookmarks = &BookmarkService{BookmarkDAO: dao.NewBookmarkDAO(db), ArticleDAO: articleDAO, Cache: counters}
	env.user = &UserService{
		Config:        cfg,
		UserDAO:       env.users,
		FollowService: env.follow,
		MailService:   &MailService{Config: cfg, Publisher: env.pub},
	}
	env.articles = &ArticleService{Config: cfg, ArticleDAO: articleDAO, BookmarkService: env.bookmarks}
	env.comments = &CommentService{ArticleDAO: articleDAO, CommentDAO: commentDAO, ReplyDAO: env.replies}
	env.reports = &ReportService{
		ArticleDAO:  articleDAO,
		CategoryDAO: dao.NewReportCategoryDAO(db),
		ReportDAO:   dao.NewReportDAO(db),
	}
	return env
}

// newUser inserts a verified user whose password is "password123".
func (e *testEnv) newUser(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := encrypt.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   hash,
		Role:       models.RoleUser,
		IsVerified: true,
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) newArticle(t *testing.T, author *models.User, title string) string {
	t.Helper()
	item, err := e.articles.Create(context.Background(), author.ID, &types.ArticleRequest{
		Title:       title,
		Description: "about " + title,
		Body:        "body of " + title,
		TagList:     []string{"go"},
	})
	require.NoError(t, err)
	return item.Slug
}

func (e *testEnv) newReply(t *testing.T, author *models.User) *models.Reply {
	t.Helper()
	ctx := context.Background()
	slug := e.newArticle(t, author, "thread "+author.Username)
	comment, err := e.comments.Comment(ctx, author.ID, slug, "first")
	require.NoError(t, err)
	reply, err := e.comments.Reply(ctx, author.ID, comment.ID, "second")
	require.NoError(t, err)
	return reply
}
