package service

import (
	"context"
	"strings"
	"testing"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")

	item, err := env.articles.Create(ctx, alice.ID, &types.ArticleRequest{
		Title:       "Hello World",
		Description: "first post",
		Body:        "some words",
		TagList:     []string{"go", "web"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(item.Slug, "hello-world-"), item.Slug)
	assert.Equal(t, "alice", item.Author)
	assert.Equal(t, []string{"go", "web"}, item.TagList)

	got, err := env.articles.Get(ctx, item.Slug)
	require.NoError(t, err)
	assert.Equal(t, item.Title, got.Title)

	_, err = env.articles.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrArticleNotFound)

	other, err := env.articles.Create(ctx, alice.ID, &types.ArticleRequest{Title: "Hello World", Description: "again", Body: "more"})
	require.NoError(t, err)
	assert.NotEqual(t, item.Slug, other.Slug)
	assert.Empty(t, other.TagList)

	items, total, err := env.articles.List(ctx, types.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

func TestArticleService_UpdateKeepsSlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	bob := env.newUser(t, "bob")
	slug := env.newArticle(t, alice, "Original")

	req := &types.ArticleRequest{Title: "Renamed", Description: "d", Body: "b"}
	_, err := env.articles.Update(ctx, bob.ID, slug, req)
	assert.ErrorIs(t, err, ErrForbidden)

	item, err := env.articles.Update(ctx, alice.ID, slug, req)
	require.NoError(t, err)
	assert.Equal(t, slug, item.Slug)
	assert.Equal(t, "Renamed", item.Title)

	_, err = env.articles.Update(ctx, alice.ID, "missing", req)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	bob := env.newUser(t, "bob")
	slug := env.newArticle(t, alice, "Doomed")

	comment, err := env.comments.Comment(ctx, bob.ID, slug, "nice")
	require.NoError(t, err)
	reply, err := env.comments.Reply(ctx, alice.ID, comment.ID, "thanks")
	require.NoError(t, err)
	require.NoError(t, env.likes.Like(ctx, bob.ID, reply.ID))
	_, err = env.bookmarks.Bookmark(ctx, bob.ID, slug)
	require.NoError(t, err)

	assert.ErrorIs(t, env.articles.Delete(ctx, bob.ID, slug), ErrForbidden)
	require.NoError(t, env.articles.Delete(ctx, alice.ID, slug))

	_, err = env.articles.Get(ctx, slug)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	for _, model := range []any{&models.Comment{}, &models.Reply{}, &models.ReplyLike{}, &models.Bookmark{}} {
		var n int64
		require.NoError(t, env.db.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%T rows left behind", model)
	}
}
