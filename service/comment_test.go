package service

import (
	"context"
	"testing"

	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	bob := env.newUser(t, "bob")
	slug := env.newArticle(t, alice, "Threads")

	_, err := env.comments.Comment(ctx, bob.ID, "missing", "hi")
	assert.ErrorIs(t, err, ErrArticleNotFound)

	comment, err := env.comments.Comment(ctx, bob.ID, slug, "hi")
	require.NoError(t, err)

	items, total, err := env.comments.Comments(ctx, slug, types.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "bob", items[0].Username)

	_, err = env.comments.Reply(ctx, alice.ID, 9999, "hello")
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = env.comments.Reply(ctx, alice.ID, comment.ID, "hello")
	require.NoError(t, err)

	replies, total, err := env.comments.Replies(ctx, comment.ID, types.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alice", replies[0].Username)

	_, _, err = env.comments.Replies(ctx, 9999, types.DefaultPagination())
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
