package service

import (
	"context"
	"testing"

	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Categories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category, err := env.reports.CreateCategory(ctx, &types.ReportCategoryRequest{Title: "Spam", Description: "unsolicited"})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	_, err = env.reports.CreateCategory(ctx, &types.ReportCategoryRequest{Title: "Spam", Description: "again"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	n, err := env.reports.SeedCategories(ctx, DefaultReportCategories)
	require.NoError(t, err)
	all, err := env.reports.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n+1)

	n, err = env.reports.SeedCategories(ctx, DefaultReportCategories)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding twice inserts nothing")
}

func TestReportService_Report(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	bob := env.newUser(t, "bob")
	slug := env.newArticle(t, alice, "Reported")

	category, err := env.reports.CreateCategory(ctx, &types.ReportCategoryRequest{Title: "Plagiarism", Description: "copied"})
	require.NoError(t, err)

	_, err = env.reports.Report(ctx, bob.ID, "missing", &types.ReportRequest{CategoryID: category.ID, Details: "stolen text"})
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, err = env.reports.Report(ctx, bob.ID, slug, &types.ReportRequest{CategoryID: 9999, Details: "stolen text"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	report, err := env.reports.Report(ctx, bob.ID, slug, &types.ReportRequest{CategoryID: category.ID, Details: "stolen text"})
	require.NoError(t, err)

	got, err := env.reports.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "stolen text", got.Details)

	_, err = env.reports.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrReportNotFound)

	reports, total, err := env.reports.Reports(ctx, types.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, reports, 1)
}
