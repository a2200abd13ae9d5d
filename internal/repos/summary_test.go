package repos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/types"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummaryRepoFindAbsent(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())

	got, err := repo.Find(context.Background(), nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryRepoCreatePlaceholder(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	created, err := repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	assert.Equal(t, types.SummaryGenerating, created.SummaryText)
	assert.True(t, created.IsGenerating())

	found, err := repo.Find(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, types.SummaryGenerating, found.SummaryText)
}

func TestSummaryRepoCreatePlaceholderConflict(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	_, err := repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)

	_, err = repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	assert.ErrorIs(t, err, pkgerrors.ErrConflict)

	// a different filing date is an independent key
	_, err = repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-06-30"))
	assert.NoError(t, err)
}

func TestSummaryRepoUpdateText(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	_, err := repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateText(ctx, nil, "ACME", date("2024-03-31"), "Strong quarter."))

	found, err := repo.Find(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Strong quarter.", found.SummaryText)
	assert.False(t, found.IsGenerating())
	assert.False(t, found.IsError())

	// repeated reads keep returning the same text
	again, err := repo.Find(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	assert.Equal(t, "Strong quarter.", again.SummaryText)
}

func TestSummaryRepoUpdateTextMissingRecord(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())

	err := repo.UpdateText(context.Background(), nil, "ACME", date("2024-03-31"), "text")
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestSummaryRepoDeleteErrors(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	_, err := repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateText(ctx, nil, "ACME", date("2024-03-31"), types.SummaryErrorPrefix+": extraction failed"))

	_, err = repo.CreatePlaceholder(ctx, nil, "ACME", date("2023-12-31"))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateText(ctx, nil, "ACME", date("2023-12-31"), "A fine quarter."))

	deleted, err := repo.DeleteErrors(ctx, nil, "ACME", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// the error key is absent again, the ready record untouched
	gone, err := repo.Find(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.Find(ctx, nil, "ACME", date("2023-12-31"))
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "A fine quarter.", kept.SummaryText)

	// the cleared key can be claimed again
	_, err = repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	assert.NoError(t, err)
}

func TestSummaryRepoDeleteErrorsScopedToDate(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	for _, d := range []string{"2024-03-31", "2023-12-31"} {
		_, err := repo.CreatePlaceholder(ctx, nil, "ACME", date(d))
		require.NoError(t, err)
		require.NoError(t, repo.UpdateText(ctx, nil, "ACME", date(d), types.SummaryErrorPrefix+": boom"))
	}

	target := date("2024-03-31")
	deleted, err := repo.DeleteErrors(ctx, nil, "ACME", &target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.ListByTicker(ctx, nil, "ACME")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, date("2023-12-31").Format("2006-01-02"), remaining[0].FilingDate.Format("2006-01-02"))
}

func TestSummaryRepoDeleteErrorsKeepsGenerating(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	_, err := repo.CreatePlaceholder(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)

	deleted, err := repo.DeleteErrors(ctx, nil, "ACME", nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	still, err := repo.Find(ctx, nil, "ACME", date("2024-03-31"))
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.True(t, still.IsGenerating())
}

func TestSummaryRepoListByTickerOrdersNewestFirst(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	for _, d := range []string{"2023-12-31", "2024-06-30", "2024-03-31"} {
		_, err := repo.CreatePlaceholder(ctx, nil, "ACME", date(d))
		require.NoError(t, err)
	}

	got, err := repo.ListByTicker(ctx, nil, "ACME")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-30", got[0].FilingDate.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", got[1].FilingDate.Format("2006-01-02"))
	assert.Equal(t, "2023-12-31", got[2].FilingDate.Format("2006-01-02"))
}
