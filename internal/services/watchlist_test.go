package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/repos"
	"github.com/finbrief/finbrief-backend/internal/requestdata"
)

func newWatchlistFixture(t *testing.T) (WatchlistService, context.Context) {
	t.Helper()

	db := newTestDB(t)
	log := logger.NewNop()
	svc := NewWatchlistService(log, repos.NewWatchlistRepo(db, log))
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: uuid.New(),
	})
	return svc, ctx
}

func TestWatchlistAddListRemove(t *testing.T) {
	svc, ctx := newWatchlistFixture(t)

	item, err := svc.Add(ctx, "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", item.Ticker)

	_, err = svc.Add(ctx, "MSFT")
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "AAPL", items[0].Ticker)

	require.NoError(t, svc.Remove(ctx, "AAPL"))

	items, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "MSFT", items[0].Ticker)
}

func TestWatchlistAddDuplicate(t *testing.T) {
	svc, ctx := newWatchlistFixture(t)

	_, err := svc.Add(ctx, "AAPL")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "aapl")
	require.ErrorIs(t, err, pkgerrors.ErrConflict)
}

func TestWatchlistRemoveMissing(t *testing.T) {
	svc, ctx := newWatchlistFixture(t)

	err := svc.Remove(ctx, "AAPL")
	require.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestWatchlistRequiresAuthentication(t *testing.T) {
	svc, _ := newWatchlistFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "AAPL")
	require.ErrorIs(t, err, pkgerrors.ErrUnauthorized)

	_, err = svc.List(ctx)
	require.ErrorIs(t, err, pkgerrors.ErrUnauthorized)

	err = svc.Remove(ctx, "AAPL")
	require.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
}
