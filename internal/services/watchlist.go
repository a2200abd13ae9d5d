package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/repos"
	"github.com/finbrief/finbrief-backend/internal/requestdata"
	"github.com/finbrief/finbrief-backend/internal/types"
)

type WatchlistService interface {
	Add(ctx context.Context, ticker string) (*types.WatchlistItem, error)
	Remove(ctx context.Context, ticker string) error
	List(ctx context.Context) ([]*types.WatchlistItem, error)
}

type watchlistService struct {
	log  *logger.Logger
	repo repos.WatchlistRepo
}

func NewWatchlistService(log *logger.Logger, repo repos.WatchlistRepo) WatchlistService {
	return &watchlistService{
		log:  log.With("service", "WatchlistService"),
		repo: repo,
	}
}

func (ws *watchlistService) Add(ctx context.Context, ticker string) (*types.WatchlistItem, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required: %w", pkgerrors.ErrInvalidArgument)
	}
	return ws.repo.Add(ctx, nil, userID, ticker)
}

func (ws *watchlistService) Remove(ctx context.Context, ticker string) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	return ws.repo.Remove(ctx, nil, userID, strings.ToUpper(strings.TrimSpace(ticker)))
}

func (ws *watchlistService) List(ctx context.Context) ([]*types.WatchlistItem, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return ws.repo.ListByUser(ctx, nil, userID)
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, pkgerrors.ErrUnauthorized
	}
	return rd.UserID, nil
}
