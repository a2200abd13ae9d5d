package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/types"
)

type WatchlistRepo interface {
	Add(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ticker string) (*types.WatchlistItem, error)
	Remove(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ticker string) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WatchlistItem, error)
}

type watchlistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWatchlistRepo(db *gorm.DB, baseLog *logger.Logger) WatchlistRepo {
	return &watchlistRepo{db: db, log: baseLog.With("repo", "WatchlistRepo")}
}

func (wr *watchlistRepo) Add(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ticker string) (*types.WatchlistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	item := types.WatchlistItem{
		ID:      uuid.New(),
		UserID:  userID,
		Ticker:  ticker,
		AddedAt: time.Now().UTC(),
	}
	err := transaction.WithContext(ctx).Create(&item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("watchlist entry %s: %w", ticker, pkgerrors.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (wr *watchlistRepo) Remove(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ticker string) error {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	res := transaction.WithContext(ctx).
		Where("user_id = ? AND ticker = ?", userID, ticker).
		Delete(&types.WatchlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("watchlist entry %s: %w", ticker, pkgerrors.ErrNotFound)
	}
	return nil
}

func (wr *watchlistRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WatchlistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.WatchlistItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
