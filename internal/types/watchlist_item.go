package types

import (
	"time"

	"github.com/google/uuid"
)

type WatchlistItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_ticker,priority:1" json:"user_id"`
	Ticker  string    `gorm:"not null;uniqueIndex:idx_watchlist_user_ticker,priority:2" json:"ticker"`
	AddedAt time.Time `gorm:"not null" json:"added_at"`
}

func (WatchlistItem) TableName() string {
	return "watchlist_item"
}
