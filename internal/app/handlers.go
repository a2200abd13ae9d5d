package app

import (
	"github.com/finbrief/finbrief-backend/internal/handlers"
	"github.com/finbrief/finbrief-backend/internal/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Stock     *handlers.StockHandler
	Watchlist *handlers.WatchlistHandler
	Summaries *handlers.SummariesHandler
	Summarize *handlers.SummarizeHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(serviceset.Auth),
		Stock:     handlers.NewStockHandler(serviceset.Details),
		Watchlist: handlers.NewWatchlistHandler(serviceset.Watchlist),
		Summaries: handlers.NewSummariesHandler(serviceset.Summary),
		Summarize: handlers.NewSummarizeHandler(serviceset.Summarizer),
	}
}
