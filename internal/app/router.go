package app

import (
	"github.com/gin-gonic/gin"

	"github.com/finbrief/finbrief-backend/internal/server"
)

func wireRouter(handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:      handlerset.Auth,
		AuthMiddleware:   middlewareset.Auth,
		StockHandler:     handlerset.Stock,
		WatchlistHandler: handlerset.Watchlist,
		SummariesHandler: handlerset.Summaries,
		SummarizeHandler: handlerset.Summarize,
	})
}
