package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finbrief/finbrief-backend/internal/handlers"
	"github.com/finbrief/finbrief-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	StockHandler     *handlers.StockHandler
	WatchlistHandler *handlers.WatchlistHandler
	SummariesHandler *handlers.SummariesHandler
	SummarizeHandler *handlers.SummarizeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// Stock details
	protected.GET("/stock/:ticker", cfg.StockHandler.GetDetails)
	// Watchlist
	protected.GET("/watchlist", cfg.WatchlistHandler.List)
	protected.POST("/watchlist/add", cfg.WatchlistHandler.Add)
	protected.DELETE("/watchlist/:ticker", cfg.WatchlistHandler.Remove)
	// Summaries
	protected.GET("/summaries/:ticker", cfg.SummariesHandler.List)
	protected.POST("/summarize", cfg.SummarizeHandler.Summarize)

	return router
}
