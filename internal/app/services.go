package app

import (
	"gorm.io/gorm"

	"github.com/finbrief/finbrief-backend/internal/jobs"
	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Quote      services.QuoteService
	Filing     services.FilingService
	Summarizer services.SummarizerService
	Details    services.StockDetailsService
	Watchlist  services.WatchlistService
	Summary    services.SummaryService

	Runner *jobs.Runner
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	runner := jobs.NewRunner(log)

	auth := services.NewAuthService(
		db,
		log,
		reposet.User,
		reposet.UserToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	var quoteCache services.QuoteCache
	if clients.QuoteCache != nil {
		quoteCache = clients.QuoteCache
	}
	quote := services.NewQuoteService(log, clients.Finnhub, quoteCache)

	filing := services.NewFilingService(log, clients.Edgar, clients.Extractor)
	summarizer := services.NewSummarizerService(log, clients.OpenAI)
	details := services.NewStockDetailsService(log, quote, filing, summarizer, reposet.Summary, runner)

	return Services{
		Auth:       auth,
		Quote:      quote,
		Filing:     filing,
		Summarizer: summarizer,
		Details:    details,
		Watchlist:  services.NewWatchlistService(log, reposet.Watchlist),
		Summary:    services.NewSummaryService(log, reposet.Summary),
		Runner:     runner,
	}
}
