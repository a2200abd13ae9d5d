package app

import (
	"fmt"

	"github.com/finbrief/finbrief-backend/internal/clients/edgar"
	"github.com/finbrief/finbrief-backend/internal/clients/extractor"
	"github.com/finbrief/finbrief-backend/internal/clients/finnhub"
	"github.com/finbrief/finbrief-backend/internal/clients/openai"
	"github.com/finbrief/finbrief-backend/internal/clients/redis"
	"github.com/finbrief/finbrief-backend/internal/logger"
)

type Clients struct {
	Edgar      *edgar.Client
	Extractor  *extractor.Client
	OpenAI     openai.Client
	Finnhub    *finnhub.Client
	QuoteCache *redis.QuoteCache
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	completion, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	}

	if cfg.FinnhubAPIKey == "" {
		return Clients{}, fmt.Errorf("missing FINNHUB_API_KEY")
	}

	// the quote cache is optional infrastructure
	quoteCache, err := redis.NewQuoteCache(log)
	if err != nil {
		log.Warn("Quote cache unavailable, quotes will always hit the vendor", "error", err)
		quoteCache = nil
	}

	return Clients{
		Edgar:      edgar.NewClient(log),
		Extractor:  extractor.NewClient(log),
		OpenAI:     completion,
		Finnhub:    finnhub.NewClient(cfg.FinnhubAPIKey, log),
		QuoteCache: quoteCache,
	}, nil
}
