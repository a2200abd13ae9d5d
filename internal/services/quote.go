package services

import (
	"context"
	"strings"
	"time"

	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/types"
)

const quoteCacheTTL = 60 * time.Second

// QuoteProvider fetches price data from the quote vendor.
type QuoteProvider interface {
	Quote(ctx context.Context, ticker string) (types.QuoteData, error)
}

// QuoteCache is an optional read-through cache for quote payloads.
type QuoteCache interface {
	Get(ctx context.Context, ticker string) (*types.QuoteData, bool)
	Set(ctx context.Context, ticker string, quote types.QuoteData, ttl time.Duration)
}

type QuoteService interface {
	GetQuote(ctx context.Context, ticker string) (types.QuoteData, error)
}

type quoteService struct {
	log      *logger.Logger
	provider QuoteProvider
	cache    QuoteCache
}

// NewQuoteService builds the quote service. cache may be nil, in which case
// every call goes to the provider.
func NewQuoteService(log *logger.Logger, provider QuoteProvider, cache QuoteCache) QuoteService {
	return &quoteService{
		log:      log.With("service", "QuoteService"),
		provider: provider,
		cache:    cache,
	}
}

func (qs *quoteService) GetQuote(ctx context.Context, ticker string) (types.QuoteData, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if qs.cache != nil {
		if cached, ok := qs.cache.Get(ctx, ticker); ok {
			return *cached, nil
		}
	}

	quote, err := qs.provider.Quote(ctx, ticker)
	if err != nil {
		return types.QuoteData{}, err
	}

	if qs.cache != nil {
		qs.cache.Set(ctx, ticker, quote, quoteCacheTTL)
	}
	return quote, nil
}
