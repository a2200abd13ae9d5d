package finnhub

import (
	"context"
	"fmt"
	"strings"

	finnhubsdk "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/types"
)

// Client fetches basic price data from Finnhub.
type Client struct {
	log *logger.Logger
	api *finnhubsdk.DefaultApiService
}

func NewClient(apiKey string, log *logger.Logger) *Client {
	cfg := finnhubsdk.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &Client{
		log: log.With("client", "FinnhubClient"),
		api: finnhubsdk.NewAPIClient(cfg).DefaultApi,
	}
}

// Quote assembles the price payload for one ticker. The quote call itself
// must succeed; profile and fundamentals enrich the payload and degrade to
// zero values when unavailable.
func (c *Client) Quote(ctx context.Context, ticker string) (types.QuoteData, error) {
	symbol := strings.ToUpper(ticker)

	quote, _, err := c.api.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return types.QuoteData{}, fmt.Errorf("quote %s: %w: %v", symbol, pkgerrors.ErrUpstream, err)
	}

	data := types.QuoteData{
		Price:         float64(quote.GetC()),
		Change:        float64(quote.GetD()),
		ChangePercent: float64(quote.GetDp()),
	}

	profile, _, err := c.api.CompanyProfile2(ctx).Symbol(symbol).Execute()
	if err != nil {
		c.log.Warn("Company profile lookup failed", "ticker", symbol, "error", err)
	} else {
		data.MarketCap = float64(profile.GetMarketCapitalization())
	}

	financials, _, err := c.api.CompanyBasicFinancials(ctx).Symbol(symbol).Metric("all").Execute()
	if err != nil {
		c.log.Warn("Basic financials lookup failed", "ticker", symbol, "error", err)
		return data, nil
	}
	metrics := financials.GetMetric()
	data.PERatio = metricFloat(metrics, "peBasicExclExtraTTM", "peTTM")
	data.EPS = metricFloat(metrics, "epsBasicExclExtraItemsTTM", "epsTTM")
	data.Volume = metricFloat(metrics, "10DayAverageTradingVolume")

	return data, nil
}

func metricFloat(metrics map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := metrics[key]; ok {
			if f, ok := v.(float64); ok {
				return f
			}
		}
	}
	return 0
}
