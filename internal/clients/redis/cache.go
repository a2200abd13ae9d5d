package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/types"
	"github.com/finbrief/finbrief-backend/internal/utils"
)

// QuoteCache is a short-TTL cache in front of the quote provider. All cache
// failures are soft: a broken cache degrades to extra provider calls.
type QuoteCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewQuoteCache(log *logger.Logger) (*QuoteCache, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &QuoteCache{
		log: log.With("client", "QuoteCache"),
		rdb: rdb,
	}, nil
}

func (c *QuoteCache) Get(ctx context.Context, ticker string) (*types.QuoteData, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, quoteKey(ticker)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Quote cache read failed", "ticker", ticker, "error", err)
		}
		return nil, false
	}
	var quote types.QuoteData
	if err := json.Unmarshal(raw, &quote); err != nil {
		c.log.Warn("Quote cache entry corrupt", "ticker", ticker, "error", err)
		return nil, false
	}
	return &quote, true
}

func (c *QuoteCache) Set(ctx context.Context, ticker string, quote types.QuoteData, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(quote)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, quoteKey(ticker), raw, ttl).Err(); err != nil {
		c.log.Warn("Quote cache write failed", "ticker", ticker, "error", err)
	}
}

func (c *QuoteCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func quoteKey(ticker string) string {
	return "quote:" + strings.ToUpper(ticker)
}
