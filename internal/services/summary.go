package services

import (
	"context"
	"strings"
	"time"

	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/repos"
	"github.com/finbrief/finbrief-backend/internal/types"
)

// SummaryService exposes stored summaries for reading and the operator
// cleanup path. It never mutates lifecycle state: only the orchestrator
// moves a record between generating, ready and error.
type SummaryService interface {
	ListByTicker(ctx context.Context, ticker string) ([]*types.Summary, error)
	// ClearErrors deletes records whose text carries the error sentinel,
	// resetting their keys to absent so a later request regenerates them.
	ClearErrors(ctx context.Context, ticker string, filingDate *time.Time) (int64, error)
}

type summaryService struct {
	log  *logger.Logger
	repo repos.SummaryRepo
}

func NewSummaryService(log *logger.Logger, repo repos.SummaryRepo) SummaryService {
	return &summaryService{
		log:  log.With("service", "SummaryService"),
		repo: repo,
	}
}

func (ss *summaryService) ListByTicker(ctx context.Context, ticker string) ([]*types.Summary, error) {
	return ss.repo.ListByTicker(ctx, nil, strings.ToUpper(strings.TrimSpace(ticker)))
}

func (ss *summaryService) ClearErrors(ctx context.Context, ticker string, filingDate *time.Time) (int64, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	deleted, err := ss.repo.DeleteErrors(ctx, nil, ticker, filingDate)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		ss.log.Info("Cleared error summaries", "ticker", ticker, "deleted", deleted)
	}
	return deleted, nil
}
