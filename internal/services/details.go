package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finbrief/finbrief-backend/internal/clients/extractor"
	"github.com/finbrief/finbrief-backend/internal/jobs"
	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/repos"
	"github.com/finbrief/finbrief-backend/internal/types"
)

// StockDetailsService serves the details endpoint and owns the summary
// lifecycle state machine: absent -> generating -> {ready | error} per
// (ticker, filing_date) key. All persistence goes through the summary repo;
// no other writer touches a record between placeholder and completion.
type StockDetailsService interface {
	GetDetails(ctx context.Context, ticker string) (types.StockDetails, error)
}

type stockDetailsService struct {
	log         *logger.Logger
	quotes      QuoteService
	filings     FilingService
	summarizer  SummarizerService
	summaryRepo repos.SummaryRepo
	runner      *jobs.Runner
}

func NewStockDetailsService(
	log *logger.Logger,
	quotes QuoteService,
	filings FilingService,
	summarizer SummarizerService,
	summaryRepo repos.SummaryRepo,
	runner *jobs.Runner,
) StockDetailsService {
	return &stockDetailsService{
		log:         log.With("service", "StockDetailsService"),
		quotes:      quotes,
		filings:     filings,
		summarizer:  summarizer,
		summaryRepo: summaryRepo,
		runner:      runner,
	}
}

func (sds *stockDetailsService) GetDetails(ctx context.Context, ticker string) (types.StockDetails, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	ref, err := sds.filings.Resolve(ctx, ticker)
	if err != nil {
		return types.StockDetails{}, fmt.Errorf("resolve filing for %s: %w", ticker, err)
	}

	// a quote failure must not take down the whole payload
	quote, err := sds.quotes.GetQuote(ctx, ticker)
	if err != nil {
		sds.log.Warn("Quote lookup failed", "ticker", ticker, "error", err)
		quote = types.QuoteData{}
	}

	summaryText, err := sds.ensureSummary(ctx, ref)
	if err != nil {
		return types.StockDetails{}, err
	}

	return types.StockDetails{
		Ticker:     ticker,
		Quote:      quote,
		FilingDate: ref.FilingDate.Format("2006-01-02"),
		Summary:    summaryText,
	}, nil
}

// ensureSummary returns the stored summary text for the filing key, claiming
// the generation slot and scheduling the pipeline when the key is absent.
// Any existing record, in any state, is returned verbatim and never
// re-triggers generation.
func (sds *stockDetailsService) ensureSummary(ctx context.Context, ref types.FilingReference) (string, error) {
	record, err := sds.summaryRepo.Find(ctx, nil, ref.Ticker, ref.FilingDate)
	if err != nil {
		return "", fmt.Errorf("summary lookup: %w", err)
	}
	if record != nil {
		return record.SummaryText, nil
	}

	_, err = sds.summaryRepo.CreatePlaceholder(ctx, nil, ref.Ticker, ref.FilingDate)
	if errors.Is(err, pkgerrors.ErrConflict) {
		// another request won the race; read whatever state it left
		record, findErr := sds.summaryRepo.Find(ctx, nil, ref.Ticker, ref.FilingDate)
		if findErr == nil && record != nil {
			return record.SummaryText, nil
		}
		return types.SummaryGenerating, nil
	}
	if err != nil {
		return "", fmt.Errorf("claim summary slot: %w", err)
	}

	sds.log.Info("Scheduling summary generation", "ticker", ref.Ticker, "filing_date", ref.FilingDate.Format("2006-01-02"))
	sds.runner.Go("summary:"+ref.Ticker, func(taskCtx context.Context) error {
		return sds.generate(taskCtx, ref)
	})

	return types.SummaryGenerating, nil
}

// generate runs the handed-off pipeline. The deferred finalizer performs the
// generating -> {ready | error} transition no matter how the pipeline
// exits, including panics: a key must never stay "generating" because of a
// fault inside the pipeline.
func (sds *stockDetailsService) generate(ctx context.Context, ref types.FilingReference) (err error) {
	var finalText string
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
		if err != nil {
			finalText = fmt.Sprintf("%s: %v", types.SummaryErrorPrefix, err)
		}
		if updateErr := sds.summaryRepo.UpdateText(ctx, nil, ref.Ticker, ref.FilingDate, finalText); updateErr != nil {
			sds.log.Error("Failed to store summary result", "ticker", ref.Ticker, "error", updateErr)
		}
	}()

	sections, err := sds.filings.ExtractAll(ctx, ref)
	if err != nil {
		return fmt.Errorf("extract sections: %w", err)
	}

	combined := combineSections(sections)
	if combined == "" {
		return fmt.Errorf("no sections extracted: %w", pkgerrors.ErrUpstream)
	}

	finalText, err = sds.summarizer.Summarize(ctx, combined, ref.Ticker)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	return nil
}

// combineSections joins successfully extracted sections, tagged by code, in
// the fixed section order. Error-marker entries are dropped.
func combineSections(sections types.SectionSet) string {
	var parts []string
	for _, code := range extractor.SectionCodes {
		content, ok := sections[code]
		if !ok || strings.HasPrefix(content, "Error:") {
			continue
		}
		parts = append(parts, fmt.Sprintf("## Section: %s\n%s", code, content))
	}
	return strings.Join(parts, "\n\n")
}
