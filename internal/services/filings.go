package services

import (
	"context"
	"fmt"

	"github.com/finbrief/finbrief-backend/internal/clients/extractor"
	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/types"
)

// FilingSource resolves a ticker to its latest qualifying filing.
type FilingSource interface {
	LatestFiling(ctx context.Context, ticker string) (types.FilingReference, error)
}

// SectionExtractor pulls one section's plain text out of a filing document.
type SectionExtractor interface {
	ExtractSection(ctx context.Context, filingURL, item string) (string, error)
}

type FilingService interface {
	// Resolve returns the latest qualifying filing for the ticker. Fails
	// with pkg ErrNotFound for unknown tickers or when no recent filing of
	// the target form exists.
	Resolve(ctx context.Context, ticker string) (types.FilingReference, error)
	// ExtractAll fetches every section in the fixed section list. A failure
	// on one section is recorded as an error marker for that code and does
	// not abort the remaining sections.
	ExtractAll(ctx context.Context, ref types.FilingReference) (types.SectionSet, error)
}

type filingService struct {
	log       *logger.Logger
	source    FilingSource
	extractor SectionExtractor
}

func NewFilingService(log *logger.Logger, source FilingSource, sectionExtractor SectionExtractor) FilingService {
	return &filingService{
		log:       log.With("service", "FilingService"),
		source:    source,
		extractor: sectionExtractor,
	}
}

func (fs *filingService) Resolve(ctx context.Context, ticker string) (types.FilingReference, error) {
	return fs.source.LatestFiling(ctx, ticker)
}

func (fs *filingService) ExtractAll(ctx context.Context, ref types.FilingReference) (types.SectionSet, error) {
	sections := make(types.SectionSet, len(extractor.SectionCodes))
	for _, code := range extractor.SectionCodes {
		content, err := fs.extractor.ExtractSection(ctx, ref.FilingURL, code)
		if err != nil {
			fs.log.Warn("Section extraction failed", "ticker", ref.Ticker, "section", code, "error", err)
			sections[code] = fmt.Sprintf("Error: %v", err)
			continue
		}
		sections[code] = content
	}
	return sections, nil
}
