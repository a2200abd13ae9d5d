package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SummaryGenerating is the placeholder text inserted when a generation
	// slot is claimed, before the real summary is known.
	SummaryGenerating = "generating"
	// SummaryErrorPrefix marks a summary whose pipeline gave up. The
	// clearsummary utility matches on this prefix.
	SummaryErrorPrefix = "Error generating summary"
)

// Summary is one generated filing summary, unique per (ticker, filing_date).
// SummaryText doubles as the lifecycle field: the SummaryGenerating sentinel,
// a SummaryErrorPrefix-tagged message, or the final summary.
type Summary struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Ticker      string    `gorm:"not null;uniqueIndex:idx_summary_ticker_date,priority:1" json:"ticker"`
	FilingDate  time.Time `gorm:"not null;uniqueIndex:idx_summary_ticker_date,priority:2" json:"filing_date"`
	SummaryText string    `gorm:"not null;type:text;column:summary_text" json:"summary_text"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Summary) TableName() string {
	return "summary"
}

func (s *Summary) IsGenerating() bool {
	return s.SummaryText == SummaryGenerating
}

func (s *Summary) IsError() bool {
	return strings.HasPrefix(s.SummaryText, SummaryErrorPrefix)
}
