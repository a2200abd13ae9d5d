package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/types"
)

// SummaryRepo owns persistence for summary lifecycle records. All mutations
// go through CreatePlaceholder and UpdateText; the orchestrator owns the
// transitions between lifecycle states.
type SummaryRepo interface {
	// Find returns (nil, nil) when no record exists; absence is a normal
	// outcome, not an error.
	Find(ctx context.Context, tx *gorm.DB, ticker string, filingDate time.Time) (*types.Summary, error)
	// CreatePlaceholder inserts the sentinel row claiming the generation
	// slot for (ticker, filingDate). Returns pkg ErrConflict if a record
	// already exists for that key.
	CreatePlaceholder(ctx context.Context, tx *gorm.DB, ticker string, filingDate time.Time) (*types.Summary, error)
	// UpdateText overwrites summary_text on an existing record. Returns pkg
	// ErrNotFound if no record exists for the key, which signals a lost
	// placeholder.
	UpdateText(ctx context.Context, tx *gorm.DB, ticker string, filingDate time.Time, text string) error
	ListByTicker(ctx context.Context, tx *gorm.DB, ticker string) ([]*types.Summary, error)
	// DeleteErrors removes records whose summary_text carries the error
	// sentinel prefix, optionally narrowed to one filing date. Returns the
	// number of rows removed.
	DeleteErrors(ctx context.Context, tx *gorm.DB, ticker string, filingDate *time.Time) (int64, error)
}

type summaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSummaryRepo(db *gorm.DB, baseLog *logger.Logger) SummaryRepo {
	return &summaryRepo{db: db, log: baseLog.With("repo", "SummaryRepo")}
}

func (sr *summaryRepo) Find(ctx context.Context, tx *gorm.DB, ticker string, filingDate time.Time) (*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.Summary
	err := transaction.WithContext(ctx).
		Where("ticker = ? AND filing_date = ?", ticker, filingDate).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *summaryRepo) CreatePlaceholder(ctx context.Context, tx *gorm.DB, ticker string, filingDate time.Time) (*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	record := types.Summary{
		ID:          uuid.New(),
		Ticker:      ticker,
		FilingDate:  filingDate,
		SummaryText: types.SummaryGenerating,
		CreatedAt:   time.Now().UTC(),
	}
	err := transaction.WithContext(ctx).Create(&record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("summary for %s/%s: %w", ticker, filingDate.Format("2006-01-02"), pkgerrors.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (sr *summaryRepo) UpdateText(ctx context.Context, tx *gorm.DB, ticker string, filingDate time.Time, text string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Summary{}).
		Where("ticker = ? AND filing_date = ?", ticker, filingDate).
		Update("summary_text", text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("summary for %s/%s: %w", ticker, filingDate.Format("2006-01-02"), pkgerrors.ErrNotFound)
	}
	return nil
}

func (sr *summaryRepo) ListByTicker(ctx context.Context, tx *gorm.DB, ticker string) ([]*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Summary
	if err := transaction.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("filing_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *summaryRepo) DeleteErrors(ctx context.Context, tx *gorm.DB, ticker string, filingDate *time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	query := transaction.WithContext(ctx).
		Where("ticker = ? AND summary_text LIKE ?", ticker, types.SummaryErrorPrefix+"%")
	if filingDate != nil {
		query = query.Where("filing_date = ?", *filingDate)
	}
	res := query.Delete(&types.Summary{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
