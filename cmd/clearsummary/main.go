package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/finbrief/finbrief-backend/internal/db"
	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/repos"
)

// Deletes stored summaries whose text carries the error sentinel, so the
// next details request regenerates them.
//
//	clearsummary TICKER              delete every error summary for the ticker
//	clearsummary TICKER 2026-05-12   delete only that filing date's record
func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s TICKER [FILING_DATE]\n", os.Args[0])
		os.Exit(2)
	}
	ticker := strings.ToUpper(strings.TrimSpace(os.Args[1]))

	var filingDate *time.Time
	if len(os.Args) == 3 {
		parsed, err := time.Parse("2006-01-02", os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid filing date %q: expected YYYY-MM-DD\n", os.Args[2])
			os.Exit(2)
		}
		filingDate = &parsed
	}

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	summaryRepo := repos.NewSummaryRepo(pg.DB(), log)

	records, err := summaryRepo.ListByTicker(ctx, nil, ticker)
	if err != nil {
		log.Error("Failed to list summaries", "ticker", ticker, "error", err)
		os.Exit(1)
	}
	for _, record := range records {
		state := "ready"
		switch {
		case record.IsGenerating():
			state = "generating"
		case record.IsError():
			state = "error"
		}
		fmt.Printf("%s  %s  %s\n", record.Ticker, record.FilingDate.Format("2006-01-02"), state)
	}

	deleted, err := summaryRepo.DeleteErrors(ctx, nil, ticker, filingDate)
	if err != nil {
		log.Error("Failed to delete error summaries", "ticker", ticker, "error", err)
		os.Exit(1)
	}
	fmt.Printf("deleted %d error summaries for %s\n", deleted, ticker)
}
