package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/finbrief/finbrief-backend/internal/clients/openai"
	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/normalization"
)

const (
	// ChunkMaxWords bounds the words handed to a single completion
	// request, keeping per-request cost and latency predictable.
	ChunkMaxWords = 2200

	chunkMaxTokens   = 400
	combineMaxTokens = 500
)

const chunkPromptTemplate = "You are a financial analyst. This is part %d of a company's quarterly filing.\n" +
	"Summarize any financial results, EPS, revenue, forward guidance, and any quotes from the CEO/CFO.\n\n" +
	"Chunk:\n%s"

const combinePromptHeader = "You are a senior financial analyst. Given the following summaries of a quarterly filing, " +
	"write a final, concise summary with all key results (EPS, revenue, guidance), and the overall tone.\n\n"

type SummarizerService interface {
	// SummarizeChunk produces a partial summary of one chunk. index is
	// 1-based and only informs the prompt.
	SummarizeChunk(ctx context.Context, chunk string, index int) (string, error)
	// CombineSummaries merges partial summaries, in chunk order, into the
	// final narrative. Order matters: it conveys the filing's sequence.
	CombineSummaries(ctx context.Context, summaries []string) (string, error)
	// Summarize runs the full text pipeline: sanitize, chunk, summarize
	// each chunk, combine.
	Summarize(ctx context.Context, text, ticker string) (string, error)
}

type summarizerService struct {
	log        *logger.Logger
	completion openai.Client
}

func NewSummarizerService(log *logger.Logger, completion openai.Client) SummarizerService {
	return &summarizerService{
		log:        log.With("service", "SummarizerService"),
		completion: completion,
	}
}

func (ss *summarizerService) SummarizeChunk(ctx context.Context, chunk string, index int) (string, error) {
	prompt := fmt.Sprintf(chunkPromptTemplate, index, chunk)
	summary, err := ss.completion.Complete(ctx, prompt, chunkMaxTokens)
	if err != nil {
		return "", fmt.Errorf("summarize chunk %d: %w", index, err)
	}
	return summary, nil
}

func (ss *summarizerService) CombineSummaries(ctx context.Context, summaries []string) (string, error) {
	var b strings.Builder
	b.WriteString(combinePromptHeader)
	for i, summary := range summaries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Part %d:\n%s", i+1, summary)
	}

	final, err := ss.completion.Complete(ctx, b.String(), combineMaxTokens)
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}
	return final, nil
}

func (ss *summarizerService) Summarize(ctx context.Context, text, ticker string) (string, error) {
	cleaned := normalization.SanitizeText(text)
	chunks := normalization.SplitWords(cleaned, ChunkMaxWords)
	if len(chunks) == 0 {
		return "", fmt.Errorf("nothing to summarize for %s", ticker)
	}
	ss.log.Debug("Summarizing filing text", "ticker", ticker, "chunks", len(chunks))

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		partial, err := ss.SummarizeChunk(ctx, chunk, i+1)
		if err != nil {
			return "", err
		}
		partials = append(partials, partial)
	}

	return ss.CombineSummaries(ctx, partials)
}
