package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/utils"
)

// SectionCodes is the fixed set of 10-Q narrative sections worth
// summarizing for investors, in presentation order.
var SectionCodes = []string{
	"part1item2",  // Management's Discussion and Analysis
	"part1item1",  // Financial Statements
	"part2item1a", // Risk Factors
	"part1item3",  // Market Risk
	"part1item4",  // Controls and Procedures
}

const defaultExtractorURL = "https://api.sec-api.io/extractor"

// Client calls the section-extraction service, one request per section.
type Client struct {
	log        *logger.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(log *logger.Logger) *Client {
	clientLog := log.With("client", "ExtractorClient")
	return &Client{
		log:        clientLog,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    utils.GetEnv("EXTRACTOR_API_URL", defaultExtractorURL, log),
		apiKey:     utils.GetEnv("EXTRACTOR_API_KEY", "", log),
	}
}

// ExtractSection fetches one section of the filing document and returns its
// plain text. The service answers with either raw text or a JSON envelope;
// both shapes are normalized here so callers only ever see plain text.
func (c *Client) ExtractSection(ctx context.Context, filingURL, item string) (string, error) {
	params := url.Values{}
	params.Set("url", filingURL)
	params.Set("item", item)
	params.Set("type", "text")
	params.Set("token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extract section %s: %w: %v", item, pkgerrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extract section %s: %w: status %d", item, pkgerrors.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("extract section %s: %w: %v", item, pkgerrors.ErrUpstream, err)
	}
	return normalizeEnvelope(body), nil
}

// conventional keys under which the extraction service may wrap section
// text when it answers with JSON instead of plain text
var envelopeKeys = []string{"text", "content", "section"}

func normalizeEnvelope(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return string(body)
	}
	for _, key := range envelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return text
		}
	}
	return string(body)
}
