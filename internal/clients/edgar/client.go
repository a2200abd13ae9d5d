package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/types"
	"github.com/finbrief/finbrief-backend/internal/utils"
)

// TargetFormType is the filing form the pipeline summarizes.
const TargetFormType = "10-Q"

const (
	defaultCIKLookupURL   = "https://www.sec.gov/include/ticker.txt"
	defaultSubmissionsURL = "https://data.sec.gov/submissions/CIK%s.json"
	defaultArchiveURL     = "https://www.sec.gov/Archives/edgar/data/%s/%s/%s"
)

// Client resolves tickers to CIK identifiers and lists EDGAR filings.
type Client struct {
	log            *logger.Logger
	httpClient     *http.Client
	cikLookupURL   string
	submissionsURL string
	archiveURL     string
	userAgent      string
}

func NewClient(log *logger.Logger) *Client {
	clientLog := log.With("client", "EdgarClient")
	return &Client{
		log:            clientLog,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		cikLookupURL:   utils.GetEnv("EDGAR_CIK_LOOKUP_URL", defaultCIKLookupURL, log),
		submissionsURL: utils.GetEnv("EDGAR_SUBMISSIONS_URL", defaultSubmissionsURL, log),
		archiveURL:     utils.GetEnv("EDGAR_ARCHIVE_URL", defaultArchiveURL, log),
		userAgent:      utils.GetEnv("EDGAR_USER_AGENT", "finbrief/1.0", log),
	}
}

// ResolveCIK maps a ticker symbol to its zero-padded 10-digit CIK. Returns
// pkg ErrNotFound for unknown tickers.
func (c *Client) ResolveCIK(ctx context.Context, ticker string) (string, error) {
	body, err := c.get(ctx, c.cikLookupURL)
	if err != nil {
		return "", fmt.Errorf("cik lookup: %w", err)
	}

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	for _, line := range strings.Split(string(body), "\n") {
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) != 2 {
			continue
		}
		if strings.ToUpper(parts[0]) == ticker {
			cik := parts[1]
			for len(cik) < 10 {
				cik = "0" + cik
			}
			return cik, nil
		}
	}
	return "", fmt.Errorf("no CIK registered for ticker %s: %w", ticker, pkgerrors.ErrNotFound)
}

// submissionsResponse mirrors the parts of the EDGAR submissions feed the
// pipeline needs. The recent filing attributes come as parallel arrays.
type submissionsResponse struct {
	Filings struct {
		Recent struct {
			Form            []string `json:"form"`
			AccessionNumber []string `json:"accessionNumber"`
			PrimaryDocument []string `json:"primaryDocument"`
			FilingDate      []string `json:"filingDate"`
		} `json:"recent"`
	} `json:"filings"`
}

// LatestFiling returns the most recent qualifying filing for the ticker.
// The recent list is ordered newest first, so the first matching form wins.
// Both the document URL and the filing date are required: the date is the
// deduplication key.
func (c *Client) LatestFiling(ctx context.Context, ticker string) (types.FilingReference, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	cik, err := c.ResolveCIK(ctx, ticker)
	if err != nil {
		return types.FilingReference{}, err
	}

	body, err := c.get(ctx, fmt.Sprintf(c.submissionsURL, cik))
	if err != nil {
		return types.FilingReference{}, fmt.Errorf("filings listing: %w", err)
	}

	var subs submissionsResponse
	if err := json.Unmarshal(body, &subs); err != nil {
		return types.FilingReference{}, fmt.Errorf("filings listing decode: %w: %v", pkgerrors.ErrUpstream, err)
	}

	recent := subs.Filings.Recent
	for i, form := range recent.Form {
		if form != TargetFormType {
			continue
		}
		if i >= len(recent.AccessionNumber) || i >= len(recent.PrimaryDocument) || i >= len(recent.FilingDate) {
			return types.FilingReference{}, fmt.Errorf("filings listing entry %d incomplete: %w", i, pkgerrors.ErrUpstream)
		}
		filingDate, err := time.Parse("2006-01-02", recent.FilingDate[i])
		if err != nil {
			return types.FilingReference{}, fmt.Errorf("filings listing entry %d date %q: %w", i, recent.FilingDate[i], pkgerrors.ErrUpstream)
		}
		accession := strings.ReplaceAll(recent.AccessionNumber[i], "-", "")
		return types.FilingReference{
			Ticker:     ticker,
			FilingURL:  fmt.Sprintf(c.archiveURL, strings.TrimLeft(cik, "0"), accession, recent.PrimaryDocument[i]),
			FilingDate: filingDate.UTC(),
		}, nil
	}

	return types.FilingReference{}, fmt.Errorf("no recent %s found for ticker %s: %w", TargetFormType, ticker, pkgerrors.ErrNotFound)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", pkgerrors.ErrUpstream, url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
