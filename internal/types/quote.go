package types

// QuoteData is the basic price payload for one ticker.
type QuoteData struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     float64 `json:"marketCap"`
	PERatio       float64 `json:"peRatio"`
	EPS           float64 `json:"eps"`
	Volume        float64 `json:"volume"`
}

// StockDetails is the details-endpoint payload: price data plus the current
// summary text for the latest filing, whatever lifecycle state it is in.
type StockDetails struct {
	Ticker     string    `json:"ticker"`
	Quote      QuoteData `json:"quote"`
	FilingDate string    `json:"filing_date"`
	Summary    string    `json:"summary"`
}
