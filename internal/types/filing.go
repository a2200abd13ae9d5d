package types

import "time"

// FilingReference identifies one resolved filing. Immutable once resolved;
// lives only for the duration of a pipeline run. The URL+date pair is the
// authoritative identity: FilingDate feeds the (ticker, filing_date)
// deduplication key.
type FilingReference struct {
	Ticker     string
	FilingURL  string
	FilingDate time.Time
}

// SectionSet maps a section code to its extracted text, or to an
// "Error: ..." marker when extraction of that section failed. Consumers
// treat marker entries as absent content.
type SectionSet map[string]string
