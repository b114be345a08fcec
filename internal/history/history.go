// Package history persists one analytics record per aggregate search.
// Recording is best effort: a broken sink is logged, never allowed to
// block or fail the search that produced the record.
package history

import (
	"context"
	"time"
)

// Entry is one recorded search.
type Entry struct {
	// SearchType distinguishes hotel searches from future verticals
	SearchType string `json:"search_type"`

	// SearchParams is the JSON-encodable request summary
	SearchParams any `json:"search_params"`

	// ResultsCount is the number of offers found across all suppliers
	ResultsCount int `json:"results_count"`

	// BestPrice is the minimum price found, 0 when nothing was found
	BestPrice float64 `json:"best_price,omitempty"`

	// ProvidersSearched lists the suppliers actually queried
	ProvidersSearched []string `json:"providers_searched"`

	// CreatedAt is when the search completed
	CreatedAt time.Time `json:"created_at"`
}

// Recorder is the search-history sink contract.
type Recorder interface {
	// LogSearch persists one entry. Implementations must be safe for
	// concurrent use and should bound their own write latency.
	LogSearch(ctx context.Context, entry Entry) error
}

// Noop discards every entry. Used when no sink is configured.
type Noop struct{}

// LogSearch implements Recorder.
func (Noop) LogSearch(context.Context, Entry) error { return nil }

// Ensure Noop implements Recorder at compile time.
var _ Recorder = Noop{}
