package domain

import (
	"fmt"
	"time"
)

// SearchMetadata describes how a multi-room search was executed.
type SearchMetadata struct {
	// SearchID correlates the response with logs and analytics
	SearchID string `json:"search_id"`

	// DurationMs is the wall-clock time of the whole pipeline
	DurationMs int64 `json:"duration_ms"`

	// ProvidersQueried lists every supplier that took part
	ProvidersQueried []string `json:"providers_queried"`

	// ProvidersFailed lists suppliers whose calls failed (isolated failures)
	ProvidersFailed []string `json:"providers_failed"`

	// Configurations is the number of unique room configurations dispatched
	Configurations int `json:"configurations"`

	// FallbackUsed is true when the flexible-date fallback produced the result
	FallbackUsed bool `json:"fallback_used"`

	// AcceptedCheckIn/AcceptedCheckOut are the dates the result set is priced
	// for; they equal the requested dates unless the fallback shifted them
	AcceptedCheckIn  time.Time `json:"accepted_check_in"`
	AcceptedCheckOut time.Time `json:"accepted_check_out"`
}

// TimelineEntry records the outcome of one tried date window during the
// flexible-date fallback, feeding the availability calendar heatmap.
type TimelineEntry struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Nights   int       `json:"nights"`

	// Available is true when at least one hotel qualified for this window
	Available bool `json:"available"`

	// HotelCount is the number of qualifying hotels
	HotelCount int `json:"hotel_count"`

	// MinPrice is the cheapest qualifying total price, 0 when none qualified
	MinPrice float64 `json:"min_price"`
}

// TimelineKey builds the map key for one tried date window.
func TimelineKey(checkIn time.Time, nights int) string {
	return fmt.Sprintf("%s/%dn", checkIn.Format("2006-01-02"), nights)
}

// MultiSearchResponse is the final result of the multi-room pipeline.
type MultiSearchResponse struct {
	// Hotels qualify for every requested room allocation, cheapest first
	Hotels []MergedHotel `json:"hotels"`

	// Metadata describes the execution
	Metadata SearchMetadata `json:"metadata"`

	// Timeline holds one entry per date window tried by the flexible-date
	// fallback, keyed by TimelineKey. Empty when the fallback never ran.
	Timeline map[string]TimelineEntry `json:"timeline,omitempty"`
}

// ProviderStatus is one supplier's operational state.
type ProviderStatus struct {
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	Configured bool   `json:"configured"`
}

// ProviderStats is the introspection payload for operational dashboards.
type ProviderStats struct {
	Total      int              `json:"total"`
	Active     int              `json:"active"`
	Configured int              `json:"configured"`
	Providers  []ProviderStatus `json:"providers"`
}
