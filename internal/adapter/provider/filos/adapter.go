// Package filos integrates the Filos Travel accommodation feed.
// Filos rejects same-day arrivals, so requested dates may be shifted
// forward; the offers carry the dates that were actually priced.
package filos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the Filos provider.
const ProviderName = "Filos"

const defaultTimeout = 20 * time.Second

// Config holds the Filos connection settings.
type Config struct {
	Endpoint string
	APIKey   string
	Enabled  bool
}

// Adapter implements domain.HotelProvider for Filos.
type Adapter struct {
	cfg    Config
	client *http.Client
	clock  timeutil.Clock
	log    zerolog.Logger
}

// NewAdapter creates a Filos adapter.
func NewAdapter(cfg Config, log zerolog.Logger) *Adapter {
	return NewAdapterWithClock(cfg, log, timeutil.NewRealClock())
}

// NewAdapterWithClock creates a Filos adapter with an injected clock.
// Date clamping depends on "today", so tests need to control it.
func NewAdapterWithClock(cfg Config, log zerolog.Logger, clock timeutil.Clock) *Adapter {
	return &Adapter{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
		clock:  clock,
		log:    log.With().Str("provider", ProviderName).Logger(),
	}
}

// Name implements domain.HotelProvider.
func (a *Adapter) Name() string { return ProviderName }

// IsActive implements domain.HotelProvider.
func (a *Adapter) IsActive() bool { return a.cfg.Enabled && a.IsConfigured() }

// IsConfigured implements domain.HotelProvider.
func (a *Adapter) IsConfigured() bool {
	return a.cfg.Endpoint != "" && a.cfg.APIKey != ""
}

// Authenticate implements domain.HotelProvider. Filos authenticates with
// a static API key per request, so there is no session to establish.
func (a *Adapter) Authenticate(context.Context) error { return nil }

// feedQuery is the Filos search payload.
type feedQuery struct {
	APIKey   string `json:"apiKey"`
	GeoCode  string `json:"geoCode"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Adults   int    `json:"adults"`
	Children []int  `json:"children,omitempty"`
}

// feedReply wraps the Filos result set. The feed is loosely typed: some
// deployments answer a bare hotel array, others wrap it in an object
// under "hotels" or "results".
type feedReply struct {
	Hotels []hotelRow
	Error  string
}

func (r *feedReply) UnmarshalJSON(data []byte) error {
	var rows []hotelRow
	if err := json.Unmarshal(data, &rows); err == nil {
		r.Hotels = rows
		return nil
	}

	var wrapped struct {
		Hotels  []hotelRow `json:"hotels"`
		Results []hotelRow `json:"results"`
		Error   string     `json:"error"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	r.Hotels = wrapped.Hotels
	if len(r.Hotels) == 0 {
		r.Hotels = wrapped.Results
	}
	r.Error = wrapped.Error
	return nil
}

// Search implements domain.HotelProvider.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.NormalizedOffer, error) {
	geo := a.resolveGeo(req)
	if geo == "" {
		a.log.Debug().Str("destination", req.Destination).Msg("Destination not in Filos catalogue")
		return []domain.NormalizedOffer{}, nil
	}

	checkIn, checkOut := a.clampDates(req.CheckIn, req.CheckOut)
	if !checkIn.Equal(req.CheckIn) {
		a.log.Info().
			Time("requested", req.CheckIn).
			Time("accepted", checkIn).
			Msg("Check-in shifted forward, Filos rejects same-day arrivals")
	}

	payload, err := json.Marshal(feedQuery{
		APIKey:   a.cfg.APIKey,
		GeoCode:  geo,
		DateFrom: timeutil.FormatDate(checkIn),
		DateTo:   timeutil.FormatDate(checkOut),
		Adults:   req.Adults,
		Children: req.ChildrenAges,
	})
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint+"/feed/search", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("feed status %d", resp.StatusCode))
	}

	var reply feedReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode feed reply: %w", err))
	}
	if reply.Error != "" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("feed error: %s", reply.Error))
	}

	return normalize(reply.Hotels, checkIn, checkOut), nil
}

// clampDates shifts a past or same-day check-in to tomorrow while
// preserving the requested number of nights.
func (a *Adapter) clampDates(checkIn, checkOut time.Time) (time.Time, time.Time) {
	now := a.clock.Now()
	tomorrow := timeutil.StartOfDay(now.In(checkIn.Location())).AddDate(0, 0, 1)
	if checkIn.After(tomorrow) {
		return checkIn, checkOut
	}
	nights := domain.NightsBetween(checkIn, checkOut)
	return tomorrow, tomorrow.AddDate(0, 0, nights)
}

// resolveGeo picks the Filos geo code for the request, preferring an
// explicit supplier target over free-text resolution.
func (a *Adapter) resolveGeo(req domain.SearchRequest) string {
	if t := req.Target; t != nil && t.Provider == ProviderName && t.Type == domain.TargetCity {
		return t.ID
	}
	return resolveGeoCode(req.Destination)
}

var _ domain.HotelProvider = (*Adapter)(nil)
