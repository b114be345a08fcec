// Package usecase contains the supplier orchestration layer: the provider
// manager fan-out, the cross-supplier deduplicator and the multi-room
// allocation engine.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/alert"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/cache"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/history"
)

// historyWriteTimeout bounds the asynchronous analytics insert.
const historyWriteTimeout = 5 * time.Second

// FanOutResult is the outcome of one SearchAll fan-out.
type FanOutResult struct {
	// Offers is the flat union of every supplier's normalized offers
	Offers []domain.NormalizedOffer

	// Queried lists the suppliers that took part
	Queried []string

	// Failed lists the suppliers whose calls failed
	Failed []string

	// CacheHits counts suppliers answered from the offer cache
	CacheHits int
}

// ProviderManager coordinates the registered supplier adapters: parallel
// fan-out with per-supplier caching, isolated failure handling, alerting
// and best-effort search-history recording.
type ProviderManager struct {
	registry *domain.ProviderRegistry
	cache    cache.Store
	alerts   *alert.Bus
	history  history.Recorder
	log      zerolog.Logger
}

// NewProviderManager creates a manager. A nil history recorder falls back
// to the discarding sink.
func NewProviderManager(registry *domain.ProviderRegistry, store cache.Store, alerts *alert.Bus, recorder history.Recorder, log zerolog.Logger) *ProviderManager {
	if recorder == nil {
		recorder = history.Noop{}
	}
	return &ProviderManager{
		registry: registry,
		cache:    store,
		alerts:   alerts,
		history:  recorder,
		log:      log.With().Str("component", "provider_manager").Logger(),
	}
}

// Registry exposes the underlying registry for registration at startup.
func (m *ProviderManager) Registry() *domain.ProviderRegistry {
	return m.registry
}

// providerResult holds the outcome of one supplier query.
type providerResult struct {
	Provider string
	Offers   []domain.NormalizedOffer
	Err      error
	Cached   bool
	Duration time.Duration
}

// SearchAll queries every active supplier in parallel and returns the flat
// union of their offers. Individual supplier failures are isolated: they
// are logged and alerted, never abort the other suppliers. Returns
// domain.ErrNoProviders only when no supplier is registered and active.
func (m *ProviderManager) SearchAll(ctx context.Context, req domain.SearchRequest) (FanOutResult, error) {
	var result FanOutResult

	if err := req.Validate(); err != nil {
		return result, err
	}
	if req.Nationality == "" {
		req.Nationality = domain.DefaultNationality
	}

	providers := m.registry.Active()
	if len(providers) == 0 {
		return result, domain.ErrNoProviders
	}

	resultsChan := make(chan providerResult, len(providers))
	for _, provider := range providers {
		go m.queryProvider(ctx, provider, req, resultsChan)
	}

	for range providers {
		r := <-resultsChan
		result.Queried = append(result.Queried, r.Provider)
		if r.Cached {
			result.CacheHits++
		}

		if r.Err != nil {
			result.Failed = append(result.Failed, r.Provider)
			m.log.Error().
				Err(r.Err).
				Str("provider", r.Provider).
				Dur("duration", r.Duration).
				Msg("Provider search failed")
			m.alerts.Critical(r.Provider,
				fmt.Sprintf("%s API Problem", r.Provider),
				fmt.Sprintf("Search failed: %v", r.Err))
			continue
		}

		m.log.Debug().
			Str("provider", r.Provider).
			Int("offers", len(r.Offers)).
			Bool("cached", r.Cached).
			Dur("duration", r.Duration).
			Msg("Provider search completed")
		result.Offers = append(result.Offers, r.Offers...)
	}

	m.recordHistory(req, result)
	return result, nil
}

// SearchProvider queries one supplier by name. Unlike the fan-out, an
// explicitly named supplier produces hard errors: unknown names return
// domain.ErrProviderNotFound and disabled ones domain.ErrProviderInactive.
func (m *ProviderManager) SearchProvider(ctx context.Context, name string, req domain.SearchRequest) ([]domain.NormalizedOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Nationality == "" {
		req.Nationality = domain.DefaultNationality
	}

	provider := m.registry.Get(name)
	if provider == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, name)
	}
	if !provider.IsActive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderInactive, name)
	}

	resultsChan := make(chan providerResult, 1)
	m.queryProvider(ctx, provider, req, resultsChan)
	r := <-resultsChan
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Offers, nil
}

// Stats reports the operational state of every registered supplier.
func (m *ProviderManager) Stats() domain.ProviderStats {
	stats := domain.ProviderStats{}
	for _, p := range m.registry.GetAll() {
		status := domain.ProviderStatus{
			Name:       p.Name(),
			Active:     p.IsActive(),
			Configured: p.IsConfigured(),
		}
		stats.Total++
		if status.Active {
			stats.Active++
		}
		if status.Configured {
			stats.Configured++
		}
		stats.Providers = append(stats.Providers, status)
	}
	return stats
}

// queryProvider runs one supplier call with cache lookup and panic
// recovery so a misbehaving adapter cannot crash the whole search.
func (m *ProviderManager) queryProvider(ctx context.Context, provider domain.HotelProvider, req domain.SearchRequest, results chan<- providerResult) {
	start := time.Now()
	name := provider.Name()

	defer func() {
		if r := recover(); r != nil {
			results <- providerResult{
				Provider: name,
				Err:      fmt.Errorf("provider panic: %v", r),
				Duration: time.Since(start),
			}
		}
	}()

	key := cache.Key(name, req)
	if offers, ok := m.cache.Get(ctx, key); ok {
		results <- providerResult{
			Provider: name,
			Offers:   offers,
			Cached:   true,
			Duration: time.Since(start),
		}
		return
	}

	if err := provider.Authenticate(ctx); err != nil {
		results <- providerResult{Provider: name, Err: err, Duration: time.Since(start)}
		return
	}

	offers, err := provider.Search(ctx, req)
	if err != nil {
		results <- providerResult{Provider: name, Err: err, Duration: time.Since(start)}
		return
	}

	// Only non-empty results are cached: an empty answer may be a
	// transient supplier hiccup and must stay re-queryable.
	if len(offers) > 0 {
		m.cache.Set(ctx, key, offers)
	}

	results <- providerResult{
		Provider: name,
		Offers:   offers,
		Duration: time.Since(start),
	}
}

// recordHistory writes one analytics row asynchronously. Failures are
// logged and never surface to the caller.
func (m *ProviderManager) recordHistory(req domain.SearchRequest, result FanOutResult) {
	entry := history.Entry{
		SearchType:        "hotel",
		SearchParams:      req,
		ResultsCount:      len(result.Offers),
		ProvidersSearched: result.Queried,
		CreatedAt:         time.Now(),
	}
	for _, o := range result.Offers {
		if entry.BestPrice == 0 || o.Price < entry.BestPrice {
			entry.BestPrice = o.Price
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()
		if err := m.history.LogSearch(ctx, entry); err != nil {
			m.log.Warn().Err(err).Msg("Search history write failed")
		}
	}()
}
