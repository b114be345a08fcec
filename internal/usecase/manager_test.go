package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/alert"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/cache"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/history"
	"github.com/hotel-search/hotel-search-and-aggregation-system/test/mock"
)

// chanRecorder forwards history entries to a channel so tests can wait
// for the asynchronous write.
type chanRecorder struct {
	entries chan history.Entry
}

func newChanRecorder() *chanRecorder {
	return &chanRecorder{entries: make(chan history.Entry, 8)}
}

func (r *chanRecorder) LogSearch(_ context.Context, entry history.Entry) error {
	r.entries <- entry
	return nil
}

func validRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Destination: "Bansko",
		CheckIn:     time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		Adults:      2,
	}
}

func newManager(t *testing.T, providers ...domain.HotelProvider) (*ProviderManager, *alert.Bus) {
	t.Helper()
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	bus := alert.NewBus(zerolog.Nop())
	t.Cleanup(bus.Close)
	return NewProviderManager(registry, cache.NewMemory(cache.DefaultTTL), bus, nil, zerolog.Nop()), bus
}

// TestProviderManager_SearchAll tests the parallel fan-out.
func TestProviderManager_SearchAll(t *testing.T) {
	solvex := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 2))
	filos := mock.NewProvider("Filos").WithOffers(mock.SampleOffers("Filos", 3))
	manager, _ := newManager(t, solvex, filos)

	result, err := manager.SearchAll(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Len(t, result.Offers, 5, "fan-out returns the flat union")
	assert.ElementsMatch(t, []string{"Solvex", "Filos"}, result.Queried)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 1, solvex.AuthCount(), "providers are authenticated before search")
}

// TestProviderManager_SearchAll_PartialFailure tests failure isolation:
// one broken supplier never hides the others' results.
func TestProviderManager_SearchAll_PartialFailure(t *testing.T) {
	solvex := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 2))
	broken := mock.NewProvider("OpenGreece").WithError(
		domain.NewRetryableProviderError("OpenGreece", errors.New("connection refused")))
	manager, bus := newManager(t, solvex, broken)

	var mu sync.Mutex
	var alerts []alert.Alert
	bus.Subscribe("capture", alert.SubscriberFunc(func(a alert.Alert) {
		mu.Lock()
		alerts = append(alerts, a)
		mu.Unlock()
	}), 8)

	result, err := manager.SearchAll(context.Background(), validRequest())
	require.NoError(t, err, "a single failed supplier is not a search failure")

	assert.Len(t, result.Offers, 2)
	assert.Equal(t, []string{"OpenGreece"}, result.Failed)

	bus.Close()
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, alerts, 1, "each failed supplier produces one critical alert")
	assert.Equal(t, alert.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "OpenGreece", alerts[0].Provider)
}

// TestProviderManager_SearchAll_AllFailed tests that even a total supplier
// wipe-out returns an empty union rather than an error.
func TestProviderManager_SearchAll_AllFailed(t *testing.T) {
	a := mock.NewProvider("Solvex").WithError(errors.New("down"))
	b := mock.NewProvider("Filos").WithError(errors.New("also down"))
	manager, _ := newManager(t, a, b)

	result, err := manager.SearchAll(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, result.Offers)
	assert.Len(t, result.Failed, 2)
}

// TestProviderManager_SearchAll_Cache tests the per-supplier offer cache.
func TestProviderManager_SearchAll_Cache(t *testing.T) {
	t.Run("identical request is served from cache", func(t *testing.T) {
		solvex := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 2))
		manager, _ := newManager(t, solvex)

		first, err := manager.SearchAll(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 0, first.CacheHits)

		second, err := manager.SearchAll(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, second.CacheHits)
		assert.Equal(t, first.Offers, second.Offers)
		assert.Equal(t, 1, solvex.CallCount(), "cached supplier is not called again")
	})

	t.Run("different request misses the cache", func(t *testing.T) {
		solvex := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 2))
		manager, _ := newManager(t, solvex)

		_, err := manager.SearchAll(context.Background(), validRequest())
		require.NoError(t, err)

		other := validRequest()
		other.Adults = 3
		_, err = manager.SearchAll(context.Background(), other)
		require.NoError(t, err)
		assert.Equal(t, 2, solvex.CallCount())
	})

	t.Run("empty results are never cached", func(t *testing.T) {
		solvex := mock.NewProvider("Solvex").WithOffers(nil)
		manager, _ := newManager(t, solvex)

		_, err := manager.SearchAll(context.Background(), validRequest())
		require.NoError(t, err)
		_, err = manager.SearchAll(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 2, solvex.CallCount(), "empty answers must stay re-queryable")
	})
}

// TestProviderManager_SearchAll_NoProviders tests the no-supplier error.
func TestProviderManager_SearchAll_NoProviders(t *testing.T) {
	t.Run("empty registry", func(t *testing.T) {
		manager, _ := newManager(t)
		_, err := manager.SearchAll(context.Background(), validRequest())
		assert.ErrorIs(t, err, domain.ErrNoProviders)
	})

	t.Run("only inactive providers", func(t *testing.T) {
		manager, _ := newManager(t, mock.NewProvider("Solvex").Inactive())
		_, err := manager.SearchAll(context.Background(), validRequest())
		assert.ErrorIs(t, err, domain.ErrNoProviders)
	})
}

// TestProviderManager_SearchAll_InvalidRequest tests input rejection
// before any supplier is contacted.
func TestProviderManager_SearchAll_InvalidRequest(t *testing.T) {
	solvex := mock.NewProvider("Solvex")
	manager, _ := newManager(t, solvex)

	req := validRequest()
	req.Adults = 0

	_, err := manager.SearchAll(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Equal(t, 0, solvex.CallCount(), "invalid requests never reach suppliers")
}

// TestProviderManager_SearchAll_AuthFailure tests that a failed handshake
// is isolated like any other provider failure.
func TestProviderManager_SearchAll_AuthFailure(t *testing.T) {
	good := mock.NewProvider("Filos").WithOffers(mock.SampleOffers("Filos", 1))
	bad := mock.NewProvider("Solvex").WithAuthError(
		domain.NewAuthError("Solvex", errors.New("bad credentials")))
	manager, _ := newManager(t, good, bad)

	result, err := manager.SearchAll(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, result.Offers, 1)
	assert.Equal(t, []string{"Solvex"}, result.Failed)
	assert.Equal(t, 0, bad.CallCount(), "search is skipped when the handshake fails")
}

// TestProviderManager_SearchAll_DefaultNationality tests nationality defaulting.
func TestProviderManager_SearchAll_DefaultNationality(t *testing.T) {
	solvex := mock.NewProvider("Solvex")
	manager, _ := newManager(t, solvex)

	_, err := manager.SearchAll(context.Background(), validRequest())
	require.NoError(t, err)

	reqs := solvex.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.DefaultNationality, reqs[0].Nationality)
}

// TestProviderManager_SearchAll_History tests the best-effort analytics row.
func TestProviderManager_SearchAll_History(t *testing.T) {
	registry := domain.NewProviderRegistry()
	registry.Register(mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 3)))
	bus := alert.NewBus(zerolog.Nop())
	t.Cleanup(bus.Close)

	recorder := newChanRecorder()
	manager := NewProviderManager(registry, cache.NewMemory(cache.DefaultTTL), bus, recorder, zerolog.Nop())

	_, err := manager.SearchAll(context.Background(), validRequest())
	require.NoError(t, err)

	select {
	case entry := <-recorder.entries:
		assert.Equal(t, "hotel", entry.SearchType)
		assert.Equal(t, 3, entry.ResultsCount)
		assert.Equal(t, 400.0, entry.BestPrice)
		assert.Equal(t, []string{"Solvex"}, entry.ProvidersSearched)
	case <-time.After(2 * time.Second):
		t.Fatal("history entry was never recorded")
	}
}

// TestProviderManager_SearchProvider tests explicit single-supplier searches.
func TestProviderManager_SearchProvider(t *testing.T) {
	solvex := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 2))
	inactive := mock.NewProvider("Filos").Inactive()
	manager, _ := newManager(t, solvex, inactive)

	t.Run("success", func(t *testing.T) {
		offers, err := manager.SearchProvider(context.Background(), "Solvex", validRequest())
		require.NoError(t, err)
		assert.Len(t, offers, 2)
	})

	t.Run("unknown provider is a hard error", func(t *testing.T) {
		_, err := manager.SearchProvider(context.Background(), "Nonexistent", validRequest())
		assert.ErrorIs(t, err, domain.ErrProviderNotFound)
	})

	t.Run("inactive provider is a hard error", func(t *testing.T) {
		_, err := manager.SearchProvider(context.Background(), "Filos", validRequest())
		assert.ErrorIs(t, err, domain.ErrProviderInactive)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		broken := mock.NewProvider("OpenGreece").WithError(errors.New("boom"))
		m, _ := newManager(t, broken)
		_, err := m.SearchProvider(context.Background(), "OpenGreece", validRequest())
		assert.Error(t, err)
	})
}

// TestProviderManager_Stats tests supplier introspection.
func TestProviderManager_Stats(t *testing.T) {
	manager, _ := newManager(t,
		mock.NewProvider("Solvex"),
		mock.NewProvider("OpenGreece").Inactive(),
		mock.NewProvider("Filos").Unconfigured(),
	)

	stats := manager.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 2, stats.Configured)
	require.Len(t, stats.Providers, 3)
	assert.Equal(t, "Solvex", stats.Providers[0].Name)
	assert.True(t, stats.Providers[0].Active)
	assert.False(t, stats.Providers[2].Configured)
}
