package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/test/mock"
)

// TestConcurrentSearchRequests verifies the full HTTP stack under parallel
// load: every request must succeed and see the same result set.
func TestConcurrentSearchRequests(t *testing.T) {
	provider := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 3))

	ts := NewTestServer(provider)
	defer ts.Close()

	const workers = 20

	var wg sync.WaitGroup
	codes := make([]int, workers)
	counts := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := ts.SearchRequest(DefaultSearchRequest())
			codes[i] = resp.Code
			if parsed, err := resp.ParseSearchResponse(); err == nil {
				counts[i] = len(parsed.Hotels)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, http.StatusOK, codes[i], "request %d", i)
		assert.Equal(t, 3, counts[i], "request %d", i)
	}
}

// TestConcurrentEngineSearches drives the engine directly from many
// goroutines with differing requests.
func TestConcurrentEngineSearches(t *testing.T) {
	provider := mock.NewProvider("Solvex").WithOffersFunc(func(req domain.SearchRequest) []domain.NormalizedOffer {
		return []domain.NormalizedOffer{
			mock.Offer("Solvex", "Hotel "+req.Destination, req.Destination+", Bulgaria", 500),
		}
	})

	ts := NewTestServer(provider)
	defer ts.Close()

	destinations := []string{"Bansko", "Borovets", "Pamporovo", "Sofia"}

	var wg sync.WaitGroup
	errs := make([]error, len(destinations))
	names := make([]string, len(destinations))

	for i, dest := range destinations {
		wg.Add(1)
		go func(i int, dest string) {
			defer wg.Done()
			req := DefaultMultiRequest()
			req.Destinations = []domain.Destination{{Name: dest}}
			resp, err := ts.Engine.Search(context.Background(), req)
			errs[i] = err
			if err == nil && len(resp.Hotels) == 1 {
				names[i] = resp.Hotels[0].Name
			}
		}(i, dest)
	}
	wg.Wait()

	for i, dest := range destinations {
		require.NoError(t, errs[i])
		assert.Equal(t, "Hotel "+dest, names[i])
	}
}

// TestSearchAll_SlowProviderIsolated verifies that one slow supplier does
// not take the whole fan-out down when the context deadline hits.
func TestSearchAll_SlowProviderIsolated(t *testing.T) {
	fast := mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 2))
	slow := mock.NewProvider("OpenGreece").
		WithOffers(mock.SampleOffers("OpenGreece", 2)).
		WithDelay(2 * time.Second)

	ts := NewTestServer(fast, slow)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	result, err := ts.Manager.SearchAll(ctx, domain.SearchRequest{
		Destination: "Bansko",
		CheckIn:     time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		Adults:      2,
	})
	require.NoError(t, err)

	assert.Len(t, result.Offers, 2, "only the fast supplier's offers arrive")
	assert.Contains(t, result.Failed, "OpenGreece")
	assert.ElementsMatch(t, []string{"Solvex", "OpenGreece"}, result.Queried)
}

// TestConcurrentRegistryAccess exercises the registry while searches run.
func TestConcurrentRegistryAccess(t *testing.T) {
	ts := NewTestServer(mock.NewProvider("Solvex").WithOffers(mock.SampleOffers("Solvex", 1)))
	defer ts.Close()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			ts.Registry.Names()
			ts.Manager.Stats()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			resp := ts.SearchRequest(DefaultSearchRequest())
			assert.Equal(t, http.StatusOK, resp.Code)
		}
	}()

	wg.Wait()
}
