// Package mock provides test doubles for the hotel search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// Provider is a configurable mock implementation of domain.HotelProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Provider struct {
	name       string
	offers     []domain.NormalizedOffer
	offersFunc func(req domain.SearchRequest) []domain.NormalizedOffer
	err        error
	authErr    error
	delay      time.Duration
	active     bool
	configured bool

	mu        sync.Mutex
	callCount int
	authCount int
	requests  []domain.SearchRequest
}

// NewProvider creates a new mock provider with the given name.
// It starts active and configured; behavior is layered on with the
// builder methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:       name,
		active:     true,
		configured: true,
	}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.NormalizedOffer) *Provider {
	p.offers = offers
	return p
}

// WithOffersFunc configures the provider to compute offers per request,
// e.g. to answer differently per destination or occupant configuration.
func (p *Provider) WithOffersFunc(fn func(req domain.SearchRequest) []domain.NormalizedOffer) *Provider {
	p.offersFunc = fn
	return p
}

// WithError configures the provider to fail every search with err.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithAuthError configures the provider to fail authentication with err.
func (p *Provider) WithAuthError(err error) *Provider {
	p.authErr = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Inactive marks the provider as disabled.
func (p *Provider) Inactive() *Provider {
	p.active = false
	return p
}

// Unconfigured marks the provider as missing credentials.
func (p *Provider) Unconfigured() *Provider {
	p.configured = false
	p.active = false
	return p
}

// Name implements domain.HotelProvider.
func (p *Provider) Name() string { return p.name }

// IsActive implements domain.HotelProvider.
func (p *Provider) IsActive() bool { return p.active }

// IsConfigured implements domain.HotelProvider.
func (p *Provider) IsConfigured() bool { return p.configured }

// Authenticate implements domain.HotelProvider.
func (p *Provider) Authenticate(context.Context) error {
	p.mu.Lock()
	p.authCount++
	p.mu.Unlock()
	return p.authErr
}

// Search implements domain.HotelProvider. It respects context
// cancellation, applies the configured delay, and returns the configured
// offers or error.
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.NormalizedOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.offersFunc != nil {
		return p.offersFunc(req), nil
	}
	return p.offers, nil
}

// CallCount returns the number of times Search was called. This is
// useful for verifying cache behavior.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// AuthCount returns the number of times Authenticate was called.
func (p *Provider) AuthCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.authCount
}

// Requests returns a copy of every search request received.
func (p *Provider) Requests() []domain.SearchRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	reqs := make([]domain.SearchRequest, len(p.requests))
	copy(reqs, p.requests)
	return reqs
}

// Reset clears the call counters and recorded requests.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
	p.authCount = 0
	p.requests = nil
}

// Ensure Provider implements domain.HotelProvider at compile time.
var _ domain.HotelProvider = (*Provider)(nil)

// SampleOffers returns count offers for one provider with realistic
// values. Prices step by 50 so tests can predict ordering.
func SampleOffers(provider string, count int) []domain.NormalizedOffer {
	offers := make([]domain.NormalizedOffer, count)
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 7)

	for i := 0; i < count; i++ {
		price := 400.0 + float64(i*50)
		id := fmt.Sprintf("%s-%d", provider, i+1)
		offers[i] = domain.NormalizedOffer{
			ID:           id,
			Provider:     provider,
			HotelName:    fmt.Sprintf("Hotel %s %d", provider, i+1),
			Location:     "Bansko, Bulgaria",
			Stars:        3 + i%3,
			Price:        price,
			Currency:     "EUR",
			MealPlan:     domain.HalfBoard,
			Availability: domain.Available,
			Rooms: []domain.RoomOption{
				{ID: id + "-r1", Name: "Double Room", Price: price, Availability: domain.Available, Capacity: 2},
			},
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Nights:    7,
			Providers: []domain.ProviderQuote{{Name: provider, ID: id, Price: price}},
		}
	}
	return offers
}

// Offer builds one offer with the fields tests care about most.
func Offer(provider, hotelName, location string, price float64) domain.NormalizedOffer {
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	id := fmt.Sprintf("%s-%s", provider, domain.FallbackKey(hotelName, location))
	return domain.NormalizedOffer{
		ID:           id,
		Provider:     provider,
		HotelName:    hotelName,
		Location:     location,
		Stars:        4,
		Price:        price,
		Currency:     "EUR",
		MealPlan:     domain.HalfBoard,
		Availability: domain.Available,
		Rooms: []domain.RoomOption{
			{ID: id + "-r1", Name: "Double Room", Price: price, Availability: domain.Available, Capacity: 2},
		},
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 7),
		Nights:    7,
		Providers: []domain.ProviderQuote{{Name: provider, ID: id, Price: price}},
	}
}
