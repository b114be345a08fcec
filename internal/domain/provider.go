package domain

import (
	"context"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// HotelProvider is the contract every supplier adapter implements.
// A concrete adapter is the only code permitted to know its supplier's
// request and response shapes.
type HotelProvider interface {
	// Name returns the supplier's unique identifier (e.g. "Solvex").
	Name() string

	// IsActive reports whether the provider should take part in fan-out searches.
	IsActive() bool

	// IsConfigured reports whether the provider has valid credentials.
	// Unconfigured providers are skipped at registration, never registered
	// and failed.
	IsConfigured() bool

	// Authenticate establishes a supplier session where one is needed.
	// Adapters whose supplier carries credentials per request return nil.
	Authenticate(ctx context.Context) error

	// Search returns normalized offers for the request. "No results" is an
	// empty slice, never an error; only transport or protocol failures
	// return errors. The adapter owns its own network timeout.
	Search(ctx context.Context, req SearchRequest) ([]NormalizedOffer, error)
}

// ProviderRegistry holds the set of registered supplier adapters.
// It is safe for concurrent use.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]HotelProvider
	order     []string
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]HotelProvider),
	}
}

// Register adds a provider, replacing any previous registration under the
// same name. Nil providers are ignored.
func (r *ProviderRegistry) Register(p HotelProvider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := p.Name()
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Unregister removes a provider by name. Unknown names are a no-op.
func (r *ProviderRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[name]; !exists {
		return
	}
	delete(r.providers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the provider registered under name, or nil.
func (r *ProviderRegistry) Get(name string) HotelProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns every registered provider in registration order.
func (r *ProviderRegistry) GetAll() []HotelProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]HotelProvider, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.providers[name])
	}
	return all
}

// Active returns every registered provider reporting IsActive.
func (r *ProviderRegistry) Active() []HotelProvider {
	all := r.GetAll()
	active := make([]HotelProvider, 0, len(all))
	for _, p := range all {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Names returns the registered provider names in registration order.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
