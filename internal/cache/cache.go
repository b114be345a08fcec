// Package cache provides the offer cache that shields suppliers from
// redundant search calls. Entries expire after a fixed TTL; the cache is the
// only mutable state shared by concurrent searches.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/infrastructure/timeutil"
)

// DefaultTTL is the cache lifetime applied when none is configured.
const DefaultTTL = 5 * time.Minute

// Store is the offer cache contract. Implementations must be safe for
// concurrent use by multiple in-flight searches.
type Store interface {
	// Get returns the cached offers for key, or false when the key is
	// absent or expired.
	Get(ctx context.Context, key string) ([]domain.NormalizedOffer, bool)

	// Set stores offers under key with the store's TTL.
	Set(ctx context.Context, key string, offers []domain.NormalizedOffer)

	// Delete removes key.
	Delete(ctx context.Context, key string)
}

// Key builds the canonical cache key for one supplier and one request:
// the supplier name plus the JSON encoding of the request. encoding/json
// writes struct fields in declaration order, so the encoding is stable.
func Key(provider string, req domain.SearchRequest) string {
	b, err := json.Marshal(req)
	if err != nil {
		// SearchRequest contains only marshalable fields; this cannot
		// happen for real requests.
		return provider + ":" + req.Destination
	}
	return provider + ":" + string(b)
}

type memoryEntry struct {
	offers []domain.NormalizedOffer
	expiry time.Time
}

// Memory is an in-process Store backed by a mutex-guarded map.
// Expired entries are dropped lazily on read and by Cleanup.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
	clock timeutil.Clock
}

// NewMemory creates an in-memory store with the given TTL.
// A non-positive TTL falls back to DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithClock(ttl, timeutil.NewRealClock())
}

// NewMemoryWithClock creates an in-memory store with an injectable clock.
// This is useful for testing expiry without sleeping.
func NewMemoryWithClock(ttl time.Duration, clock timeutil.Clock) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		clock: clock,
	}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) ([]domain.NormalizedOffer, bool) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if m.clock.Now().After(entry.expiry) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, false
	}
	return entry.offers, true
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, offers []domain.NormalizedOffer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryEntry{
		offers: offers,
		expiry: m.clock.Now().Add(m.ttl),
	}
}

// Delete implements Store.
func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// Cleanup removes every expired entry. Call it periodically from a
// background goroutine to bound memory on long-running processes.
func (m *Memory) Cleanup() {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, entry := range m.items {
		if now.After(entry.expiry) {
			delete(m.items, key)
		}
	}
}

// Len returns the number of entries currently held, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Ensure Memory implements Store at compile time.
var _ Store = (*Memory)(nil)
