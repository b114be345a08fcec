package usecase

import (
	"fmt"
	"sort"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// Deduplicator merges offers that describe the same physical hotel across
// suppliers. The identity strategy is injectable so the multi-room engine
// can share it and both layers always agree on hotel identity.
type Deduplicator struct {
	Key domain.KeyFunc
}

// NewDeduplicator creates a deduplicator with the default identity key.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{Key: domain.IdentityKey}
}

// Merge collapses offers sharing an identity key into one offer each.
// The cheapest offer becomes the representative; its provider label turns
// into "Aggregated (<supplier> is cheapest)" when more than one supplier
// contributed. Provider quotes are unioned keeping each supplier's
// cheapest price, and media is backfilled only where the representative
// has none. Input order of first appearance is preserved.
func (d *Deduplicator) Merge(offers []domain.NormalizedOffer) []domain.NormalizedOffer {
	if len(offers) <= 1 {
		return offers
	}

	key := d.Key
	if key == nil {
		key = domain.IdentityKey
	}

	type group struct {
		rep       domain.NormalizedOffer
		quotes    map[string]domain.ProviderQuote
		suppliers map[string]bool
	}

	groups := make(map[string]*group)
	order := make([]string, 0, len(offers))

	for i := range offers {
		offer := offers[i]
		k := key(&offer)

		g, ok := groups[k]
		if !ok {
			g = &group{
				rep:       offer,
				quotes:    make(map[string]domain.ProviderQuote),
				suppliers: map[string]bool{offer.Provider: true},
			}
			addQuotes(g.quotes, offer)
			groups[k] = g
			order = append(order, k)
			continue
		}

		g.suppliers[offer.Provider] = true
		addQuotes(g.quotes, offer)

		if offer.Price < g.rep.Price {
			// The cheaper offer takes over, inheriting media the previous
			// representative had and it lacks.
			if offer.Image == "" {
				offer.Image = g.rep.Image
			}
			if offer.Description == "" {
				offer.Description = g.rep.Description
			}
			if offer.CrossRef == "" {
				offer.CrossRef = g.rep.CrossRef
			}
			g.rep = offer
		} else {
			if g.rep.Image == "" {
				g.rep.Image = offer.Image
			}
			if g.rep.Description == "" {
				g.rep.Description = offer.Description
			}
			if g.rep.CrossRef == "" {
				g.rep.CrossRef = offer.CrossRef
			}
		}
	}

	merged := make([]domain.NormalizedOffer, 0, len(order))
	for _, k := range order {
		g := groups[k]

		if len(g.suppliers) > 1 {
			g.rep.Provider = fmt.Sprintf("Aggregated (%s is cheapest)", g.rep.Provider)
		}

		quotes := make([]domain.ProviderQuote, 0, len(g.quotes))
		for _, q := range g.quotes {
			quotes = append(quotes, q)
		}
		sort.Slice(quotes, func(i, j int) bool { return quotes[i].Price < quotes[j].Price })
		g.rep.Providers = quotes

		merged = append(merged, g.rep)
	}
	return merged
}

// addQuotes folds one offer's provider quotes into the union, keeping the
// cheapest quote per supplier.
func addQuotes(quotes map[string]domain.ProviderQuote, offer domain.NormalizedOffer) {
	incoming := offer.Providers
	if len(incoming) == 0 {
		incoming = []domain.ProviderQuote{{Name: offer.Provider, ID: offer.ID, Price: offer.Price}}
	}
	for _, q := range incoming {
		existing, ok := quotes[q.Name]
		if !ok || q.Price < existing.Price {
			quotes[q.Name] = q
		}
	}
}
