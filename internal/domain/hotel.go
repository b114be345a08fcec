package domain

import (
	"strings"
	"time"
)

// KeyFunc derives the supplier-neutral identity key used to decide that two
// offers describe the same physical hotel. The same function must be used by
// the cross-supplier deduplicator and by the multi-room intersection so both
// layers always agree on hotel identity. The strategy is injectable because
// the name+location fallback is lossy by design: two distinct hotels sharing
// a normalized name and town collide.
type KeyFunc func(offer *NormalizedOffer) string

// IdentityKey is the default KeyFunc: it prefers a stable cross-supplier
// identifier and falls back to the normalized name+location key.
func IdentityKey(offer *NormalizedOffer) string {
	if offer.CrossRef != "" {
		return "xr-" + offer.CrossRef
	}
	return FallbackKey(offer.HotelName, offer.Location)
}

// FallbackKey builds the lossy identity key from hotel name and location by
// stripping every non-alphanumeric rune from the lower-cased strings.
func FallbackKey(name, location string) string {
	return "fb-" + normalizeAlnum(name) + "-" + normalizeAlnum(location)
}

func normalizeAlnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MergedHotel is the final, post-deduplication view of one physical hotel
// that satisfies every requested room allocation.
type MergedHotel struct {
	// MasterID is the identity key the hotel was merged under
	MasterID string `json:"masterId"`

	// Name is the hotel display name
	Name string `json:"name"`

	// Location is the hotel's city/region/country string
	Location string `json:"location"`

	// Stars is the hotel category (0-5)
	Stars int `json:"stars"`

	// Provider labels the provenance; after a cross-supplier merge it reads
	// "Aggregated (<cheapest supplier> is cheapest)"
	Provider string `json:"provider"`

	// Currency is the ISO 4217 code of all prices below
	Currency string `json:"currency"`

	// MealPlan is the board basis of the representative offer
	MealPlan MealPlan `json:"mealPlan"`

	// CheckIn and CheckOut are the dates the hotel was actually priced for
	// (they differ from the requested dates when the flexible-date fallback
	// accepted a shifted window)
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`

	// Image is an optional main hotel image URL
	Image string `json:"image,omitempty"`

	// Description is optional hotel detail text
	Description string `json:"description,omitempty"`

	// AllocationResults maps each original room-allocation index to the room
	// options priced for that room's configuration
	AllocationResults map[int][]RoomOption `json:"allocationResults"`

	// TotalPrice is always the sum, across populated allocation indices, of
	// the minimum room option price for that index
	TotalPrice float64 `json:"totalPrice"`

	// Providers lists every contributing supplier with its own price
	Providers []ProviderQuote `json:"providers"`
}

// RecomputeTotal recalculates TotalPrice from AllocationResults. It must be
// called after every attach because a later attach can lower an index's
// minimum. Indices with no room options contribute nothing.
func (h *MergedHotel) RecomputeTotal() {
	total := 0.0
	for _, rooms := range h.AllocationResults {
		if len(rooms) == 0 {
			continue
		}
		min := rooms[0].Price
		for _, r := range rooms[1:] {
			if r.Price < min {
				min = r.Price
			}
		}
		total += min
	}
	h.TotalPrice = total
}

// AttachAllocation adds room options for one original allocation index,
// appending when the index is already populated (a repeated destination
// search must never overwrite earlier options), then refreshes TotalPrice.
func (h *MergedHotel) AttachAllocation(index int, rooms []RoomOption) {
	if h.AllocationResults == nil {
		h.AllocationResults = make(map[int][]RoomOption)
	}
	h.AllocationResults[index] = append(h.AllocationResults[index], rooms...)
	h.RecomputeTotal()
}
