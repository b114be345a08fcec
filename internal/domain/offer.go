package domain

import "time"

// Availability is the three-value sellability status reported by suppliers.
type Availability string

// Availability states.
const (
	// Available means the room can be confirmed immediately
	Available Availability = "available"

	// OnRequest means the supplier must confirm availability manually
	OnRequest Availability = "on_request"

	// Unavailable means the room cannot be sold
	Unavailable Availability = "unavailable"
)

// MealPlan is the canonical board basis code shared by all suppliers.
type MealPlan string

// Canonical meal plans, ordered from no board to full board.
const (
	RoomOnly          MealPlan = "RO"
	BedAndBreakfast   MealPlan = "BB"
	HalfBoard         MealPlan = "HB"
	FullBoard         MealPlan = "FB"
	AllInclusive      MealPlan = "AI"
	UltraAllInclusive MealPlan = "UAI"
)

// mealPlanNames maps canonical codes to display names.
var mealPlanNames = map[MealPlan]string{
	RoomOnly:          "Room Only",
	BedAndBreakfast:   "Bed & Breakfast",
	HalfBoard:         "Half Board",
	FullBoard:         "Full Board",
	AllInclusive:      "All Inclusive",
	UltraAllInclusive: "Ultra All Inclusive",
}

// DisplayName returns the human-readable name of the meal plan.
// Unknown codes are returned as-is.
func (m MealPlan) DisplayName() string {
	if name, ok := mealPlanNames[m]; ok {
		return name
	}
	return string(m)
}

// IsValid checks whether the meal plan is one of the canonical codes.
func (m MealPlan) IsValid() bool {
	_, ok := mealPlanNames[m]
	return ok
}

// RoomOption is one bookable room type within an offer.
type RoomOption struct {
	// ID is the supplier's room type identifier
	ID string `json:"id"`

	// Name is the room type display name
	Name string `json:"name"`

	// Description is optional room detail text
	Description string `json:"description,omitempty"`

	// Price is the total room price for the full stay
	Price float64 `json:"price"`

	// Availability is this room's sellability
	Availability Availability `json:"availability"`

	// Capacity is the maximum occupancy, 0 when the supplier does not report it
	Capacity int `json:"capacity,omitempty"`

	// MealPlan overrides the offer-level plan when a supplier mixes
	// plans within one hotel response
	MealPlan MealPlan `json:"mealPlan,omitempty"`
}

// ProviderQuote records one supplier's price for a merged hotel,
// kept for price-comparison transparency.
type ProviderQuote struct {
	// Name is the supplier name
	Name string `json:"name"`

	// ID is the supplier's offer id (usable for booking)
	ID string `json:"id"`

	// Price is that supplier's cheapest price
	Price float64 `json:"price"`
}

// NormalizedOffer is one supplier's priced availability for one hotel,
// expressed in the shared domain model. Adapters are the only code that
// builds these from supplier wire formats.
type NormalizedOffer struct {
	// ID is supplier-prefixed and globally unique (e.g. "solvex-123-2-15")
	ID string `json:"id"`

	// Provider is the supplier this offer came from
	Provider string `json:"provider"`

	// CrossRef is a stable cross-supplier hotel identifier (e.g. a GIATA id)
	// when the supplier can provide one; empty otherwise
	CrossRef string `json:"crossRef,omitempty"`

	// HotelName is the hotel display name
	HotelName string `json:"hotelName"`

	// Location is the hotel's city/region/country string
	Location string `json:"location"`

	// Stars is the hotel category (0-5, 0 = uncategorized)
	Stars int `json:"stars"`

	// Price is the representative price: the minimum across Rooms
	Price float64 `json:"price"`

	// Currency is the ISO 4217 code of Price
	Currency string `json:"currency"`

	// MealPlan is the canonical board basis of this offer
	MealPlan MealPlan `json:"mealPlan"`

	// Availability is the offer-level sellability
	Availability Availability `json:"availability"`

	// Rooms lists every bookable room option in this offer
	Rooms []RoomOption `json:"rooms"`

	// CheckIn and CheckOut are the dates this offer was priced for.
	// Adapters may shift them forward from the requested dates when a
	// supplier refuses past or same-day arrivals.
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`

	// Nights is the stay length; always NightsBetween(CheckIn, CheckOut)
	Nights int `json:"nights"`

	// Image is an optional main hotel image URL
	Image string `json:"image,omitempty"`

	// Description is optional hotel detail text
	Description string `json:"description,omitempty"`

	// Providers lists contributing suppliers after cross-supplier merging.
	// A freshly normalized offer has exactly one entry: its own supplier.
	Providers []ProviderQuote `json:"providers,omitempty"`

	// OriginalData is the opaque supplier payload kept for downstream booking
	OriginalData any `json:"originalData,omitempty"`
}

// MinRoomPrice returns the cheapest room option price, or the offer
// price when no room options are present.
func (o *NormalizedOffer) MinRoomPrice() float64 {
	if len(o.Rooms) == 0 {
		return o.Price
	}
	min := o.Rooms[0].Price
	for _, r := range o.Rooms[1:] {
		if r.Price < min {
			min = r.Price
		}
	}
	return min
}
