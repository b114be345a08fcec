// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Multi-room hotel search results with metadata
type SwaggerSearchResponse struct {
	// Hotels contains the merged hotel results, cheapest total first
	Hotels []SwaggerHotel `json:"hotels"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`

	// Timeline holds one entry per date window tried by the flexible-date fallback
	Timeline map[string]SwaggerTimelineEntry `json:"timeline,omitempty"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// SearchID correlates the response with logs and analytics
	SearchID string `json:"search_id" example:"7b9f3a50-5f2f-4c8e-9a2d-2f6c1f1f9b1a"`

	// TotalResults is the number of hotels returned
	TotalResults int `json:"total_results" example:"12"`

	// ProvidersQueried is the list of supplier names that took part
	ProvidersQueried []string `json:"providers_queried" example:"Solvex,OpenGreece,Filos"`

	// ProvidersFailed is the list of supplier names whose calls failed
	ProvidersFailed []string `json:"providers_failed" example:""`

	// Configurations is the number of unique room configurations dispatched
	Configurations int `json:"configurations" example:"2"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms" example:"1250"`

	// FallbackUsed is true when the flexible-date fallback produced the result
	FallbackUsed bool `json:"fallback_used" example:"false"`

	// AcceptedCheckIn is the check-in date the results are priced for
	AcceptedCheckIn string `json:"accepted_check_in" example:"2026-01-10"`

	// AcceptedCheckOut is the check-out date the results are priced for
	AcceptedCheckOut string `json:"accepted_check_out" example:"2026-01-17"`
}

// SwaggerTimelineEntry records the outcome of one tried date window.
// @Description One tried date window in the flexible-date timeline
type SwaggerTimelineEntry struct {
	// CheckIn is the window's arrival date
	CheckIn string `json:"check_in" example:"2026-01-11"`

	// CheckOut is the window's departure date
	CheckOut string `json:"check_out" example:"2026-01-18"`

	// Nights is the window's stay length
	Nights int `json:"nights" example:"7"`

	// Available is true when at least one hotel qualified
	Available bool `json:"available" example:"true"`

	// HotelCount is the number of qualifying hotels
	HotelCount int `json:"hotel_count" example:"3"`

	// MinPrice is the cheapest qualifying total price
	MinPrice float64 `json:"min_price" example:"940"`
}

// SwaggerHotel represents one merged hotel result.
// @Description Merged hotel satisfying every requested room allocation
type SwaggerHotel struct {
	// MasterID is the identity key the hotel was merged under
	MasterID string `json:"master_id" example:"xr-54321"`

	// Name is the hotel display name
	Name string `json:"name" example:"Hotel Rila"`

	// Location is the hotel's city/region/country string
	Location string `json:"location" example:"Bansko, Bulgaria"`

	// Stars is the hotel category (0-5)
	Stars int `json:"stars" example:"4"`

	// Provider labels the provenance of the representative offer
	Provider string `json:"provider" example:"Aggregated (Solvex is cheapest)"`

	// Currency is the ISO 4217 code of all prices
	Currency string `json:"currency" example:"EUR"`

	// MealPlan is the board basis of the representative offer
	MealPlan string `json:"meal_plan" example:"HB"`

	// CheckIn is the arrival date the hotel was priced for
	CheckIn string `json:"check_in" example:"2026-01-10"`

	// CheckOut is the departure date the hotel was priced for
	CheckOut string `json:"check_out" example:"2026-01-17"`

	// TotalPrice is the sum of per-room minimum prices
	TotalPrice float64 `json:"total_price" example:"940"`

	// Rooms maps each requested room index to its priced room options
	Rooms map[string][]SwaggerRoomOption `json:"rooms"`

	// Providers lists every contributing supplier with its own price
	Providers []SwaggerProviderQuote `json:"providers"`
}

// SwaggerRoomOption is one priced room option.
// @Description One bookable room option
type SwaggerRoomOption struct {
	// ID is the supplier's room type identifier
	ID string `json:"id" example:"15"`

	// Name is the room type display name
	Name string `json:"name" example:"Double Room"`

	// Price is the total room price for the full stay
	Price float64 `json:"price" example:"480"`

	// Availability is the room's sellability
	Availability string `json:"availability" example:"available"`

	// MealPlan is the room's board basis when it differs from the offer
	MealPlan string `json:"meal_plan,omitempty" example:"HB"`
}

// SwaggerProviderQuote is one supplier's price for a merged hotel.
// @Description One supplier's price quote
type SwaggerProviderQuote struct {
	// Name is the supplier name
	Name string `json:"name" example:"Solvex"`

	// ID is the supplier's offer id
	ID string `json:"id" example:"solvex-123-2-15"`

	// Price is that supplier's cheapest price
	Price float64 `json:"price" example:"480"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
