package http

import (
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

const dateFormat = "2006-01-02"

// SearchResponseDTO is the data transfer object for multi-room search
// responses. It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	Hotels   []HotelDTO                  `json:"hotels"`
	Metadata MetadataDTO                 `json:"metadata"`
	Timeline map[string]TimelineEntryDTO `json:"timeline,omitempty"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	SearchID         string   `json:"search_id"`
	TotalResults     int      `json:"total_results"`
	ProvidersQueried []string `json:"providers_queried"`
	ProvidersFailed  []string `json:"providers_failed"`
	Configurations   int      `json:"configurations"`
	SearchTimeMs     int64    `json:"search_time_ms"`
	FallbackUsed     bool     `json:"fallback_used"`
	AcceptedCheckIn  string   `json:"accepted_check_in"`
	AcceptedCheckOut string   `json:"accepted_check_out"`
}

// TimelineEntryDTO is one tried date window in the flexible-date timeline.
type TimelineEntryDTO struct {
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	Available  bool    `json:"available"`
	HotelCount int     `json:"hotel_count"`
	MinPrice   float64 `json:"min_price"`
}

// HotelDTO is the data transfer object for one merged hotel result.
type HotelDTO struct {
	MasterID    string                  `json:"master_id"`
	Name        string                  `json:"name"`
	Location    string                  `json:"location"`
	Stars       int                     `json:"stars"`
	Provider    string                  `json:"provider"`
	Currency    string                  `json:"currency"`
	MealPlan    string                  `json:"meal_plan"`
	CheckIn     string                  `json:"check_in"`
	CheckOut    string                  `json:"check_out"`
	Image       string                  `json:"image,omitempty"`
	Description string                  `json:"description,omitempty"`
	TotalPrice  float64                 `json:"total_price"`
	Rooms       map[int][]RoomOptionDTO `json:"rooms"`
	Providers   []ProviderQuoteDTO      `json:"providers"`
}

// RoomOptionDTO is the data transfer object for one priced room option.
type RoomOptionDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
	Capacity     int     `json:"capacity,omitempty"`
	MealPlan     string  `json:"meal_plan,omitempty"`
}

// ProviderQuoteDTO is one supplier's price for a merged hotel.
type ProviderQuoteDTO struct {
	Name  string  `json:"name"`
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

// ProviderSearchResponseDTO is the response for a single-supplier search.
type ProviderSearchResponseDTO struct {
	Provider     string     `json:"provider"`
	TotalResults int        `json:"total_results"`
	Offers       []OfferDTO `json:"offers"`
}

// OfferDTO is the data transfer object for one normalized supplier offer.
type OfferDTO struct {
	ID           string             `json:"id"`
	Provider     string             `json:"provider"`
	CrossRef     string             `json:"cross_ref,omitempty"`
	HotelName    string             `json:"hotel_name"`
	Location     string             `json:"location"`
	Stars        int                `json:"stars"`
	Price        float64            `json:"price"`
	Currency     string             `json:"currency"`
	MealPlan     string             `json:"meal_plan"`
	Availability string             `json:"availability"`
	CheckIn      string             `json:"check_in"`
	CheckOut     string             `json:"check_out"`
	Nights       int                `json:"nights"`
	Image        string             `json:"image,omitempty"`
	Description  string             `json:"description,omitempty"`
	Rooms        []RoomOptionDTO    `json:"rooms"`
	Providers    []ProviderQuoteDTO `json:"providers,omitempty"`
}

// ToSearchResponseDTO converts a domain MultiSearchResponse to a SearchResponseDTO.
func ToSearchResponseDTO(resp *domain.MultiSearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		Hotels: make([]HotelDTO, len(resp.Hotels)),
		Metadata: MetadataDTO{
			SearchID:         resp.Metadata.SearchID,
			TotalResults:     len(resp.Hotels),
			ProvidersQueried: emptyIfNil(resp.Metadata.ProvidersQueried),
			ProvidersFailed:  emptyIfNil(resp.Metadata.ProvidersFailed),
			Configurations:   resp.Metadata.Configurations,
			SearchTimeMs:     resp.Metadata.DurationMs,
			FallbackUsed:     resp.Metadata.FallbackUsed,
			AcceptedCheckIn:  resp.Metadata.AcceptedCheckIn.Format(dateFormat),
			AcceptedCheckOut: resp.Metadata.AcceptedCheckOut.Format(dateFormat),
		},
	}

	for i, hotel := range resp.Hotels {
		dto.Hotels[i] = ToHotelDTO(&hotel)
	}

	if len(resp.Timeline) > 0 {
		dto.Timeline = make(map[string]TimelineEntryDTO, len(resp.Timeline))
		for key, entry := range resp.Timeline {
			dto.Timeline[key] = TimelineEntryDTO{
				CheckIn:    entry.CheckIn.Format(dateFormat),
				CheckOut:   entry.CheckOut.Format(dateFormat),
				Nights:     entry.Nights,
				Available:  entry.Available,
				HotelCount: entry.HotelCount,
				MinPrice:   entry.MinPrice,
			}
		}
	}

	return dto
}

// ToHotelDTO converts a domain MergedHotel to a HotelDTO.
func ToHotelDTO(hotel *domain.MergedHotel) HotelDTO {
	dto := HotelDTO{
		MasterID:    hotel.MasterID,
		Name:        hotel.Name,
		Location:    hotel.Location,
		Stars:       hotel.Stars,
		Provider:    hotel.Provider,
		Currency:    hotel.Currency,
		MealPlan:    string(hotel.MealPlan),
		CheckIn:     hotel.CheckIn.Format(dateFormat),
		CheckOut:    hotel.CheckOut.Format(dateFormat),
		Image:       hotel.Image,
		Description: hotel.Description,
		TotalPrice:  hotel.TotalPrice,
		Rooms:       make(map[int][]RoomOptionDTO, len(hotel.AllocationResults)),
		Providers:   toProviderQuoteDTOs(hotel.Providers),
	}

	for index, rooms := range hotel.AllocationResults {
		dto.Rooms[index] = toRoomDTOs(rooms)
	}

	return dto
}

// ToProviderSearchResponseDTO converts single-supplier search results.
func ToProviderSearchResponseDTO(provider string, offers []domain.NormalizedOffer) *ProviderSearchResponseDTO {
	dto := &ProviderSearchResponseDTO{
		Provider:     provider,
		TotalResults: len(offers),
		Offers:       make([]OfferDTO, len(offers)),
	}
	for i, offer := range offers {
		dto.Offers[i] = ToOfferDTO(&offer)
	}
	return dto
}

// ToOfferDTO converts a domain NormalizedOffer to an OfferDTO.
func ToOfferDTO(offer *domain.NormalizedOffer) OfferDTO {
	return OfferDTO{
		ID:           offer.ID,
		Provider:     offer.Provider,
		CrossRef:     offer.CrossRef,
		HotelName:    offer.HotelName,
		Location:     offer.Location,
		Stars:        offer.Stars,
		Price:        offer.Price,
		Currency:     offer.Currency,
		MealPlan:     string(offer.MealPlan),
		Availability: string(offer.Availability),
		CheckIn:      offer.CheckIn.Format(dateFormat),
		CheckOut:     offer.CheckOut.Format(dateFormat),
		Nights:       offer.Nights,
		Image:        offer.Image,
		Description:  offer.Description,
		Rooms:        toRoomDTOs(offer.Rooms),
		Providers:    toProviderQuoteDTOs(offer.Providers),
	}
}

func toRoomDTOs(rooms []domain.RoomOption) []RoomOptionDTO {
	out := make([]RoomOptionDTO, len(rooms))
	for i, room := range rooms {
		out[i] = RoomOptionDTO{
			ID:           room.ID,
			Name:         room.Name,
			Description:  room.Description,
			Price:        room.Price,
			Availability: string(room.Availability),
			Capacity:     room.Capacity,
			MealPlan:     string(room.MealPlan),
		}
	}
	return out
}

func toProviderQuoteDTOs(quotes []domain.ProviderQuote) []ProviderQuoteDTO {
	out := make([]ProviderQuoteDTO, len(quotes))
	for i, q := range quotes {
		out[i] = ProviderQuoteDTO{
			Name:  q.Name,
			ID:    q.ID,
			Price: q.Price,
		}
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
