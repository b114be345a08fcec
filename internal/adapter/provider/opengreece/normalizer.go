package opengreece

import (
	"fmt"
	"strings"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// propertyResult is one raw OpenGreece property with its rate lines.
type propertyResult struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category int    `json:"category"`
	Location struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	// GiataCode is a cross-supplier hotel identifier when OpenGreece has one.
	GiataCode   string `json:"giataCode,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Rates       []rate `json:"rates"`
}

// rate is one priced room/board combination.
type rate struct {
	RoomCode  string  `json:"roomCode"`
	RoomName  string  `json:"roomName"`
	Board     string  `json:"board"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	Occupancy int     `json:"occupancy"`
}

// normalize converts OpenGreece properties into domain offers, one offer
// per (property, board) combination so meal plans stay comparable with
// the other suppliers.
func normalize(properties []propertyResult, req domain.SearchRequest) []domain.NormalizedOffer {
	offers := make([]domain.NormalizedOffer, 0, len(properties))

	for _, prop := range properties {
		byBoard := make(map[domain.MealPlan]*domain.NormalizedOffer)
		boardOrder := []domain.MealPlan{}

		for _, r := range prop.Rates {
			plan := mealPlanFromBoard(r.Board)
			room := domain.RoomOption{
				ID:           r.RoomCode,
				Name:         r.RoomName,
				Price:        r.Total,
				Availability: availabilityFromStatus(r.Status),
				Capacity:     r.Occupancy,
			}

			if offer, ok := byBoard[plan]; ok {
				offer.Rooms = append(offer.Rooms, room)
				if r.Total < offer.Price {
					offer.Price = r.Total
					offer.Providers[0].Price = r.Total
					offer.Availability = room.Availability
				}
				continue
			}

			currency := strings.ToUpper(r.Currency)
			if currency == "" {
				currency = "EUR"
			}

			id := fmt.Sprintf("opengreece-%s-%s", prop.Code, strings.ToLower(string(plan)))
			offer := &domain.NormalizedOffer{
				ID:           id,
				Provider:     ProviderName,
				CrossRef:     prop.GiataCode,
				HotelName:    prop.Name,
				Location:     formatLocation(prop.Location.Name, prop.Location.Region),
				Stars:        clampStars(prop.Category),
				Price:        r.Total,
				Currency:     currency,
				MealPlan:     plan,
				Availability: room.Availability,
				Rooms:        []domain.RoomOption{room},
				CheckIn:      req.CheckIn,
				CheckOut:     req.CheckOut,
				Nights:       req.Nights(),
				Image:        prop.Image,
				Description:  prop.Description,
				Providers:    []domain.ProviderQuote{{Name: ProviderName, ID: id, Price: r.Total}},
				OriginalData: prop,
			}
			byBoard[plan] = offer
			boardOrder = append(boardOrder, plan)
		}

		for _, plan := range boardOrder {
			offers = append(offers, *byBoard[plan])
		}
	}
	return offers
}

// availabilityFromStatus maps OpenGreece rate statuses. Only freshly
// confirmed inventory (NEW, UPDATED) is immediately bookable; everything
// else needs manual confirmation.
func availabilityFromStatus(status string) domain.Availability {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "NEW", "UPDATED":
		return domain.Available
	default:
		return domain.OnRequest
	}
}

// clampStars keeps the star rating inside the 0-5 domain range.
func clampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// mealPlanFromBoard maps OpenGreece board descriptions to canonical codes.
func mealPlanFromBoard(board string) domain.MealPlan {
	b := strings.ToUpper(strings.TrimSpace(board))
	switch {
	case strings.Contains(b, "ULTRA"):
		return domain.UltraAllInclusive
	case strings.Contains(b, "ALL INCLUSIVE"), b == "AI":
		return domain.AllInclusive
	case strings.Contains(b, "FULL"), b == "FB":
		return domain.FullBoard
	case strings.Contains(b, "HALF"), b == "HB":
		return domain.HalfBoard
	case strings.Contains(b, "BREAKFAST"), b == "BB":
		return domain.BedAndBreakfast
	case strings.Contains(b, "ROOM ONLY"), b == "RO", b == "":
		return domain.RoomOnly
	default:
		return domain.RoomOnly
	}
}

func formatLocation(name, region string) string {
	switch {
	case name == "" && region == "":
		return "Greece"
	case region == "":
		return fmt.Sprintf("%s, Greece", name)
	case name == "":
		return fmt.Sprintf("%s, Greece", region)
	default:
		return fmt.Sprintf("%s, %s, Greece", name, region)
	}
}
