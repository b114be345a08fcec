package solvex

import (
	"fmt"
	"strings"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// serviceRow is one raw Solvex search result: a single
// (hotel, room type, pansion) combination.
type serviceRow struct {
	Hotel struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		StarRating int    `json:"starRating"`
		City       struct {
			Name string `json:"name"`
		} `json:"city"`
		Country struct {
			Name string `json:"name"`
		} `json:"country"`
	} `json:"hotel"`

	Pansion struct {
		ID   int    `json:"id"`
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"pansion"`

	Room struct {
		RoomType struct {
			ID     int    `json:"id"`
			Name   string `json:"name"`
			Places int    `json:"places"`
		} `json:"roomType"`
		RoomCategory struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"roomCategory"`
		RoomAccommodation struct {
			Name string `json:"name"`
		} `json:"roomAccommodation"`
	} `json:"room"`

	// QuotaType encodes sellability: 0 on request, 1 available, 2 stop sale.
	QuotaType int `json:"quotaType"`

	TotalCost float64 `json:"totalCost"`
}

// normalize converts raw Solvex rows into grouped domain offers.
// Rows sharing (hotel, pansion code) become one offer whose rooms list
// accumulates every room option and whose price is the group minimum.
func normalize(rows []serviceRow, req domain.SearchRequest) []domain.NormalizedOffer {
	grouped := make(map[string]*domain.NormalizedOffer)
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		pansion := strings.ToUpper(strings.TrimSpace(row.Pansion.Code))
		if pansion == "" {
			pansion = "RO"
		}
		key := fmt.Sprintf("%d-%s", row.Hotel.ID, pansion)

		room := domain.RoomOption{
			ID:           fmt.Sprintf("%d-%d", row.Room.RoomType.ID, row.Room.RoomCategory.ID),
			Name:         fmt.Sprintf("%s - %s", row.Room.RoomType.Name, row.Room.RoomCategory.Name),
			Description:  row.Room.RoomAccommodation.Name,
			Price:        row.TotalCost,
			Availability: availabilityFromQuota(row.QuotaType),
			Capacity:     row.Room.RoomType.Places,
		}

		if offer, ok := grouped[key]; ok {
			offer.Rooms = append(offer.Rooms, room)
			if row.TotalCost < offer.Price {
				offer.Price = row.TotalCost
				offer.Providers[0].Price = row.TotalCost
			}
			continue
		}

		id := fmt.Sprintf("solvex-%d-%d-%d", row.Hotel.ID, row.Pansion.ID, row.Room.RoomType.ID)
		offer := &domain.NormalizedOffer{
			ID:           id,
			Provider:     ProviderName,
			HotelName:    cleanHotelName(row.Hotel.Name),
			Location:     fmt.Sprintf("%s, %s", row.Hotel.City.Name, row.Hotel.Country.Name),
			Stars:        clampStars(row.Hotel.StarRating),
			Price:        row.TotalCost,
			Currency:     "EUR",
			MealPlan:     mealPlanFromPansion(pansion),
			Availability: availabilityFromQuota(row.QuotaType),
			Rooms:        []domain.RoomOption{room},
			CheckIn:      req.CheckIn,
			CheckOut:     req.CheckOut,
			Nights:       req.Nights(),
			Providers:    []domain.ProviderQuote{{Name: ProviderName, ID: id, Price: row.TotalCost}},
			OriginalData: row,
		}
		grouped[key] = offer
		order = append(order, key)
	}

	offers := make([]domain.NormalizedOffer, 0, len(grouped))
	for _, key := range order {
		offers = append(offers, *grouped[key])
	}
	return offers
}

// availabilityFromQuota maps the Solvex quota type to the shared
// availability enum. Unknown values map to on_request, never to available.
func availabilityFromQuota(quotaType int) domain.Availability {
	switch quotaType {
	case 0:
		return domain.OnRequest
	case 1:
		return domain.Available
	case 2:
		return domain.Unavailable
	default:
		return domain.OnRequest
	}
}

// mealPlanFromPansion maps Solvex pansion codes to canonical meal plans.
func mealPlanFromPansion(code string) domain.MealPlan {
	switch code {
	case "AI":
		return domain.AllInclusive
	case "UAI":
		return domain.UltraAllInclusive
	case "FB":
		return domain.FullBoard
	case "HB":
		return domain.HalfBoard
	case "BB":
		return domain.BedAndBreakfast
	case "RO", "OB":
		return domain.RoomOnly
	default:
		return domain.MealPlan(code)
	}
}

// cleanHotelName strips redundant town suffixes Solvex appends to some
// hotel names. Star markers stay because Solvex bakes them into the name.
func cleanHotelName(name string) string {
	name = strings.ReplaceAll(name, "(Golden Sands)", "")
	return strings.TrimSpace(name)
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
