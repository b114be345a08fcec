package filos

import (
	"fmt"
	"strings"
	"time"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// hotelRow is one raw Filos feed hotel. The feed is loosely typed, so
// every field is optional and normalization tolerates gaps.
type hotelRow struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Stars    int     `json:"stars"`
	Resort   string  `json:"resort"`
	Country  string  `json:"country"`
	Board    string  `json:"board"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Photo    string  `json:"photo"`
	Notes    string  `json:"notes"`
	OnStop   bool    `json:"onStop"`
	Request  bool    `json:"request"`
	Rooms    []struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Beds  int     `json:"beds"`
	} `json:"rooms"`
}

// normalize converts Filos feed rows into domain offers. The priced
// dates are passed in because the adapter may have shifted them.
func normalize(rows []hotelRow, checkIn, checkOut time.Time) []domain.NormalizedOffer {
	offers := make([]domain.NormalizedOffer, 0, len(rows))

	for _, row := range rows {
		if row.Name == "" || row.Price <= 0 {
			continue
		}

		availability := availabilityFromFlags(row)
		rooms := make([]domain.RoomOption, 0, len(row.Rooms))
		for i, r := range row.Rooms {
			price := r.Price
			if price <= 0 {
				price = row.Price
			}
			rooms = append(rooms, domain.RoomOption{
				ID:           fmt.Sprintf("%d-%d", row.ID, i),
				Name:         r.Name,
				Price:        price,
				Availability: availability,
				Capacity:     r.Beds,
			})
		}
		if len(rooms) == 0 {
			rooms = append(rooms, domain.RoomOption{
				ID:           fmt.Sprintf("%d-0", row.ID),
				Name:         "Standard Room",
				Price:        row.Price,
				Availability: availability,
			})
		}

		price := row.Price
		for _, r := range rooms {
			if r.Price < price {
				price = r.Price
			}
		}

		currency := strings.ToUpper(strings.TrimSpace(row.Currency))
		if currency == "" {
			currency = "EUR"
		}

		id := fmt.Sprintf("filos-%d", row.ID)
		offers = append(offers, domain.NormalizedOffer{
			ID:           id,
			Provider:     ProviderName,
			HotelName:    strings.TrimSpace(row.Name),
			Location:     formatLocation(row.Resort, row.Country),
			Stars:        clampStars(row.Stars),
			Price:        price,
			Currency:     currency,
			MealPlan:     mealPlanFromBoard(row.Board),
			Availability: availability,
			Rooms:        rooms,
			CheckIn:      checkIn,
			CheckOut:     checkOut,
			Nights:       domain.NightsBetween(checkIn, checkOut),
			Image:        row.Photo,
			Description:  row.Notes,
			Providers:    []domain.ProviderQuote{{Name: ProviderName, ID: id, Price: price}},
			OriginalData: row,
		})
	}
	return offers
}

// availabilityFromFlags maps the Filos stop-sale and on-request flags.
func availabilityFromFlags(row hotelRow) domain.Availability {
	switch {
	case row.OnStop:
		return domain.Unavailable
	case row.Request:
		return domain.OnRequest
	default:
		return domain.Available
	}
}

// mealPlanFromBoard maps Filos board codes to canonical meal plans.
func mealPlanFromBoard(board string) domain.MealPlan {
	switch strings.ToUpper(strings.TrimSpace(board)) {
	case "UAI", "UALL":
		return domain.UltraAllInclusive
	case "AI", "ALL":
		return domain.AllInclusive
	case "FB":
		return domain.FullBoard
	case "HB":
		return domain.HalfBoard
	case "BB", "ND":
		return domain.BedAndBreakfast
	default:
		return domain.RoomOnly
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

func formatLocation(resort, country string) string {
	resort = strings.TrimSpace(resort)
	country = strings.TrimSpace(country)
	switch {
	case resort == "":
		return country
	case country == "":
		return resort
	default:
		return fmt.Sprintf("%s, %s", resort, country)
	}
}
