package http

import (
	"strings"
	"time"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// ToDomainMultiRequest converts a validated SearchHotelsRequest to a
// domain.MultiSearchRequest. Dates are assumed to have passed Validate.
func ToDomainMultiRequest(req *SearchHotelsRequest) domain.MultiSearchRequest {
	checkIn, _ := time.Parse(dateFormat, req.CheckIn)
	checkOut, _ := time.Parse(dateFormat, req.CheckOut)

	destinations := make([]domain.Destination, len(req.Destinations))
	for i, d := range req.Destinations {
		destinations[i] = domain.Destination{
			Name:   strings.TrimSpace(d.Name),
			Target: toDomainTarget(d.Target),
		}
	}

	rooms := make([]domain.RoomAllocation, len(req.Rooms))
	for i, room := range req.Rooms {
		rooms[i] = domain.RoomAllocation{
			Adults:       room.Adults,
			Children:     room.Children,
			ChildrenAges: room.ChildrenAges,
		}
	}

	return domain.MultiSearchRequest{
		Destinations: destinations,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Rooms:        rooms,
		Currency:     strings.ToUpper(req.Currency),
		MealPlan:     domain.MealPlan(strings.ToUpper(req.MealPlan)),
		Nationality:  strings.ToUpper(req.Nationality),
	}
}

// ToDomainSearchRequest converts a validated SearchProviderRequest to a
// domain.SearchRequest.
func ToDomainSearchRequest(req *SearchProviderRequest) domain.SearchRequest {
	checkIn, _ := time.Parse(dateFormat, req.CheckIn)
	checkOut, _ := time.Parse(dateFormat, req.CheckOut)

	return domain.SearchRequest{
		Destination:  strings.TrimSpace(req.Destination),
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       req.Adults,
		Children:     req.Children,
		ChildrenAges: req.ChildrenAges,
		Currency:     strings.ToUpper(req.Currency),
		Nationality:  strings.ToUpper(req.Nationality),
	}
}

func toDomainTarget(dto *TargetDTO) *domain.ProviderTarget {
	if dto == nil {
		return nil
	}
	return &domain.ProviderTarget{
		Provider: dto.Provider,
		ID:       dto.ID,
		Type:     domain.TargetType(dto.Type),
	}
}
