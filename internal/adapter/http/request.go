// Package http provides the HTTP handler layer for the hotel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// SearchHotelsRequest represents the request body for multi-room hotel search.
type SearchHotelsRequest struct {
	// Destinations lists the locations to search (1 or more)
	Destinations []DestinationDTO `json:"destinations"`

	// CheckIn is the desired arrival date in YYYY-MM-DD format
	CheckIn string `json:"checkIn"`

	// CheckOut is the desired departure date in YYYY-MM-DD format
	CheckOut string `json:"checkOut"`

	// Rooms lists the occupant configuration of each room (1-5)
	Rooms []RoomDTO `json:"rooms"`

	// Currency is the preferred ISO 4217 currency code (optional)
	Currency string `json:"currency,omitempty"`

	// MealPlan is an optional board basis preference: RO, BB, HB, FB, AI, UAI
	MealPlan string `json:"mealPlan,omitempty"`

	// Nationality is the guests' nationality code (optional)
	Nationality string `json:"nationality,omitempty"`
}

// DestinationDTO is one searched location.
type DestinationDTO struct {
	// Name is the free-text destination (city, region)
	Name string `json:"name"`

	// Target optionally pins the destination to a supplier-internal id
	Target *TargetDTO `json:"target,omitempty"`
}

// TargetDTO pins a destination to one supplier's internal identifier.
type TargetDTO struct {
	// Provider is the supplier the id belongs to (e.g. "Solvex")
	Provider string `json:"provider"`

	// ID is the supplier-internal identifier
	ID string `json:"id"`

	// Type says whether ID names a "city" or a "hotel"
	Type string `json:"type"`
}

// RoomDTO is the occupant configuration of one room.
type RoomDTO struct {
	// Adults is the number of adults in this room
	Adults int `json:"adults"`

	// Children is the number of children in this room
	Children int `json:"children"`

	// ChildrenAges holds one age (0-17) per child
	ChildrenAges []int `json:"childrenAges,omitempty"`
}

// SearchProviderRequest represents the request body for an explicit
// single-supplier search.
type SearchProviderRequest struct {
	// Destination is the free-text destination
	Destination string `json:"destination"`

	// CheckIn is the desired arrival date in YYYY-MM-DD format
	CheckIn string `json:"checkIn"`

	// CheckOut is the desired departure date in YYYY-MM-DD format
	CheckOut string `json:"checkOut"`

	// Adults is the number of adult guests
	Adults int `json:"adults"`

	// Children is the number of child guests
	Children int `json:"children"`

	// ChildrenAges holds one age per child
	ChildrenAges []int `json:"childrenAges,omitempty"`

	// Currency is the preferred ISO 4217 currency code (optional)
	Currency string `json:"currency,omitempty"`

	// Nationality is the guests' nationality code (optional)
	Nationality string `json:"nationality,omitempty"`
}

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid meal plan codes (empty means no preference).
var validMealPlans = map[string]bool{
	"":    true,
	"RO":  true,
	"BB":  true,
	"HB":  true,
	"FB":  true,
	"AI":  true,
	"UAI": true,
}

// Valid target types.
var validTargetTypes = map[string]bool{
	"city":  true,
	"hotel": true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the multi-room search request and returns any
// validation errors.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateDestinations(errs)
	validateDateRange(errs, r.CheckIn, r.CheckOut)
	r.validateRooms(errs)
	r.validateMealPlan(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchHotelsRequest) validateDestinations(errs *ValidationErrors) {
	if len(r.Destinations) == 0 {
		errs.Add("destinations", "at least one destination is required")
		return
	}
	for i, d := range r.Destinations {
		if strings.TrimSpace(d.Name) == "" && d.Target == nil {
			errs.Add(fmt.Sprintf("destinations[%d]", i), "destination needs a name or a target")
		}
		if d.Target != nil {
			if d.Target.Provider == "" || d.Target.ID == "" {
				errs.Add(fmt.Sprintf("destinations[%d].target", i), "target needs provider and id")
			}
			if !validTargetTypes[d.Target.Type] {
				errs.Add(fmt.Sprintf("destinations[%d].target.type", i), "target type must be one of: city, hotel")
			}
		}
	}
}

func (r *SearchHotelsRequest) validateRooms(errs *ValidationErrors) {
	if len(r.Rooms) == 0 {
		errs.Add("rooms", "at least one room is required")
		return
	}
	if len(r.Rooms) > domain.MaxRoomAllocations {
		errs.Add("rooms", fmt.Sprintf("at most %d rooms are supported", domain.MaxRoomAllocations))
		return
	}

	hasAdults := false
	for i, room := range r.Rooms {
		if room.Adults < 0 {
			errs.Add(fmt.Sprintf("rooms[%d].adults", i), "adults cannot be negative")
		}
		if room.Adults >= 1 {
			hasAdults = true
		}
		if room.Children < 0 {
			errs.Add(fmt.Sprintf("rooms[%d].children", i), "children cannot be negative")
			continue
		}
		if len(room.ChildrenAges) != room.Children {
			errs.Add(fmt.Sprintf("rooms[%d].childrenAges", i),
				fmt.Sprintf("expected %d ages, got %d", room.Children, len(room.ChildrenAges)))
			continue
		}
		for j, age := range room.ChildrenAges {
			if age < 0 || age > 17 {
				errs.Add(fmt.Sprintf("rooms[%d].childrenAges[%d]", i, j), "child age must be between 0 and 17")
			}
		}
	}
	if !hasAdults {
		errs.Add("rooms", "at least one room needs an adult")
	}
}

func (r *SearchHotelsRequest) validateMealPlan(errs *ValidationErrors) {
	if !validMealPlans[strings.ToUpper(r.MealPlan)] {
		errs.Add("mealPlan", "mealPlan must be one of: RO, BB, HB, FB, AI, UAI")
	}
}

// Validate validates the single-supplier search request.
func (r *SearchProviderRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}
	validateDateRange(errs, r.CheckIn, r.CheckOut)
	if r.Adults < 1 {
		errs.Add("adults", "at least one adult is required")
	}
	if r.Children < 0 {
		errs.Add("children", "children cannot be negative")
	} else if len(r.ChildrenAges) != r.Children {
		errs.Add("childrenAges", fmt.Sprintf("expected %d ages, got %d", r.Children, len(r.ChildrenAges)))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateDateRange checks the shared check-in/check-out fields.
func validateDateRange(errs *ValidationErrors, checkIn, checkOut string) {
	in, inOK := parseDateField(errs, "checkIn", checkIn)
	out, outOK := parseDateField(errs, "checkOut", checkOut)
	if inOK && outOK && !out.After(in) {
		errs.Add("checkOut", "checkOut must be after checkIn")
	}
}

func parseDateField(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}
