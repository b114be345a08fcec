// Package domain contains the core business entities and rules for the hotel search system.
// These entities are supplier-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultNationality is assumed when the caller does not specify one.
const DefaultNationality = "RS"

// MaxRoomAllocations is the maximum number of rooms a single search may price.
const MaxRoomAllocations = 5

// TargetType identifies what a supplier-specific target id refers to.
type TargetType string

// Supported target types.
const (
	TargetCity  TargetType = "city"
	TargetHotel TargetType = "hotel"
)

// ProviderTarget carries a supplier-internal identifier that bypasses
// free-text destination resolution for that supplier.
type ProviderTarget struct {
	// Provider is the supplier the id belongs to (e.g. "Solvex")
	Provider string `json:"provider"`

	// ID is the supplier-internal identifier
	ID string `json:"id"`

	// Type says whether ID names a city or a single hotel
	Type TargetType `json:"type"`
}

// SearchRequest defines the parameters for a single-configuration hotel search.
// It is what the orchestrator hands to every supplier adapter.
type SearchRequest struct {
	// Destination is a free-text destination (city, region) resolved per adapter
	Destination string `json:"destination"`

	// CheckIn is the desired arrival date
	CheckIn time.Time `json:"checkIn"`

	// CheckOut is the desired departure date (must be after CheckIn)
	CheckOut time.Time `json:"checkOut"`

	// Adults is the number of adult guests (>= 1)
	Adults int `json:"adults"`

	// Children is the number of child guests
	Children int `json:"children"`

	// ChildrenAges holds one age (0-17) per child
	ChildrenAges []int `json:"childrenAges,omitempty"`

	// Currency is the preferred ISO 4217 currency code
	Currency string `json:"currency,omitempty"`

	// MealPlan is an optional canonical meal-plan preference
	MealPlan MealPlan `json:"mealPlan,omitempty"`

	// Nationality is the guests' nationality code (defaults to DefaultNationality)
	Nationality string `json:"nationality,omitempty"`

	// Target optionally pins the search to a supplier-internal id
	Target *ProviderTarget `json:"target,omitempty"`
}

// Nights returns the stay length implied by the requested dates.
func (r *SearchRequest) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// NightsBetween computes the number of nights between two dates,
// rounding partial days up.
func NightsBetween(checkIn, checkOut time.Time) int {
	const day = 24 * time.Hour
	d := checkOut.Sub(checkIn)
	nights := int(d / day)
	if d%day > 0 {
		nights++
	}
	return nights
}

// Validate checks the search request before any supplier is contacted.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" && r.Target == nil {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidRequest)
	}
	if !r.CheckOut.After(r.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRequest)
	}
	if r.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidRequest)
	}
	if r.Children < 0 {
		return fmt.Errorf("%w: children count cannot be negative", ErrInvalidRequest)
	}
	if len(r.ChildrenAges) != r.Children {
		return fmt.Errorf("%w: expected %d children ages, got %d", ErrInvalidRequest, r.Children, len(r.ChildrenAges))
	}
	for _, age := range r.ChildrenAges {
		if age < 0 || age > 17 {
			return fmt.Errorf("%w: child age must be between 0 and 17, got %d", ErrInvalidRequest, age)
		}
	}
	return nil
}

// RoomAllocation describes the occupant configuration of one physically
// distinct room in a multi-room search.
type RoomAllocation struct {
	// Adults is the number of adults in this room (>= 1 for a valid allocation)
	Adults int `json:"adults"`

	// Children is the number of children in this room
	Children int `json:"children"`

	// ChildrenAges holds one age per child
	ChildrenAges []int `json:"childrenAges,omitempty"`
}

// Key returns a stable identity for the occupant configuration.
// Allocations with the same adults, children and sorted ages are
// interchangeable and only need to be priced once.
func (a RoomAllocation) Key() string {
	ages := make([]int, len(a.ChildrenAges))
	copy(ages, a.ChildrenAges)
	sort.Ints(ages)

	var b strings.Builder
	fmt.Fprintf(&b, "a%d-c%d", a.Adults, a.Children)
	for _, age := range ages {
		fmt.Fprintf(&b, "-%d", age)
	}
	return b.String()
}

// Valid reports whether the allocation can be priced at all.
// A room without adults is never sent to a supplier.
func (a RoomAllocation) Valid() bool {
	return a.Adults >= 1 && a.Children >= 0 && len(a.ChildrenAges) == a.Children
}

// Destination is one searched location in a multi-room request.
type Destination struct {
	// Name is the free-text destination name
	Name string `json:"name"`

	// Target optionally pins this destination to a supplier-internal id
	Target *ProviderTarget `json:"target,omitempty"`
}

// MultiSearchRequest is the entry-point request: one or more destinations
// priced for up to MaxRoomAllocations independently configured rooms.
type MultiSearchRequest struct {
	Destinations []Destination    `json:"destinations"`
	CheckIn      time.Time        `json:"checkIn"`
	CheckOut     time.Time        `json:"checkOut"`
	Rooms        []RoomAllocation `json:"rooms"`
	Currency     string           `json:"currency,omitempty"`
	MealPlan     MealPlan         `json:"mealPlan,omitempty"`
	Nationality  string           `json:"nationality,omitempty"`
}

// Nights returns the requested stay length.
func (r *MultiSearchRequest) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// Validate checks the multi-room request before any work is dispatched.
func (r *MultiSearchRequest) Validate() error {
	if len(r.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination is required", ErrInvalidRequest)
	}
	for i, d := range r.Destinations {
		if strings.TrimSpace(d.Name) == "" && d.Target == nil {
			return fmt.Errorf("%w: destination %d has no name or target", ErrInvalidRequest, i)
		}
	}
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidRequest)
	}
	if !r.CheckOut.After(r.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRequest)
	}
	if len(r.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room allocation is required", ErrInvalidRequest)
	}
	if len(r.Rooms) > MaxRoomAllocations {
		return fmt.Errorf("%w: at most %d room allocations are supported, got %d", ErrInvalidRequest, MaxRoomAllocations, len(r.Rooms))
	}
	valid := 0
	for _, room := range r.Rooms {
		if room.Valid() {
			valid++
		}
	}
	if valid == 0 {
		return fmt.Errorf("%w: no room allocation has at least one adult", ErrInvalidRequest)
	}
	return nil
}
