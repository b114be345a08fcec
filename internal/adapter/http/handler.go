// Package http provides the HTTP handler layer for the hotel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/http/response"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// MultiSearcher runs the full multi-room search pipeline.
// *usecase.Engine satisfies it.
type MultiSearcher interface {
	Search(ctx context.Context, req domain.MultiSearchRequest) (*domain.MultiSearchResponse, error)
}

// ProviderDirectory exposes single-supplier search and supplier
// introspection. *usecase.ProviderManager satisfies it.
type ProviderDirectory interface {
	SearchProvider(ctx context.Context, name string, req domain.SearchRequest) ([]domain.NormalizedOffer, error)
	Stats() domain.ProviderStats
}

// HotelHandler handles HTTP requests for hotel search endpoints.
type HotelHandler struct {
	engine  MultiSearcher
	manager ProviderDirectory
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(engine MultiSearcher, manager ProviderDirectory) *HotelHandler {
	return &HotelHandler{
		engine:  engine,
		manager: manager,
	}
}

// SearchHotels handles POST /api/v1/hotels/search
//
// @Summary Search for hotels
// @Description Multi-room hotel search across all active suppliers, with cross-supplier deduplication and flexible-date fallback
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body SearchHotelsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/hotels/search [post]
func (h *HotelHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.engine.Search(c.Request().Context(), ToDomainMultiRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// SearchProvider handles POST /api/v1/providers/:name/search
//
// @Summary Search one supplier
// @Description Single-configuration search against one named supplier, bypassing the fan-out
// @Tags providers
// @Accept json
// @Produce json
// @Param name path string true "Supplier name"
// @Param request body SearchProviderRequest true "Search criteria"
// @Success 200 {object} ProviderSearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown supplier"
// @Failure 409 {object} response.ErrorDetail "Supplier disabled"
// @Router /api/v1/providers/{name}/search [post]
func (h *HotelHandler) SearchProvider(c echo.Context) error {
	name := c.Param("name")

	var req SearchProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := h.manager.SearchProvider(c.Request().Context(), name, ToDomainSearchRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToProviderSearchResponseDTO(name, offers))
}

// ProviderStats handles GET /api/v1/providers/stats
//
// @Summary Supplier status
// @Description Operational state of every registered supplier
// @Tags providers
// @Produce json
// @Success 200 {object} domain.ProviderStats
// @Router /api/v1/providers/stats [get]
func (h *HotelHandler) ProviderStats(c echo.Context) error {
	return response.OK(c, h.manager.Stats())
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *HotelHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *HotelHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNoProviders) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, domain.ErrProviderNotFound) {
		return response.NotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrProviderInactive) {
		return response.Conflict(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *HotelHandler) Health(c echo.Context) error {
	return response.Health(c)
}
