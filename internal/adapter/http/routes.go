// Package http provides the HTTP handler layer for the hotel search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all hotel search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *HotelHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Hotels group
	hotels := api.Group("/hotels")
	hotels.POST("/search", h.SearchHotels)

	// Providers group
	providers := api.Group("/providers")
	providers.GET("/stats", h.ProviderStats)
	providers.POST("/:name/search", h.SearchProvider)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *HotelHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Hotels group
	hotels := api.Group("/hotels")
	hotels.POST("/search", h.SearchHotels)

	// Providers group
	providers := api.Group("/providers")
	providers.GET("/stats", h.ProviderStats)
	providers.POST("/:name/search", h.SearchProvider)
}
