// Package integration provides helpers and integration tests for the hotel
// search system. Integration tests verify that components work together
// correctly, including HTTP handlers, the search pipeline, and mock suppliers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/http"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/alert"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/cache"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/usecase"
)

// TestServer wraps an Echo instance with a fully wired search pipeline and
// provides helper methods for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Registry *domain.ProviderRegistry
	Manager  *usecase.ProviderManager
	Engine   *usecase.Engine
	Bus      *alert.Bus
}

// NewTestServer wires the full pipeline over the given suppliers: registry,
// in-memory cache, alert bus, provider manager, multi-room engine, handler.
func NewTestServer(providers ...domain.HotelProvider) *TestServer {
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}

	log := zerolog.Nop()
	bus := alert.NewBus(log)
	store := cache.NewMemory(time.Minute)
	manager := usecase.NewProviderManager(registry, store, bus, nil, log)
	engine := usecase.NewEngine(manager, usecase.EngineConfig{
		StaggerDelay: time.Millisecond,
	}, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHotelHandler(engine, manager)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Registry: registry,
		Manager:  manager,
		Engine:   engine,
		Bus:      bus,
	}
}

// Close releases the server's resources.
func (ts *TestServer) Close() {
	ts.Bus.Close()
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a multi-room search request.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/hotels/search",
		Body:   body,
	})
}

// ProviderSearchRequest posts a single-supplier search request.
func (ts *TestServer) ProviderSearchRequest(name string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/providers/" + name + "/search",
		Body:   body,
	})
}

// StatsRequest fetches the supplier stats.
func (ts *TestServer) StatsRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/providers/stats",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseProviderResponse parses the response body as a single-supplier response.
func (r *Response) ParseProviderResponse() (*httpAdapter.ProviderSearchResponseDTO, error) {
	var resp httpAdapter.ProviderSearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSearchRequest returns a valid multi-room search request body.
func DefaultSearchRequest() httpAdapter.SearchHotelsRequest {
	return httpAdapter.SearchHotelsRequest{
		Destinations: []httpAdapter.DestinationDTO{{Name: "Bansko"}},
		CheckIn:      "2026-01-10",
		CheckOut:     "2026-01-17",
		Rooms: []httpAdapter.RoomDTO{
			{Adults: 2},
		},
	}
}

// DefaultProviderRequest returns a valid single-supplier search request body.
func DefaultProviderRequest() httpAdapter.SearchProviderRequest {
	return httpAdapter.SearchProviderRequest{
		Destination: "Bansko",
		CheckIn:     "2026-01-10",
		CheckOut:    "2026-01-17",
		Adults:      2,
	}
}

// DefaultMultiRequest returns a valid domain-level multi-room request for
// driving the engine directly.
func DefaultMultiRequest() domain.MultiSearchRequest {
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return domain.MultiSearchRequest{
		Destinations: []domain.Destination{{Name: "Bansko"}},
		CheckIn:      checkIn,
		CheckOut:     checkIn.AddDate(0, 0, 7),
		Rooms:        []domain.RoomAllocation{{Adults: 2}},
	}
}
