// Package solvex integrates the Solvex (Master-Interlook) booking gateway.
// This package is the only code allowed to know Solvex request and response
// shapes; everything it returns is expressed in the shared domain model.
package solvex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the Solvex provider.
const ProviderName = "Solvex"

// defaultTimeout bounds every Solvex HTTP call. The adapter, not the
// orchestrator, owns this deadline.
const defaultTimeout = 15 * time.Second

// Config holds the Solvex connection settings.
type Config struct {
	Endpoint string
	Username string
	Password string
	Enabled  bool
}

// Adapter implements domain.HotelProvider for Solvex.
type Adapter struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewAdapter creates a Solvex adapter.
func NewAdapter(cfg Config, log zerolog.Logger) *Adapter {
	return &Adapter{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
		log:    log.With().Str("provider", ProviderName).Logger(),
	}
}

// Name implements domain.HotelProvider.
func (a *Adapter) Name() string { return ProviderName }

// IsActive implements domain.HotelProvider.
func (a *Adapter) IsActive() bool { return a.cfg.Enabled && a.IsConfigured() }

// IsConfigured implements domain.HotelProvider.
func (a *Adapter) IsConfigured() bool {
	return a.cfg.Endpoint != "" && a.cfg.Username != "" && a.cfg.Password != ""
}

// connectRequest is the Solvex session handshake payload.
type connectRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// connectResponse is the Solvex session handshake result.
type connectResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// Authenticate implements domain.HotelProvider. Solvex issues a session
// token that subsequent search calls must carry.
func (a *Adapter) Authenticate(ctx context.Context) error {
	a.mu.RLock()
	haveToken := a.token != ""
	a.mu.RUnlock()
	if haveToken {
		return nil
	}

	body, err := json.Marshal(connectRequest{Login: a.cfg.Username, Password: a.cfg.Password})
	if err != nil {
		return domain.NewAuthError(ProviderName, err)
	}

	var resp connectResponse
	if err := a.post(ctx, "/Connect", body, &resp); err != nil {
		return domain.NewAuthError(ProviderName, err)
	}
	if resp.Token == "" {
		return domain.NewAuthError(ProviderName, fmt.Errorf("no session token returned: %s", resp.Error))
	}

	a.mu.Lock()
	a.token = resp.Token
	a.mu.Unlock()
	return nil
}

// searchRequest is the Solvex hotel service search payload.
type searchRequest struct {
	Token        string `json:"token"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	ChildrenAges []int  `json:"childrenAges,omitempty"`
	CityKey      int    `json:"cityKey,omitempty"`
	HotelKey     int    `json:"hotelKey,omitempty"`
}

// searchResponse wraps the Solvex search result rows.
type searchResponse struct {
	Services []serviceRow `json:"services"`
	Error    string       `json:"error,omitempty"`
}

// Search implements domain.HotelProvider. Solvex returns one row per
// (hotel, room type, pansion); rows are grouped into offers before they
// leave this package.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.NormalizedOffer, error) {
	cityKey, hotelKey := a.resolveTarget(req)
	if cityKey == 0 && hotelKey == 0 {
		// Unresolved destination is a valid no-match outcome, not an error.
		a.log.Debug().Str("destination", req.Destination).Msg("Destination not in Solvex catalogue")
		return []domain.NormalizedOffer{}, nil
	}

	a.mu.RLock()
	token := a.token
	a.mu.RUnlock()

	payload, err := json.Marshal(searchRequest{
		Token:        token,
		DateFrom:     timeutil.FormatDate(req.CheckIn),
		DateTo:       timeutil.FormatDate(req.CheckOut),
		Adults:       req.Adults,
		Children:     req.Children,
		ChildrenAges: req.ChildrenAges,
		CityKey:      cityKey,
		HotelKey:     hotelKey,
	})
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	var resp searchResponse
	if err := a.post(ctx, "/SearchHotelServices", payload, &resp); err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	if resp.Error != "" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("gateway error: %s", resp.Error))
	}

	return normalize(resp.Services, req), nil
}

// resolveTarget picks the Solvex city or hotel key for the request,
// preferring an explicit supplier target over free-text resolution.
func (a *Adapter) resolveTarget(req domain.SearchRequest) (cityKey, hotelKey int) {
	if t := req.Target; t != nil && t.Provider == ProviderName {
		id, err := strconv.Atoi(t.ID)
		if err == nil {
			switch t.Type {
			case domain.TargetCity:
				return id, 0
			case domain.TargetHotel:
				return 0, id
			}
		}
	}
	return resolveCityKey(req.Destination), 0
}

// post sends one JSON request to the Solvex gateway and decodes the reply.
func (a *Adapter) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Ensure Adapter implements HotelProvider at compile time.
var _ domain.HotelProvider = (*Adapter)(nil)
