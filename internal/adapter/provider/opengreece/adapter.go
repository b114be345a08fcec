// Package opengreece integrates the OpenGreece accommodation gateway,
// which covers Greek destinations only.
package opengreece

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the OpenGreece provider.
const ProviderName = "OpenGreece"

const defaultTimeout = 20 * time.Second

// Config holds the OpenGreece connection settings.
type Config struct {
	Endpoint string
	Username string
	Password string
	Enabled  bool
}

// Adapter implements domain.HotelProvider for OpenGreece.
type Adapter struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

// NewAdapter creates an OpenGreece adapter.
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

// Authenticate implements domain.HotelProvider. OpenGreece uses HTTP
// Basic auth on every call, so the handshake just verifies credentials.
func (a *Adapter) Authenticate(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.Endpoint+"/api/ping", nil)
	if err != nil {
		return domain.NewAuthError(ProviderName, err)
	}
	req.SetBasicAuth(a.cfg.Username, a.cfg.Password)

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.NewAuthError(ProviderName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domain.NewAuthError(ProviderName, fmt.Errorf("credentials rejected with status %d", resp.StatusCode))
	}
	return nil
}

// availabilityQuery is the OpenGreece search payload.
type availabilityQuery struct {
	LocationCode string `json:"locationCode"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	ChildrenAges []int  `json:"childrenAges,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

// availabilityReply wraps the OpenGreece result set.
type availabilityReply struct {
	Properties []propertyResult `json:"properties"`
	Message    string           `json:"message,omitempty"`
}

// Search implements domain.HotelProvider.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.NormalizedOffer, error) {
	location := resolveLocation(req)
	if location == "" {
		// OpenGreece only sells Greek destinations; anything else is a no-match.
		a.log.Debug().Str("destination", req.Destination).Msg("Destination outside OpenGreece coverage")
		return []domain.NormalizedOffer{}, nil
	}

	payload, err := json.Marshal(availabilityQuery{
		LocationCode: location,
		CheckIn:      timeutil.FormatDate(req.CheckIn),
		CheckOut:     timeutil.FormatDate(req.CheckOut),
		Adults:       req.Adults,
		Children:     req.Children,
		ChildrenAges: req.ChildrenAges,
		Nationality:  req.Nationality,
	})
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint+"/api/availability", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(a.cfg.Username, a.cfg.Password)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.NewAuthError(ProviderName, fmt.Errorf("credentials rejected"))
	case resp.StatusCode >= 500:
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("gateway status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var reply availabilityReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode availability reply: %w", err))
	}

	return normalize(reply.Properties, req), nil
}

// resolveLocation picks the OpenGreece location code for the request,
// preferring an explicit supplier target over free-text matching.
func resolveLocation(req domain.SearchRequest) string {
	if t := req.Target; t != nil && t.Provider == ProviderName && t.Type == domain.TargetCity {
		return t.ID
	}
	return resolveLocationCode(req.Destination)
}

var _ domain.HotelProvider = (*Adapter)(nil)
