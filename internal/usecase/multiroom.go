package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// DefaultStaggerDelay spaces the dispatch of successive room
// configurations so suppliers never see the full burst at once.
const DefaultStaggerDelay = 200 * time.Millisecond

// Flexible-date fallback bounds.
const (
	maxDayOffset        = 5
	maxShorterDurations = 2
)

// Searcher is the fan-out dependency of the multi-room engine.
type Searcher interface {
	SearchAll(ctx context.Context, req domain.SearchRequest) (FanOutResult, error)
}

// EngineConfig tunes the multi-room engine.
type EngineConfig struct {
	// StaggerDelay is the per-configuration dispatch spacing;
	// non-positive values fall back to DefaultStaggerDelay
	StaggerDelay time.Duration

	// Key overrides the hotel identity strategy; nil uses domain.IdentityKey
	Key domain.KeyFunc

	// GlobalTimeout bounds one whole Search call including the
	// flexible-date fallback; non-positive means no engine deadline
	GlobalTimeout time.Duration
}

// Engine prices multi-room searches: it dispatches one fan-out per unique
// room configuration per destination, intersects the qualifying hotels
// and assembles per-room results. When the requested dates yield nothing
// it walks nearby date windows and shorter stays.
type Engine struct {
	searcher Searcher
	dedup    *Deduplicator
	key      domain.KeyFunc
	stagger  time.Duration
	timeout  time.Duration
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// NewEngine creates a multi-room engine.
func NewEngine(searcher Searcher, cfg EngineConfig, log zerolog.Logger) *Engine {
	stagger := cfg.StaggerDelay
	if stagger <= 0 {
		stagger = DefaultStaggerDelay
	}
	key := cfg.Key
	if key == nil {
		key = domain.IdentityKey
	}
	return &Engine{
		searcher: searcher,
		dedup:    &Deduplicator{Key: key},
		key:      key,
		stagger:  stagger,
		timeout:  cfg.GlobalTimeout,
		limiter:  rate.NewLimiter(rate.Every(stagger), 1),
		log:      log.With().Str("component", "multiroom_engine").Logger(),
	}
}

// roomConfig is one unique occupant configuration with the original
// allocation indices it answers for.
type roomConfig struct {
	alloc   domain.RoomAllocation
	indices []int
}

// uniqueConfigs drops allocations without adults and collapses identical
// configurations, remembering which original indices each one covers.
func uniqueConfigs(rooms []domain.RoomAllocation) []roomConfig {
	byKey := make(map[string]*roomConfig)
	order := []string{}

	for i, room := range rooms {
		if !room.Valid() {
			continue
		}
		k := room.Key()
		if cfg, ok := byKey[k]; ok {
			cfg.indices = append(cfg.indices, i)
			continue
		}
		byKey[k] = &roomConfig{alloc: room, indices: []int{i}}
		order = append(order, k)
	}

	configs := make([]roomConfig, 0, len(order))
	for _, k := range order {
		configs = append(configs, *byKey[k])
	}
	return configs
}

// Search runs the full multi-room pipeline.
func (e *Engine) Search(ctx context.Context, req domain.MultiSearchRequest) (*domain.MultiSearchResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	configs := uniqueConfigs(req.Rooms)
	searchID := uuid.New().String()
	log := e.log.With().Str("search_id", searchID).Logger()

	log.Info().
		Int("destinations", len(req.Destinations)).
		Int("rooms", len(req.Rooms)).
		Int("configurations", len(configs)).
		Time("check_in", req.CheckIn).
		Time("check_out", req.CheckOut).
		Msg("Multi-room search started")

	meta := newWindowMeta()
	hotels, err := e.searchWindow(ctx, req, configs, req.CheckIn, req.CheckOut, meta)
	if err != nil {
		return nil, err
	}

	resp := &domain.MultiSearchResponse{
		Metadata: domain.SearchMetadata{
			SearchID:         searchID,
			Configurations:   len(configs),
			AcceptedCheckIn:  req.CheckIn,
			AcceptedCheckOut: req.CheckOut,
		},
	}

	if len(hotels) == 0 {
		hotels = e.flexibleFallback(ctx, req, configs, meta, resp, log)
	}

	sort.Slice(hotels, func(i, j int) bool { return hotels[i].TotalPrice < hotels[j].TotalPrice })

	resp.Hotels = hotels
	resp.Metadata.DurationMs = time.Since(start).Milliseconds()
	resp.Metadata.ProvidersQueried = meta.queriedList()
	resp.Metadata.ProvidersFailed = meta.failedList()

	log.Info().
		Int("hotels", len(hotels)).
		Bool("fallback_used", resp.Metadata.FallbackUsed).
		Int64("duration_ms", resp.Metadata.DurationMs).
		Msg("Multi-room search finished")

	return resp, nil
}

// flexibleFallback walks alternative date windows after the requested one
// came up empty: offsets ordered by absolute distance, then shorter stays.
// Every tried window is recorded in the response timeline; the first
// window with results wins.
func (e *Engine) flexibleFallback(ctx context.Context, req domain.MultiSearchRequest, configs []roomConfig, meta *windowMeta, resp *domain.MultiSearchResponse, log zerolog.Logger) []domain.MergedHotel {
	timeline := map[string]domain.TimelineEntry{}
	recordWindow(timeline, req.CheckIn, req.CheckOut, nil)
	resp.Timeline = timeline

	var hotels []domain.MergedHotel
	for _, w := range fallbackWindows(req.CheckIn, req.CheckOut) {
		found, err := e.searchWindow(ctx, req, configs, w.checkIn, w.checkOut, meta)
		if err != nil {
			log.Warn().Err(err).
				Time("check_in", w.checkIn).
				Msg("Fallback window failed")
			continue
		}
		recordWindow(timeline, w.checkIn, w.checkOut, found)

		if len(found) > 0 {
			hotels = found
			resp.Metadata.FallbackUsed = true
			resp.Metadata.AcceptedCheckIn = w.checkIn
			resp.Metadata.AcceptedCheckOut = w.checkOut
			log.Info().
				Time("check_in", w.checkIn).
				Time("check_out", w.checkOut).
				Int("hotels", len(found)).
				Msg("Flexible-date fallback found availability")
			break
		}
	}
	return hotels
}

// dateWindow is one candidate (check-in, check-out) pair.
type dateWindow struct {
	checkIn  time.Time
	checkOut time.Time
}

// fallbackWindows produces the windows to try after the requested dates
// failed: same stay length shifted by +1,-1,..,+5,-5 days, then the
// original check-in with up to two shorter stays (never below one night).
func fallbackWindows(checkIn, checkOut time.Time) []dateWindow {
	nights := domain.NightsBetween(checkIn, checkOut)
	windows := make([]dateWindow, 0, 2*maxDayOffset+maxShorterDurations)

	for offset := 1; offset <= maxDayOffset; offset++ {
		for _, days := range []int{offset, -offset} {
			in := checkIn.AddDate(0, 0, days)
			windows = append(windows, dateWindow{checkIn: in, checkOut: in.AddDate(0, 0, nights)})
		}
	}

	for cut := 1; cut <= maxShorterDurations; cut++ {
		shorter := nights - cut
		if shorter < 1 {
			break
		}
		windows = append(windows, dateWindow{checkIn: checkIn, checkOut: checkIn.AddDate(0, 0, shorter)})
	}
	return windows
}

// recordWindow adds one timeline entry for a tried window.
func recordWindow(timeline map[string]domain.TimelineEntry, checkIn, checkOut time.Time, hotels []domain.MergedHotel) {
	entry := domain.TimelineEntry{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     domain.NightsBetween(checkIn, checkOut),
		Available:  len(hotels) > 0,
		HotelCount: len(hotels),
	}
	for _, h := range hotels {
		if entry.MinPrice == 0 || h.TotalPrice < entry.MinPrice {
			entry.MinPrice = h.TotalPrice
		}
	}
	timeline[domain.TimelineKey(checkIn, entry.Nights)] = entry
}

// windowMeta accumulates provider participation across every window tried.
type windowMeta struct {
	queried   map[string]bool
	failed    map[string]bool
	order     []string
	cacheHits int
}

func newWindowMeta() *windowMeta {
	return &windowMeta{queried: map[string]bool{}, failed: map[string]bool{}}
}

func (m *windowMeta) absorb(r FanOutResult) {
	for _, name := range r.Queried {
		if !m.queried[name] {
			m.queried[name] = true
			m.order = append(m.order, name)
		}
	}
	for _, name := range r.Failed {
		m.failed[name] = true
	}
	m.cacheHits += r.CacheHits
}

func (m *windowMeta) queriedList() []string {
	return append([]string{}, m.order...)
}

func (m *windowMeta) failedList() []string {
	failed := make([]string, 0, len(m.failed))
	for _, name := range m.order {
		if m.failed[name] {
			failed = append(failed, name)
		}
	}
	return failed
}

// configOffer accumulates one hotel's rooms for one configuration across
// destinations and suppliers.
type configOffer struct {
	rep    domain.NormalizedOffer
	rooms  []domain.RoomOption
	quotes map[string]domain.ProviderQuote
}

// dispatchResult is the outcome of one (destination, configuration) fan-out.
type dispatchResult struct {
	cfgIndex int
	offers   []domain.NormalizedOffer
	fanOut   FanOutResult
	err      error
}

// searchWindow prices every unique configuration for every destination on
// one date window and intersects the qualifying hotels.
func (e *Engine) searchWindow(ctx context.Context, req domain.MultiSearchRequest, configs []roomConfig, checkIn, checkOut time.Time, meta *windowMeta) ([]domain.MergedHotel, error) {
	total := len(req.Destinations) * len(configs)
	resultsChan := make(chan dispatchResult, total)

	for _, dest := range req.Destinations {
		for ci, cfg := range configs {
			go e.dispatch(ctx, dest, cfg, ci, req, checkIn, checkOut, resultsChan)
		}
	}

	// Gather, accumulating per-configuration hotel maps.
	byConfig := make([]map[string]*configOffer, len(configs))
	for i := range byConfig {
		byConfig[i] = make(map[string]*configOffer)
	}

	var firstErr error
	for i := 0; i < total; i++ {
		r := <-resultsChan
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		meta.absorb(r.fanOut)

		bucket := byConfig[r.cfgIndex]
		for _, offer := range r.offers {
			k := e.key(&offer)
			co, ok := bucket[k]
			if !ok {
				co = &configOffer{rep: offer, quotes: map[string]domain.ProviderQuote{}}
				co.rooms = append(co.rooms, offer.Rooms...)
				foldQuotes(co.quotes, offer)
				bucket[k] = co
				continue
			}
			// Same hotel reached again (another destination): room
			// options accumulate, they never overwrite.
			co.rooms = append(co.rooms, offer.Rooms...)
			foldQuotes(co.quotes, offer)
			if offer.Price < co.rep.Price {
				co.rep = offer
			}
		}
	}

	// A window where every dispatch failed hard (e.g. no providers) is an
	// error; individual supplier failures inside a fan-out are not.
	allEmpty := true
	for _, bucket := range byConfig {
		if len(bucket) > 0 {
			allEmpty = false
			break
		}
	}
	if firstErr != nil && allEmpty && meta.cacheHits == 0 && len(meta.queried) == 0 {
		return nil, firstErr
	}

	return e.intersect(configs, byConfig, checkIn, checkOut), nil
}

// dispatch runs one staggered fan-out for one destination and configuration.
func (e *Engine) dispatch(ctx context.Context, dest domain.Destination, cfg roomConfig, cfgIndex int, req domain.MultiSearchRequest, checkIn, checkOut time.Time, results chan<- dispatchResult) {
	if err := e.waitTurn(ctx, cfgIndex); err != nil {
		results <- dispatchResult{cfgIndex: cfgIndex, err: err}
		return
	}

	searchReq := domain.SearchRequest{
		Destination:  dest.Name,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       cfg.alloc.Adults,
		Children:     cfg.alloc.Children,
		ChildrenAges: cfg.alloc.ChildrenAges,
		Currency:     req.Currency,
		MealPlan:     req.MealPlan,
		Nationality:  req.Nationality,
		Target:       dest.Target,
	}

	fanOut, err := e.searcher.SearchAll(ctx, searchReq)
	if err != nil {
		results <- dispatchResult{cfgIndex: cfgIndex, err: err}
		return
	}

	results <- dispatchResult{
		cfgIndex: cfgIndex,
		offers:   e.dedup.Merge(fanOut.Offers),
		fanOut:   fanOut,
	}
}

// waitTurn enforces the per-configuration stagger and the global dispatch
// rate so suppliers see a smoothed request stream.
func (e *Engine) waitTurn(ctx context.Context, cfgIndex int) error {
	if delay := time.Duration(cfgIndex) * e.stagger; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return e.limiter.Wait(ctx)
}

// intersect keeps only hotels that satisfy every unique configuration and
// assembles their per-room allocation results.
func (e *Engine) intersect(configs []roomConfig, byConfig []map[string]*configOffer, checkIn, checkOut time.Time) []domain.MergedHotel {
	if len(byConfig) == 0 {
		return nil
	}

	// Iterate the first configuration's hotels in a stable order.
	first := byConfig[0]
	keys := make([]string, 0, len(first))
	for k := range first {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hotels := make([]domain.MergedHotel, 0, len(keys))
	for _, k := range keys {
		qualifies := true
		for _, bucket := range byConfig[1:] {
			if _, ok := bucket[k]; !ok {
				qualifies = false
				break
			}
		}
		if !qualifies {
			continue
		}

		base := first[k].rep
		hotel := domain.MergedHotel{
			MasterID:    k,
			Name:        base.HotelName,
			Location:    base.Location,
			Stars:       base.Stars,
			Provider:    base.Provider,
			Currency:    base.Currency,
			MealPlan:    base.MealPlan,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Image:       base.Image,
			Description: base.Description,
		}

		quotes := map[string]domain.ProviderQuote{}
		for ci, cfg := range configs {
			co := byConfig[ci][k]
			for name, q := range co.quotes {
				if existing, ok := quotes[name]; !ok || q.Price < existing.Price {
					quotes[name] = q
				}
			}
			for _, idx := range cfg.indices {
				hotel.AttachAllocation(idx, co.rooms)
			}
			if hotel.Image == "" {
				hotel.Image = co.rep.Image
			}
			if hotel.Description == "" {
				hotel.Description = co.rep.Description
			}
		}

		hotel.Providers = make([]domain.ProviderQuote, 0, len(quotes))
		for _, q := range quotes {
			hotel.Providers = append(hotel.Providers, q)
		}
		sort.Slice(hotel.Providers, func(i, j int) bool {
			return hotel.Providers[i].Price < hotel.Providers[j].Price
		})

		hotels = append(hotels, hotel)
	}
	return hotels
}

// foldQuotes folds one offer's provider quotes into the per-hotel union.
func foldQuotes(quotes map[string]domain.ProviderQuote, offer domain.NormalizedOffer) {
	incoming := offer.Providers
	if len(incoming) == 0 {
		incoming = []domain.ProviderQuote{{Name: offer.Provider, ID: offer.ID, Price: offer.Price}}
	}
	for _, q := range incoming {
		if existing, ok := quotes[q.Name]; !ok || q.Price < existing.Price {
			quotes[q.Name] = q
		}
	}
}

// Ensure the manager satisfies the engine's dependency at compile time.
var _ Searcher = (*ProviderManager)(nil)
