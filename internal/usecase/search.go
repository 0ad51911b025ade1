package usecase

import (
	"context"
	"sync"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
)

// updateBuffer bounds the updates channel. Slow consumers lose the oldest
// pending update, never the mapping between key and result.
const updateBuffer = 16

// SearchUpdate is published whenever a search settles: a fresh response, a
// cache hit, or a failure. Key identifies the query the update belongs to.
type SearchUpdate struct {
	Key       string
	Result    *domain.SearchResult
	Err       error
	FromCache bool
}

// SearchState is a point-in-time view of the orchestrator.
type SearchState struct {
	// Query is the active composite query ("" key when no search ran yet)
	Query domain.SearchQuery

	// Result is the last result for the active query, nil while loading
	Result *domain.SearchResult

	// Loading reports whether a request for the active query is in flight
	Loading bool

	// Err is the failure of the last settled request for the active query
	Err error
}

// CanNextPage reports whether the "Next" control should be enabled.
func (s SearchState) CanNextPage() bool {
	return s.Result != nil && s.Result.Pagination.HasNext()
}

// CanPreviousPage reports whether the "Previous" control should be enabled.
func (s SearchState) CanPreviousPage() bool {
	return s.Query.Page > 1
}

// SearchOrchestrator combines the debounced query projection with the filter
// panel state and the current page, and issues a search whenever the
// composite key changes. Every outgoing request is tagged with its key; a
// response whose key no longer matches the current one is discarded, so a
// stale result is never surfaced. Results are cached by structural key: the
// same destination, dates, counts, filters and page never issue a duplicate
// request.
type SearchOrchestrator struct {
	backend domain.HotelSearcher
	log     *logger.Logger

	mu         sync.Mutex
	query      domain.DebouncedQuery
	hasQuery   bool
	filters    domain.FilterState
	page       int
	currentKey string
	loading    bool
	lastErr    error
	cache      map[string]*domain.SearchResult
	closed     bool

	updates chan SearchUpdate
}

// NewSearchOrchestrator creates an orchestrator over the given search backend.
func NewSearchOrchestrator(backend domain.HotelSearcher, log *logger.Logger) *SearchOrchestrator {
	return &SearchOrchestrator{
		backend: backend,
		log:     log.WithComponent("search"),
		filters: domain.NewFilterState(),
		page:    1,
		cache:   map[string]*domain.SearchResult{},
		updates: make(chan SearchUpdate, updateBuffer),
	}
}

// Updates returns the channel search settlements are published on.
func (o *SearchOrchestrator) Updates() <-chan SearchUpdate {
	return o.updates
}

// ApplyQuery installs a settled projection from the debounce stage. Changing
// the destination resets the page to 1: a new destination starts a new result
// set, so a stale page position would be meaningless.
func (o *SearchOrchestrator) ApplyQuery(ctx context.Context, query domain.DebouncedQuery) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.hasQuery && query.Destination != o.query.Destination {
		o.page = 1
	}
	o.query = query
	o.hasQuery = true
	o.submitLocked(ctx)
}

// ToggleStar selects or deselects a star-rating filter value.
func (o *SearchOrchestrator) ToggleStar(ctx context.Context, star string, selected bool) {
	o.mutateFilters(ctx, func(f *domain.FilterState) { f.ToggleStar(star, selected) })
}

// ToggleType selects or deselects a hotel-type filter value.
func (o *SearchOrchestrator) ToggleType(ctx context.Context, hotelType string, selected bool) {
	o.mutateFilters(ctx, func(f *domain.FilterState) { f.ToggleType(hotelType, selected) })
}

// ToggleFacility selects or deselects a facility filter value.
func (o *SearchOrchestrator) ToggleFacility(ctx context.Context, facility string, selected bool) {
	o.mutateFilters(ctx, func(f *domain.FilterState) { f.ToggleFacility(facility, selected) })
}

// SetMaxPrice sets or clears the nightly price ceiling.
func (o *SearchOrchestrator) SetMaxPrice(ctx context.Context, price *int) {
	o.mutateFilters(ctx, func(f *domain.FilterState) { f.SetMaxPrice(price) })
}

// SetSort sets the result ordering.
func (o *SearchOrchestrator) SetSort(ctx context.Context, sort domain.SortOption) {
	o.mutateFilters(ctx, func(f *domain.FilterState) { f.SetSort(sort) })
}

// ClearFilters resets every filter field simultaneously.
func (o *SearchOrchestrator) ClearFilters(ctx context.Context) {
	o.mutateFilters(ctx, func(f *domain.FilterState) { f.Clear() })
}

// mutateFilters applies a filter change. Any filter change resets the page to
// 1: the filtered result set may be shorter than the old page position.
func (o *SearchOrchestrator) mutateFilters(ctx context.Context, fn func(*domain.FilterState)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(&o.filters)
	o.page = 1
	o.submitLocked(ctx)
}

// Filters returns a snapshot of the filter panel state.
func (o *SearchOrchestrator) Filters() domain.FilterState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.filters.Clone()
}

// SetPage moves to the given 1-based page.
func (o *SearchOrchestrator) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.page = page
	o.submitLocked(ctx)
}

// NextPage advances to the backend-reported next page. Returns false when
// there is no next page (the control is disabled).
func (o *SearchOrchestrator) NextPage(ctx context.Context) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	result := o.cache[o.currentKey]
	if result == nil || !result.Pagination.HasNext() {
		return false
	}
	o.page = *result.Pagination.NextPage
	o.submitLocked(ctx)
	return true
}

// PreviousPage moves back one page. Returns false on page 1 (the control is
// disabled).
func (o *SearchOrchestrator) PreviousPage(ctx context.Context) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.page <= 1 {
		return false
	}
	o.page--
	o.submitLocked(ctx)
	return true
}

// Snapshot returns the current orchestrator state.
func (o *SearchOrchestrator) Snapshot() SearchState {
	o.mu.Lock()
	defer o.mu.Unlock()
	state := SearchState{
		Loading: o.loading,
		Err:     o.lastErr,
	}
	if o.hasQuery {
		state.Query = domain.NewSearchQuery(o.query, o.filters, o.page)
		state.Result = o.cache[o.currentKey]
	}
	return state
}

// Close stops the orchestrator. In-flight responses arriving after Close are
// dropped.
func (o *SearchOrchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
}

// submitLocked recomputes the composite key and issues a request when it
// changed. Callers hold o.mu.
func (o *SearchOrchestrator) submitLocked(ctx context.Context) {
	if !o.hasQuery || o.closed {
		return
	}

	query := domain.NewSearchQuery(o.query, o.filters, o.page)
	key := query.Key()
	o.currentKey = key

	if cached, ok := o.cache[key]; ok {
		o.loading = false
		o.lastErr = nil
		o.publish(SearchUpdate{Key: key, Result: cached, FromCache: true})
		return
	}

	o.loading = true
	o.lastErr = nil
	go o.fetch(ctx, query, key)
}

// fetch runs one tagged request and settles it against the current key.
func (o *SearchOrchestrator) fetch(ctx context.Context, query domain.SearchQuery, key string) {
	result, err := o.backend.SearchHotels(ctx, query)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	if key != o.currentKey {
		// The query moved on while this request was in flight. Cache a
		// successful response for later, but never surface it.
		if err == nil {
			o.cache[key] = result
		}
		o.log.Debug().Str("key", key).Msg("Discarding stale search response")
		return
	}

	o.loading = false
	if err != nil {
		o.lastErr = err
		o.log.Warn().Err(err).Msg("Search request failed")
		o.publish(SearchUpdate{Key: key, Err: err})
		return
	}

	o.cache[key] = result
	o.publish(SearchUpdate{Key: key, Result: result})
}

// publish delivers an update without ever blocking the orchestrator; when the
// buffer is full the oldest pending update is dropped in favor of the new one.
func (o *SearchOrchestrator) publish(update SearchUpdate) {
	for {
		select {
		case o.updates <- update:
			return
		default:
			select {
			case <-o.updates:
			default:
			}
		}
	}
}
