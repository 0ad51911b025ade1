// Package usecase contains the storefront's orchestration logic: the search
// draft store, the debounced query projector, the search and booking
// orchestrators, the session cache and the listing-management pipeline.
package usecase

import (
	"sync"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/sessionstore"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/timeutil"
)

// draftKey is the session-store key the criteria persist under.
const draftKey = "search-draft"

// DraftStore holds the in-progress search criteria for a browsing session.
// There is a single writer path: every mutation goes through Set, Update or
// Reset, which persist the draft and notify subscribers. Readers only ever
// see value snapshots and never mutate shared state.
type DraftStore struct {
	store sessionstore.Store
	clock timeutil.Clock
	log   *logger.Logger

	mu          sync.Mutex
	criteria    domain.SearchCriteria
	subscribers []func(domain.SearchCriteria)
}

// NewDraftStore creates a draft store, restoring any criteria persisted in a
// previous page of this session, or starting from defaults.
func NewDraftStore(store sessionstore.Store, clock timeutil.Clock, log *logger.Logger) *DraftStore {
	d := &DraftStore{
		store: store,
		clock: clock,
		log:   log.WithComponent("draft-store"),
	}

	var restored domain.SearchCriteria
	ok, err := store.Load(draftKey, &restored)
	if err != nil {
		d.log.Warn().Err(err).Msg("Failed to restore search draft")
	}
	if ok && err == nil {
		restored.SetDefaults(clock.Now())
		d.criteria = restored
	} else {
		d.criteria = domain.DefaultSearchCriteria(clock.Now())
	}

	return d
}

// Snapshot returns the current criteria by value.
func (d *DraftStore) Snapshot() domain.SearchCriteria {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.criteria
}

// Subscribe registers fn to run after every mutation with the new criteria.
// Subscribers run outside the store's lock.
func (d *DraftStore) Subscribe(fn func(domain.SearchCriteria)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, fn)
}

// Set replaces the criteria wholesale.
func (d *DraftStore) Set(criteria domain.SearchCriteria) {
	d.mutate(func(c *domain.SearchCriteria) { *c = criteria })
}

// Update applies a field-level mutation to the criteria.
func (d *DraftStore) Update(mutate func(*domain.SearchCriteria)) {
	d.mutate(mutate)
}

// Reset restores the criteria to session-start defaults.
func (d *DraftStore) Reset() {
	defaults := domain.DefaultSearchCriteria(d.clock.Now())
	d.mutate(func(c *domain.SearchCriteria) { *c = defaults })
}

func (d *DraftStore) mutate(fn func(*domain.SearchCriteria)) {
	d.mu.Lock()
	fn(&d.criteria)
	criteria := d.criteria
	subscribers := make([]func(domain.SearchCriteria), len(d.subscribers))
	copy(subscribers, d.subscribers)
	d.mu.Unlock()

	// Persistence is best-effort: a failed save loses the draft on reload
	// but never blocks the search flow.
	if err := d.store.Save(draftKey, criteria); err != nil {
		d.log.Warn().Err(err).Msg("Failed to persist search draft")
	}

	for _, fn := range subscribers {
		fn(criteria)
	}
}
