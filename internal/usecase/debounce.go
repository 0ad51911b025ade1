package usecase

import (
	"sync"
	"time"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/timeutil"
)

// DefaultDebounceDelay is the quiescence delay applied to search input before
// a projection is emitted.
const DefaultDebounceDelay = 300 * time.Millisecond

// QueryProjector derives a wire-safe DebouncedQuery from continuously-changing
// search criteria. Every change cancels any pending emission and arms a fresh
// timer; only a timer that runs to completion without being superseded emits.
// No emission is skipped permanently: once input stops changing, the last
// state always emits exactly once.
type QueryProjector struct {
	delay time.Duration
	timer *timeutil.Timer
	emit  func(domain.DebouncedQuery)

	mu     sync.Mutex
	closed bool
}

// NewQueryProjector creates a projector that calls emit with each settled
// projection. A delay of 0 falls back to DefaultDebounceDelay.
func NewQueryProjector(delay time.Duration, emit func(domain.DebouncedQuery)) *QueryProjector {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &QueryProjector{
		delay: delay,
		timer: timeutil.NewTimer(),
		emit:  emit,
	}
}

// CriteriaChanged records a new criteria value. The projection is captured
// eagerly so the emission reflects the value at change time even if the
// criteria keep moving afterwards (each later change re-arms with its own
// capture, so last-write-wins).
func (p *QueryProjector) CriteriaChanged(criteria domain.SearchCriteria) {
	projection := criteria.Project()
	p.timer.Arm(p.delay, func() {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		p.mu.Unlock()
		p.emit(projection)
	})
}

// Attach subscribes the projector to a draft store so every draft mutation
// feeds the debounce.
func (p *QueryProjector) Attach(drafts *DraftStore) {
	drafts.Subscribe(p.CriteriaChanged)
}

// Close disposes the projector. A pending emission never fires after Close,
// and further criteria changes are ignored.
func (p *QueryProjector) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.timer.Stop()
}
