package pipeline

import (
	"sync"

	"github.com/talkincode/latencyglobe/internal/domain"
)

// Key identifies one pipeline input combination. The filter version bumps on
// every filter mutation, the batch id changes on every refresh, and the query
// participates directly, so equal keys imply an identical derived view.
type Key struct {
	FilterVersion uint64
	Query         string
	BatchID       string
}

// Engine memoizes the last derived view. DeriveView is pure, so a single
// entry keyed by the input versions is enough: the UI only ever asks for the
// current combination.
type Engine struct {
	mu     sync.Mutex
	key    Key
	cached domain.DerivedView
	valid  bool
	hits   uint64
	misses uint64
}

// Derive returns the cached view for key, computing it on miss
func (e *Engine) Derive(key Key, compute func() domain.DerivedView) domain.DerivedView {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.valid && e.key == key {
		e.hits++
		return e.cached
	}
	e.misses++
	e.cached = compute()
	e.key = key
	e.valid = true
	return e.cached
}

// Invalidate discards the cached view
func (e *Engine) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.valid = false
	e.cached = domain.DerivedView{}
}

// Stats returns (hits, misses) counters
func (e *Engine) Stats() (uint64, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits, e.misses
}
