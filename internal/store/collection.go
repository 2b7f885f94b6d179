// Package store keeps the server-backed collections synchronized with
// local view state. Each store owns its collection exclusively; refresh
// replaces the copy wholesale and never surfaces errors, mutators
// propagate errors and refresh only on success.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type FetchFunc[E any] func(ctx context.Context) ([]E, error)

// Collection is the shared refresh coordinator. Refresh may run
// concurrently (timer tick racing a post-mutation refresh); a monotonic
// generation pair makes the last-issued fetch win, so a stale in-flight
// response never overwrites a newer one.
type Collection[E any] struct {
	mu      sync.Mutex
	name    string
	fetch   FetchFunc[E]
	logger  *zap.Logger
	items   []E
	loading bool
	issued  uint64
	applied uint64
}

func NewCollection[E any](name string, fetch FetchFunc[E], logger *zap.Logger) *Collection[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[E]{
		name:    name,
		fetch:   fetch,
		logger:  logger,
		loading: true,
	}
}

// Refresh fetches the collection and replaces the local copy. Failures
// are swallowed: the previous copy stays in place and only the log file
// hears about it. The loading flag settles exactly once either way.
func (c *Collection[E]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.issued++
	gen := c.issued
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger.Debug("refresh failed", zap.String("store", c.name), zap.Error(err))
		return
	}
	if gen < c.applied {
		// A later-issued refresh already landed.
		return
	}
	c.applied = gen
	c.items = items
}

func (c *Collection[E]) Items() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[E]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
