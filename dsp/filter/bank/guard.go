package bank

import (
	"sync"
	"sync/atomic"
)

// Guard publishes immutable values of T to lock-free readers.
//
// Writers are serialized by a mutex and replace the whole value with a single
// atomic pointer store, so a reader sees either the old or the new value,
// never a mix. Values passed to Store or returned from an Update function must
// not be modified afterwards.
//
// The zero Guard holds nil and is ready to use.
type Guard[T any] struct {
	mu  sync.Mutex
	cur atomic.Pointer[T]
}

// NewGuard returns a Guard holding initial.
func NewGuard[T any](initial *T) *Guard[T] {
	g := &Guard[T]{}
	g.cur.Store(initial)
	return g
}

// Load returns the current value. It never blocks.
func (g *Guard[T]) Load() *T {
	return g.cur.Load()
}

// Store replaces the current value.
func (g *Guard[T]) Store(v *T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cur.Store(v)
}

// Update calls fn with the current value while holding the writer lock and
// publishes its result. If fn returns an error nothing is published and the
// current value stays in place.
func (g *Guard[T]) Update(fn func(cur *T) (*T, error)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cur := g.cur.Load()

	next, err := fn(cur)
	if err != nil {
		return err
	}

	if next != cur {
		g.cur.Store(next)
	}

	return nil
}
