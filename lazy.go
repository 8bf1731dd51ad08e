package robust

import (
	"sync"
	"sync/atomic"
)

// lazyCell holds a value computed on first use.
//
// Single writer, then many readers: the first successful create stores the
// value and publishes it with an atomic flag; later readers take the flag
// fast path without locking. Concurrent first users serialize on the mutex,
// so create succeeds at most once and nobody observes a partial value. A
// failed create stores nothing and the next caller tries again.
type lazyCell[T any] struct {
	mu    sync.Mutex
	ready atomic.Bool
	value T
}

// get returns the cell's value, running create if the cell is empty.
// created reports whether this call stored the value.
func (c *lazyCell[T]) get(create func() (T, error)) (v T, created bool, err error) {
	if c.ready.Load() {
		return c.value, false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready.Load() {
		return c.value, false, nil
	}

	v, err = create()
	if err != nil {
		var zero T
		return zero, false, err
	}
	c.value = v
	c.ready.Store(true)
	return v, true, nil
}

// loaded reports whether the value has been stored.
func (c *lazyCell[T]) loaded() bool {
	return c.ready.Load()
}
