package thunk

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/shortlink-org/lazy/types/options"
)

// cell is a write-once memo slot.
//
// done is checked without locking once the slot is filled. Until then
// evaluations are serialized by mu, so concurrent callers never run the
// computation twice. A failed computation releases mu without filling the
// slot and the next caller retries.
type cell[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	o    options.Option[T]
}

func (c *cell[T]) get() (T, bool) {
	return c.o.Get()
}

func (c *cell[T]) fill(v T) {
	c.o = options.Some(v)
	c.done.Store(true)
}

// load evaluates *doer once. doer is dropped after success so captured
// arguments can be collected.
func (c *cell[T]) load(doer *func() (T, error)) (T, error) {
	if c.done.Load() {
		v, _ := c.get()

		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Load() {
		v, _ := c.get()

		return v, nil
	}

	if *doer == nil {
		var zero T

		return zero, ErrNilThunk
	}

	v, err := (*doer)()
	if err != nil {
		var zero T

		return zero, err
	}

	c.fill(v)
	*doer = nil

	return v, nil
}
