package store

import (
	"strconv"
	"sync"
)

// collection is the shared core of every in-memory store: a mutex-guarded
// map of records keyed by id, an insertion-order index, and the counter
// that mints ids. Records go in and out by value, so callers never hold a
// reference into the map.
type collection[T any] struct {
	mu     sync.Mutex
	recs   map[string]T
	order  []string
	nextID int
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		recs:   make(map[string]T),
		nextID: 1,
	}
}

// insert mints the next decimal id, has build produce the record for it,
// and stores the result.
func (c *collection[T]) insert(build func(id string) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := strconv.Itoa(c.nextID)
	c.nextID++

	rec := build(id)
	c.recs[id] = rec
	c.order = append(c.order, id)
	return rec
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.recs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

// all returns a snapshot of every record in insertion order.
func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs := make([]T, 0, len(c.order))
	for _, id := range c.order {
		recs = append(recs, c.recs[id])
	}
	return recs
}

// replace overwrites the record at id and reports whether it existed.
// A replace never resurrects a deleted id.
func (c *collection[T]) replace(id string, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.recs[id]; !ok {
		return false
	}
	c.recs[id] = rec
	return true
}

// delete removes the record at id and reports whether one was removed.
func (c *collection[T]) delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.recs[id]; !ok {
		return false
	}
	delete(c.recs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// filter returns the records matching pred, in insertion order.
func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Empty, not nil: filter results are serialized as JSON arrays.
	recs := make([]T, 0)
	for _, id := range c.order {
		if rec := c.recs[id]; pred(rec) {
			recs = append(recs, rec)
		}
	}
	return recs
}

// count returns the number of stored records.
func (c *collection[T]) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recs)
}
