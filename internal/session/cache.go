// ABOUTME: View-local collection cache with post-confirmation mutation rules
// ABOUTME: A generation counter discards fetches that resolve after a reset

package session

import "sync"

// Collection is an in-memory copy of one resource list, scoped to a single
// view. It is populated by Load and mutated only after the server confirms
// a change; a failed request leaves it untouched. Reset abandons any fetch
// still in flight, so a view that goes away never sees a late result land.
type Collection[T any] struct {
	mu      sync.Mutex
	id      func(T) string
	items   []T
	loading bool
	gen     uint64
}

// NewCollection creates an empty cache. id extracts the server-assigned
// identifier used to match updates and deletes.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Load runs fetch and installs the result, unless the collection was Reset
// (or re-Loaded) while the fetch was in flight, in which case the result is
// discarded. Returns fetch's error; on error the cache is unchanged.
func (c *Collection[T]) Load(fetch func() ([]T, error)) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	items, err := fetch()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		// A newer Load or Reset superseded this fetch.
		return err
	}
	c.loading = false
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// Reset empties the cache and abandons any in-flight Load.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.items = nil
	c.loading = false
}

// ApplyCreate prepends a server-confirmed entity so new content shows first.
func (c *Collection[T]) ApplyCreate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// ApplyUpdate replaces the entry matching item's identifier with the
// server-returned representation. Unknown identifiers are ignored.
func (c *Collection[T]) ApplyUpdate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	want := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == want {
			c.items[i] = item
			return
		}
	}
}

// ApplyDelete removes the entry with the given identifier, if present.
func (c *Collection[T]) ApplyDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cached entities in display order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a Load is still in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
