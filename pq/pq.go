// SPDX-License-Identifier: MIT
//
// File: pq.go
// Role: Indexed binary min-heap with in-place priority update (decrease-key).
// Policy:
//   - A key occupies at most one slot at any time.
//   - index[key] == slot position for every stored key, after every operation.
//   - No reference to a live slot escapes the Queue.

package pq

import "cmp"

// entry is one heap slot.
type entry[K comparable, P any, V any] struct {
	key      K
	priority P
	payload  V
}

// Queue is an indexed min-heap keyed by K, ordered by P, carrying a payload V.
//
// The zero Queue is not usable; construct with New or NewOrdered.
// A Queue is not safe for concurrent use.
type Queue[K comparable, P any, V any] struct {
	less  func(a, b P) bool // strict order on priorities
	slots []entry[K, P, V]  // binary heap, root at 0
	index map[K]int         // key → position in slots
}

// Option configures a Queue at construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes the slot array and key map for n entries.
// Panics if n is negative.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic("pq: capacity must be non-negative")
		}
		c.capacity = n
	}
}

// New returns an empty Queue ordered by less.
// Panics if less is nil.
func New[K comparable, P any, V any](less func(a, b P) bool, opts ...Option) *Queue[K, P, V] {
	if less == nil {
		panic("pq: nil less function")
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[K, P, V]{
		less:  less,
		slots: make([]entry[K, P, V], 0, cfg.capacity),
		index: make(map[K]int, cfg.capacity),
	}
}

// NewOrdered returns an empty Queue over a natively ordered priority type.
func NewOrdered[K comparable, P cmp.Ordered, V any](opts ...Option) *Queue[K, P, V] {
	return New[K, P, V](cmp.Less[P], opts...)
}

// Len returns the number of queued keys.
func (q *Queue[K, P, V]) Len() int { return len(q.slots) }

// Contains reports whether key is queued.
func (q *Queue[K, P, V]) Contains(key K) bool {
	_, ok := q.index[key]

	return ok
}

// Push inserts key with the given priority and payload, or updates it in place
// if already queued. On update the payload is replaced and the slot is sifted
// up when the priority decreased, down when it increased.
// Returns true if key was newly inserted.
// Complexity: O(log n).
func (q *Queue[K, P, V]) Push(key K, priority P, payload V) bool {
	if i, ok := q.index[key]; ok {
		old := q.slots[i].priority
		q.slots[i].priority = priority
		q.slots[i].payload = payload
		switch {
		case q.less(priority, old):
			q.up(i)
		case q.less(old, priority):
			q.down(i)
		}

		return false
	}

	q.slots = append(q.slots, entry[K, P, V]{key: key, priority: priority, payload: payload})
	i := len(q.slots) - 1
	q.index[key] = i
	q.up(i)

	return true
}

// PopMin removes and returns the entry with the lowest priority.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[K, P, V]) PopMin() (key K, priority P, payload V, ok bool) {
	if len(q.slots) == 0 {
		return key, priority, payload, false
	}
	root := q.slots[0]
	q.removeAt(0)

	return root.key, root.priority, root.payload, true
}

// PeekMin returns the lowest-priority entry without removing it.
func (q *Queue[K, P, V]) PeekMin() (key K, priority P, payload V, ok bool) {
	if len(q.slots) == 0 {
		return key, priority, payload, false
	}
	root := q.slots[0]

	return root.key, root.priority, root.payload, true
}

// PeekByKey returns the queued priority of key. O(1).
func (q *Queue[K, P, V]) PeekByKey(key K) (P, bool) {
	i, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}

	return q.slots[i].priority, true
}

// Payload returns the payload stored with key. O(1).
func (q *Queue[K, P, V]) Payload(key K) (V, bool) {
	i, ok := q.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return q.slots[i].payload, true
}

// Remove deletes key from the queue. Returns false if key was not queued.
// Complexity: O(log n).
func (q *Queue[K, P, V]) Remove(key K) bool {
	i, ok := q.index[key]
	if !ok {
		return false
	}
	q.removeAt(i)

	return true
}

// Reset empties the queue, keeping allocated capacity.
func (q *Queue[K, P, V]) Reset() {
	clear(q.index)
	clear(q.slots)
	q.slots = q.slots[:0]
}

// removeAt moves the last slot into position i and restores the heap.
func (q *Queue[K, P, V]) removeAt(i int) {
	last := len(q.slots) - 1
	delete(q.index, q.slots[i].key)
	if i != last {
		q.slots[i] = q.slots[last]
		q.index[q.slots[i].key] = i
	}
	var zero entry[K, P, V]
	q.slots[last] = zero // drop references held by the vacated slot
	q.slots = q.slots[:last]
	if i < last {
		// The moved entry may belong above or below i.
		if !q.up(i) {
			q.down(i)
		}
	}
}

// up sifts slot i toward the root. Reports whether the slot moved.
func (q *Queue[K, P, V]) up(i int) bool {
	start := i
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.slots[i].priority, q.slots[parent].priority) {
			break
		}
		q.swap(i, parent)
		i = parent
	}

	return i != start
}

// down sifts slot i toward the leaves.
func (q *Queue[K, P, V]) down(i int) {
	n := len(q.slots)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && q.less(q.slots[left].priority, q.slots[smallest].priority) {
			smallest = left
		}
		if right < n && q.less(q.slots[right].priority, q.slots[smallest].priority) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and keeps index in sync.
func (q *Queue[K, P, V]) swap(i, j int) {
	q.slots[i], q.slots[j] = q.slots[j], q.slots[i]
	q.index[q.slots[i].key] = i
	q.index[q.slots[j].key] = j
}
