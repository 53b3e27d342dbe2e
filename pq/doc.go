// Package pq provides an indexed binary min-heap with decrease-key.
//
// Each queued entry is identified by a unique comparable key. An auxiliary
// key→slot map is updated on every structural change (push, pop, swap during
// sift), which turns a priority update into an O(log n) sift instead of an
// O(n) search. Pushing a key that is already queued updates it in place; the
// queue never holds two slots for the same key.
//
// Complexity:
//
//   - Push, PopMin, Remove: O(log n)
//   - PeekMin, PeekByKey, Payload, Contains, Len: O(1)
//
// Ties between equal priorities are broken by slot position, which is
// deterministic for a given operation sequence; callers must not rely on it.
//
// Example:
//
//	q := pq.NewOrdered[string, int, struct{}]()
//	q.Push("a", 10, struct{}{})
//	q.Push("b", 5, struct{}{})
//	q.Push("a", 1, struct{}{}) // decrease-key
//	k, p, _, _ := q.PopMin()   // "a", 1
package pq
