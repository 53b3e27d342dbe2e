// Package dijkstra implements forward-relaxation Dijkstra over a core.Graph.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Each node is popped at most once: the frontier holds one slot per key.
//   - Each edge triggers at most one decrease-key, O(log V) each.
//   - Space: O(V)
//   - settled records and finalized set are O(V); the frontier never exceeds V.
//
// Notes on implementation choices:
//
//   - The frontier is a pq.Queue keyed by NodeID carrying the edge that
//     produced each tentative distance, so reconstruction needs no second lookup.
//   - Finalized nodes are tracked in a bit.Set indexed by NodeID; it is the
//     only membership check. Records live in a dense slice read through it.
//   - Every call owns its queue, records and set; the graph is only read.
package dijkstra

import (
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/distance"
	"github.com/katalvlaran/lvroute/pq"
)

// ShortestPath returns a minimum-total-weight path from start to goal.
//
// Returns:
//
//   - (edges, true):  edges ordered start → goal; empty (non-nil) when start == goal.
//   - (nil, false):   goal is not reachable from start (or lies beyond MaxDistance).
//
// Panics if start or goal is not a node of g.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V)
func ShortestPath[T any, D distance.Distance[D]](g *core.Graph[T, D], start, goal core.NodeID, opts ...Option[D]) ([]core.Edge[D], bool) {
	// 1) Validate endpoints; an unknown id is a caller bug.
	mustContain(g, start)
	mustContain(g, goal)

	// 2) Trivial route.
	if start == goal {
		return []core.Edge[D]{}, true
	}

	// 3) Run until goal is finalized (or the frontier drains).
	cfg := buildOptions(opts)
	r := newRunner(g, start, cfg)
	target := goal
	if !cfg.EarlyExit {
		target = -1
	}
	r.process(target)

	// 4) Reconstruct.
	return r.pathTo(goal)
}

// Tree runs the engine from start without a goal and returns every
// finalized node's distance and predecessor edge.
// It is single-source: one run per call, not all-pairs.
//
// Panics if start is not a node of g.
func Tree[T any, D distance.Distance[D]](g *core.Graph[T, D], start core.NodeID, opts ...Option[D]) *Result[D] {
	mustContain(g, start)
	cfg := buildOptions(opts)
	r := newRunner(g, start, cfg)
	r.process(-1)

	return &Result[D]{source: start, done: r.done, order: r.order}
}

// Total sums the distances along a path.
func Total[D distance.Distance[D]](path []core.Edge[D]) D {
	total := distance.Zero[D]()
	for _, e := range path {
		total = total.Add(e.Distance)
	}

	return total
}

// buildOptions applies opts over the defaults.
func buildOptions[D distance.Distance[D]](opts []Option[D]) Options[D] {
	cfg := DefaultOptions[D]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func mustContain[T any, D distance.Distance[D]](g *core.Graph[T, D], id core.NodeID) {
	if g == nil {
		panic("dijkstra: graph is nil")
	}
	if !g.Contains(id) {
		panic(fmt.Sprintf("dijkstra: %v: %d", core.ErrNodeOutOfRange, id))
	}
}

// record is the finalized state of one node.
type record[D distance.Distance[D]] struct {
	dist   D
	via    core.Edge[D] // valid only when hasVia
	hasVia bool         // false for the source
}

// settled holds one record slot per node; a slot is meaningful only when
// its NodeID is in finalized.
type settled[D distance.Distance[D]] struct {
	records   []record[D]
	finalized *bit.Set
}

func newSettled[D distance.Distance[D]](n int) settled[D] {
	return settled[D]{records: make([]record[D], n), finalized: new(bit.Set)}
}

// get returns the record of id when id is finalized.
func (s settled[D]) get(id core.NodeID) (record[D], bool) {
	if id < 0 || int(id) >= len(s.records) || !s.finalized.Contains(int(id)) {
		return record[D]{}, false
	}

	return s.records[id], true
}

func (s settled[D]) put(id core.NodeID, rec record[D]) {
	s.records[id] = rec
	s.finalized.Add(int(id))
}

func (s settled[D]) contains(id core.NodeID) bool { return s.finalized.Contains(int(id)) }

func (s settled[D]) size() int { return s.finalized.Size() }

// runner holds the mutable state for a single engine execution.
type runner[T any, D distance.Distance[D]] struct {
	g        *core.Graph[T, D]                       // read-only input
	options  Options[D]                              // resolved configuration
	done     settled[D]                              // finalized distance + predecessor edge
	order    []core.NodeID                           // finalization order
	frontier *pq.Queue[core.NodeID, D, core.Edge[D]] // tentative distances
}

// newRunner finalizes start and seeds the frontier with its outgoing edges.
func newRunner[T any, D distance.Distance[D]](g *core.Graph[T, D], start core.NodeID, cfg Options[D]) *runner[T, D] {
	r := &runner[T, D]{
		g:        g,
		options:  cfg,
		done:     newSettled[D](g.Len()),
		frontier: pq.New[core.NodeID, D, core.Edge[D]](distance.Less[D]),
	}

	// 1) The source is final at distance zero with no predecessor edge.
	r.finalize(start, distance.Zero[D](), core.Edge[D]{}, false)

	// 2) Seed the frontier with every outgoing edge of start.
	r.relax(start, distance.Zero[D]())

	return r
}

// process pops the frontier until it drains, or until target is finalized
// when target >= 0.
func (r *runner[T, D]) process(target core.NodeID) {
	if target >= 0 && r.done.contains(target) {
		return
	}
	for r.frontier.Len() > 0 {
		// 1) Pop the closest frontier node.
		u, d, via, _ := r.frontier.PopMin()

		// 2) Stale entry: already finalized at a distance ≤ d.
		if rec, ok := r.done.get(u); ok && !distance.Less(d, rec.dist) {
			continue
		}

		// 3) Finalize u through via.
		r.finalize(u, d, via, true)
		if u == target {
			return
		}

		// 4) Relax u's outgoing edges.
		r.relax(u, d)
	}
}

// finalize records id as settled.
func (r *runner[T, D]) finalize(id core.NodeID, d D, via core.Edge[D], hasVia bool) {
	r.done.put(id, record[D]{dist: d, via: via, hasVia: hasVia})
	r.order = append(r.order, id)
	r.options.OnFinalize(id, d)
}

// relax pushes or decreases every non-finalized neighbour of u whose
// candidate distance improves on its queued one.
// Assumes d is u's final distance.
func (r *runner[T, D]) relax(u core.NodeID, d D) {
	for _, e := range r.g.Adjacent(u) {
		v := e.To
		if r.done.contains(v) {
			continue
		}

		candidate := d.Add(e.Distance)

		// Beyond the cap: never queue.
		if r.options.HasMaxDistance && distance.Less(r.options.MaxDistance, candidate) {
			continue
		}

		// Only strict improvements replace a queued entry.
		if queued, ok := r.frontier.PeekByKey(v); ok && !distance.Less(candidate, queued) {
			continue
		}

		r.frontier.Push(v, candidate, e)
	}
}

// pathTo walks predecessor edges back from goal and reverses them.
func (r *runner[T, D]) pathTo(goal core.NodeID) ([]core.Edge[D], bool) {
	return reconstruct(r.done, goal)
}

// reconstruct follows the via edges back from goal to the source.
func reconstruct[D distance.Distance[D]](done settled[D], goal core.NodeID) ([]core.Edge[D], bool) {
	rec, ok := done.get(goal)
	if !ok {
		return nil, false
	}

	path := []core.Edge[D]{}
	for rec.hasVia {
		path = append(path, rec.via)
		prev, found := done.get(rec.via.From)
		if !found {
			// Every predecessor was finalized before its successor.
			panic(fmt.Sprintf("dijkstra: broken predecessor chain at node %d", rec.via.From))
		}
		rec = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
