package dijkstra

import (
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/distance"
)

// Result is the outcome of a single-source Tree run.
// It is immutable and safe to share after Tree returns.
type Result[D distance.Distance[D]] struct {
	source core.NodeID
	done   settled[D]
	order  []core.NodeID
}

// Source returns the node the run started from.
func (r *Result[D]) Source() core.NodeID { return r.source }

// Reached reports whether id was finalized.
func (r *Result[D]) Reached(id core.NodeID) bool {
	_, ok := r.done.get(id)

	return ok
}

// Len returns the number of finalized nodes, the source included.
func (r *Result[D]) Len() int { return r.done.size() }

// DistanceTo returns the shortest distance from the source to id.
func (r *Result[D]) DistanceTo(id core.NodeID) (D, bool) {
	rec, ok := r.done.get(id)
	if !ok {
		return distance.Zero[D](), false
	}

	return rec.dist, true
}

// Predecessor returns the last edge of the shortest path to id.
// ok is false for the source and for unreached nodes.
func (r *Result[D]) Predecessor(id core.NodeID) (core.Edge[D], bool) {
	rec, found := r.done.get(id)
	if !found || !rec.hasVia {
		return core.Edge[D]{}, false
	}

	return rec.via, true
}

// PathTo reconstructs the shortest path from the source to id.
// Same contract as ShortestPath: empty for the source, (nil, false) if unreached.
func (r *Result[D]) PathTo(id core.NodeID) ([]core.Edge[D], bool) {
	return reconstruct(r.done, id)
}

// Order returns finalized nodes in non-decreasing distance order.
func (r *Result[D]) Order() []core.NodeID {
	out := make([]core.NodeID, len(r.order))
	copy(out, r.order)

	return out
}
