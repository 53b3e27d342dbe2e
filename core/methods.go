// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only accessors and lookup over a built Graph.
// Policy:
//   - No method allocates nodes or copies edges except Nodes/FindAll, which
//     return fresh ID slices.
//   - Returned edge slices are views into the arena, capacity-clipped so an
//     append by the caller can never overwrite a neighbouring node's range.
//   - An out-of-range id is a broken construction contract and panics.

package core

import "fmt"

// Len returns the number of nodes. Never changes after Build.
func (g *Graph[T, D]) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[T, D]) EdgeCount() int { return len(g.edges) }

// HasIncoming reports whether the graph was built WithIncoming.
func (g *Graph[T, D]) HasIncoming() bool { return g.incoming }

// Contains reports whether id names a node of g.
func (g *Graph[T, D]) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node stored at id.
func (g *Graph[T, D]) Node(id NodeID) Node[T] {
	g.mustNode(id)

	return g.nodes[id]
}

// Value returns the payload of node id.
func (g *Graph[T, D]) Value(id NodeID) T {
	g.mustNode(id)

	return g.nodes[id].Value
}

// Adjacent returns the outgoing edges of id in construction order.
//
// The result is a view over stored edges: O(1), no allocation.
// Callers must treat it as read-only.
func (g *Graph[T, D]) Adjacent(id NodeID) []Edge[D] {
	g.mustNode(id)
	n := g.nodes[id]

	return g.edges[n.outLo:n.outHi:n.outHi]
}

// Incoming returns the IDs of edges ending at id, in construction order.
// Empty unless the graph was built WithIncoming.
func (g *Graph[T, D]) Incoming(id NodeID) []EdgeID {
	g.mustNode(id)
	in := g.nodes[id].in

	return in[:len(in):len(in)]
}

// Edge returns the edge stored at id.
func (g *Graph[T, D]) Edge(id EdgeID) Edge[D] {
	if id < 0 || int(id) >= len(g.edges) {
		panic(fmt.Sprintf("%v: %d (edges: %d)", ErrEdgeOutOfRange, id, len(g.edges)))
	}

	return g.edges[id]
}

// Edges returns every edge in construction (row-major) order, as a read-only view.
func (g *Graph[T, D]) Edges() []Edge[D] {
	return g.edges[:len(g.edges):len(g.edges)]
}

// Nodes returns all NodeIDs in slot order.
func (g *Graph[T, D]) Nodes() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range ids {
		ids[i] = NodeID(i)
	}

	return ids
}

// Find returns the first node, in slot order, whose payload satisfies pred.
// Complexity: O(N).
func (g *Graph[T, D]) Find(pred func(T) bool) (NodeID, bool) {
	for i := range g.nodes {
		if pred(g.nodes[i].Value) {
			return NodeID(i), true
		}
	}

	return -1, false
}

// FindAll returns every node whose payload satisfies pred, in slot order.
func (g *Graph[T, D]) FindAll(pred func(T) bool) []NodeID {
	var ids []NodeID
	for i := range g.nodes {
		if pred(g.nodes[i].Value) {
			ids = append(ids, NodeID(i))
		}
	}

	return ids
}

// mustNode panics when id is not a slot of g.
func (g *Graph[T, D]) mustNode(id NodeID) {
	if !g.Contains(id) {
		panic(fmt.Sprintf("%v: %d (nodes: %d)", ErrNodeOutOfRange, id, len(g.nodes)))
	}
}
