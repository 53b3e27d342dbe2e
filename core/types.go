// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Node, Edge, identifiers, options and sentinel errors.
// Policy:
//   - The Graph owns a contiguous node arena and a contiguous edge arena.
//   - Edges carry NodeID indices, never pointers, so no aliasing or lifetime
//     hazards exist between nodes.
//   - A Graph is immutable once Build returns; read methods take no locks.

package core

import (
	"errors"

	"github.com/katalvlaran/lvroute/distance"
)

// Sentinel errors for graph construction and access.
var (
	// ErrShape indicates that the adjacency matrix is not exactly N×N for N values.
	ErrShape = errors.New("core: adjacency matrix shape mismatch")

	// ErrSelfLoop indicates a present entry on the adjacency matrix diagonal.
	ErrSelfLoop = errors.New("core: self-loop on adjacency diagonal")

	// ErrInvalidDistance aliases distance.ErrInvalidDistance so callers of core
	// can match the whole construction error taxonomy from one package.
	ErrInvalidDistance = distance.ErrInvalidDistance

	// ErrNodeOutOfRange is the panic message for a NodeID outside the graph.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrEdgeOutOfRange is the panic message for an EdgeID outside the graph.
	ErrEdgeOutOfRange = errors.New("core: edge id out of range")
)

// NodeID identifies a node by its slot in the Graph's node arena.
// Two nodes with equal payloads are still distinct NodeIDs.
type NodeID int

// EdgeID identifies an edge by its slot in the Graph's edge arena.
type EdgeID int

// Edge is a directed, weighted connection From → To.
type Edge[D distance.Distance[D]] struct {
	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Distance is the weight of the edge.
	Distance D
}

// Node holds a payload and the location of its edges in the arena.
//
// Outgoing edges occupy the half-open range [outLo, outHi) of the edge arena;
// incoming edges are listed by EdgeID when the Graph was built WithIncoming.
type Node[T any] struct {
	// Value is the payload supplied to Build.
	Value T

	outLo, outHi int
	in           []EdgeID
}

// OutDegree returns the number of outgoing edges.
func (n Node[T]) OutDegree() int { return n.outHi - n.outLo }

// InDegree returns the number of recorded incoming edges (0 unless WithIncoming).
func (n Node[T]) InDegree() int { return len(n.in) }

// Graph is a fixed-size, immutable directed graph over payloads T and weights D.
//
// Construct with Build. The zero Graph is an empty graph with no nodes.
// Concurrent readers are safe; there are no mutators.
type Graph[T any, D distance.Distance[D]] struct {
	nodes    []Node[T]
	edges    []Edge[D]
	incoming bool
}

// GraphOption configures Build.
type GraphOption func(*buildConfig)

type buildConfig struct {
	incoming bool
}

// WithIncoming records, for every node, the edges that point to it.
// The reverse view is filled in the same pass that creates the edges.
func WithIncoming() GraphOption {
	return func(c *buildConfig) { c.incoming = true }
}

// Some returns a pointer to d, for writing adjacency matrix literals.
func Some[D any](d D) *D { return &d }
