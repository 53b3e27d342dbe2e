// Package core defines the immutable, arena-backed Graph used for route search.
//
// A Graph[T, D] is built exactly once from N payloads of type T and an N×N
// adjacency matrix of optional weights (*D, nil = no edge). After Build the
// node set and edge set never change, so a single Graph may be shared by any
// number of concurrent readers without locks.
//
// Storage model:
//
//   - nodes: contiguous []Node[T]; a node's identity is its slot (NodeID),
//     not its payload, so equal payloads are distinct nodes.
//   - edges: contiguous []Edge[D] grouped by source node in construction
//     order; an Edge carries From/To NodeIDs rather than references, so
//     there are no back-pointers to outlive the Graph.
//   - incoming (optional, WithIncoming): per-node []EdgeID recorded in the
//     same pass that creates the edges.
//
// Construction errors (checked in this order):
//
//	ErrShape           - matrix is not N×N.
//	ErrSelfLoop        - a diagonal entry is present.
//	ErrInvalidDistance - alias of distance.ErrInvalidDistance, raised when the
//	                     caller converts raw weights (distance.NewFloat).
//
// Out-of-range NodeID/EdgeID values are programming errors and panic.
//
// Example:
//
//	g, err := core.Build(
//	    []string{"A", "B", "C"},
//	    [][]*distance.Int{
//	        {nil, core.Some[distance.Int](1), nil},
//	        {core.Some[distance.Int](2), nil, nil},
//	        {core.Some[distance.Int](3), nil, nil},
//	    },
//	)
//	for _, e := range g.Adjacent(0) {
//	    fmt.Println(e.From, "→", e.To, e.Distance)
//	}
//
// Complexity:
//
//   - Build:    O(N²) time, O(N + E) space.
//   - Adjacent: O(1), no allocation.
//   - Find:     O(N).
package core
