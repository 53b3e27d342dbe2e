// Package dijkstra computes minimum-weight paths on a core.Graph with
// non-negative weights.
//
// Overview:
//
//   - ShortestPath(g, start, goal) returns the ordered edge list of one
//     minimum-total-weight path, an empty list when start == goal, or
//     ok == false when goal is unreachable. Unreachability is a normal
//     result, not an error.
//   - Tree(g, start) runs to exhaustion and exposes every finalized node's
//     distance and predecessor edge (single source; no all-pairs search).
//   - Works for any distance.Distance: distance.Int, distance.Float, or a
//     caller type. The engine only adds and compares; it never subtracts.
//
// Algorithm (forward relaxation):
//
//  1. Finalize start at the zero distance; seed the frontier with its
//     outgoing edges.
//  2. Pop the minimum frontier entry (node, dist, edge). Skip it if the node
//     is already final at ≤ dist; otherwise finalize it with (dist, edge).
//  3. For each outgoing edge node→v of weight w, push or decrease v to
//     dist+w with payload edge, only if v is not final and the candidate
//     strictly improves v's queued distance.
//  4. Stop when the frontier is empty, or once goal is final (early exit).
//  5. Rebuild the path from goal through predecessor edges and reverse it.
//
// Options:
//
//	– WithMaxDistance(d):   never queue a node farther than d.
//	– WithoutEarlyExit():   ShortestPath explores all reachable nodes.
//	– WithOnFinalize(fn):   observe each node as it is finalized.
//
// Thread safety:
//
//   - A built core.Graph is immutable; any number of goroutines may call
//     ShortestPath/Tree on it at once. Each call allocates its own frontier,
//     record slice and finalized set.
//
// See also:
//
//   - pq.Queue: the indexed heap used as the frontier.
//   - core.Build: graph construction from an adjacency matrix.
package dijkstra
