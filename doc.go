// Package lvroute computes shortest routes over a weighted directed graph
// built from transit-station data.
//
// What is lvroute?
//
//	A small, dependency-light library plus driver that brings together:
//		• distance: ordered additive weights (Int, NaN-free Float)
//		• pq:       indexed binary min-heap with decrease-key
//		• core:     immutable arena-and-index Graph built from an adjacency matrix
//		• dijkstra: forward-relaxation shortest path and single-source trees
//		• transit:  station dataset loading, haversine distances, route queries
//		• server:   HTTP route endpoint
//
// Data flow:
//
//	stations.json ─► transit.NewNetwork ─► (stops, matrix) ─► core.Build
//	    ─► *core.Graph ─► dijkstra.ShortestPath(start, goal) ─► []core.Edge | unreachable
//
// Quick ASCII example:
//
//	    A ──1──► B
//	    ▲ ◄──2── │
//	    3
//	    │
//	    C
//
//	ShortestPath(C, B) = [C→A (3), A→B (1)], total 4; ShortestPath(A, C) is unreachable.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
