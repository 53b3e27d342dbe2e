// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: The single construction point of a Graph: validate the adjacency
// matrix, lay out the node and edge arenas.
// Policy:
//   - Validation runs fully before any allocation of the arenas.
//   - Error priority: shape → self-loop.
//   - Edges are created in row-major order, so each node's outgoing edges are
//     contiguous and keep matrix column order.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvroute/distance"
)

// Build creates a Graph from N payloads and an N×N adjacency matrix.
//
// matrix[i][j] == nil means "no direct edge"; a non-nil entry creates exactly
// one directed edge i → j weighted *matrix[i][j]. No reverse edge is implied.
//
// Implementation:
//   - Stage 1: validateShape — len(matrix) == N and every row has N entries.
//   - Stage 2: validateDiagonal — matrix[i][i] == nil for all i.
//   - Stage 3: count present entries, allocate the edge arena once.
//   - Stage 4: fill the arena row by row, recording incoming EdgeIDs on the
//     target node in the same loop when WithIncoming is set.
//
// Errors:
//   - ErrShape:    matrix is not N×N.
//   - ErrSelfLoop: a diagonal entry is present.
//
// Complexity:
//   - Time O(N²), Space O(N + E).
func Build[T any, D distance.Distance[D]](values []T, matrix [][]*D, opts ...GraphOption) (*Graph[T, D], error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Shape
	if err := validateShape(len(values), matrix); err != nil {
		return nil, err
	}

	// 2) Diagonal
	if err := validateDiagonal(matrix); err != nil {
		return nil, err
	}

	// 3) Size the edge arena exactly.
	n := len(values)
	count := 0
	for i := range matrix {
		for j := range matrix[i] {
			if matrix[i][j] != nil {
				count++
			}
		}
	}

	g := &Graph[T, D]{
		nodes:    make([]Node[T], n),
		edges:    make([]Edge[D], 0, count),
		incoming: cfg.incoming,
	}
	for i, v := range values {
		g.nodes[i].Value = v
	}

	// 4) Fill edges row by row.
	for i := 0; i < n; i++ {
		g.nodes[i].outLo = len(g.edges)
		for j := 0; j < n; j++ {
			d := matrix[i][j]
			if d == nil {
				continue
			}
			id := EdgeID(len(g.edges))
			g.edges = append(g.edges, Edge[D]{From: NodeID(i), To: NodeID(j), Distance: *d})
			if cfg.incoming {
				g.nodes[j].in = append(g.nodes[j].in, id)
			}
		}
		g.nodes[i].outHi = len(g.edges)
	}

	return g, nil
}

// validatorErrorf tags a sentinel with the failing check.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures the matrix has n rows of n entries each.
// Complexity: O(n).
func validateShape[D any](n int, matrix [][]*D) error {
	if len(matrix) != n {
		return validatorErrorf(fmt.Sprintf("Build: %d rows for %d values", len(matrix), n), ErrShape)
	}
	for i, row := range matrix {
		if len(row) != n {
			return validatorErrorf(fmt.Sprintf("Build: row %d has %d entries, want %d", i, len(row), n), ErrShape)
		}
	}

	return nil
}

// validateDiagonal ensures no entry on the main diagonal is present.
// Assumes the matrix is square.
// Complexity: O(n).
func validateDiagonal[D any](matrix [][]*D) error {
	for i := range matrix {
		if matrix[i][i] != nil {
			return validatorErrorf(fmt.Sprintf("Build: entry [%d][%d]", i, i), ErrSelfLoop)
		}
	}

	return nil
}
