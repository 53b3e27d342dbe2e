// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Ordered additive measure used as edge weight across core and dijkstra.
// Policy:
//   - The zero value of every Distance type is its additive identity.
//   - Invalid states are rejected at construction only; the rest of the module
//     treats a Distance value as already valid.

package distance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDistance indicates a value that would break the total order
// (for floating point: NaN).
var ErrInvalidDistance = errors.New("distance: invalid distance value")

// Distance is the contract an edge weight must satisfy.
//
// Requirements:
//   - Add is associative and commutative.
//   - Compare is a total order: negative if d < other, zero if equal, positive otherwise.
//   - The zero value of D is the identity of Add (var z D; z.Add(x) == x).
//
// Non-negativity is not enforced by the type; shortest-path correctness assumes it.
type Distance[D any] interface {
	Add(other D) D
	Compare(other D) int
}

// Zero returns the additive identity of D.
func Zero[D Distance[D]]() D {
	var zero D

	return zero
}

// Less reports whether a orders strictly before b.
func Less[D Distance[D]](a, b D) bool { return a.Compare(b) < 0 }

// Min returns the smaller of a and b (a on ties).
func Min[D Distance[D]](a, b D) D {
	if b.Compare(a) < 0 {
		return b
	}

	return a
}

// Sum folds Add over ds starting from Zero.
// Complexity: O(len(ds)).
func Sum[D Distance[D]](ds ...D) D {
	total := Zero[D]()
	for _, d := range ds {
		total = total.Add(d)
	}

	return total
}

// Int is an integer distance. Every int64 is a valid Int.
type Int int64

// Add returns d+other.
func (d Int) Add(other Int) Int { return d + other }

// Compare orders Int values numerically.
func (d Int) Compare(other Int) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}

// String renders the integer value.
func (d Int) String() string { return fmt.Sprintf("%d", int64(d)) }

// Float is a floating-point distance that is never NaN.
// The only ways to obtain a non-zero Float are NewFloat and MustFloat.
type Float struct {
	v float64
}

// NewFloat validates v and wraps it as a Float.
// Returns ErrInvalidDistance (wrapped) if v is NaN.
func NewFloat(v float64) (Float, error) {
	if math.IsNaN(v) {
		return Float{}, fmt.Errorf("NewFloat(%v): %w", v, ErrInvalidDistance)
	}

	return Float{v: v}, nil
}

// MustFloat is NewFloat for constants; it panics on NaN.
func MustFloat(v float64) Float {
	f, err := NewFloat(v)
	if err != nil {
		panic(err.Error())
	}

	return f
}

// Float64 returns the underlying value.
func (d Float) Float64() float64 { return d.v }

// Add returns d+other. The sum of two non-NaN values is NaN only for
// +Inf + -Inf, which negative-free inputs never produce.
func (d Float) Add(other Float) Float { return Float{v: d.v + other.v} }

// Compare orders Float values numerically; total because NaN is excluded.
func (d Float) Compare(other Float) int {
	switch {
	case d.v < other.v:
		return -1
	case d.v > other.v:
		return 1
	default:
		return 0
	}
}

// String renders the value with the shortest exact representation.
func (d Float) String() string { return fmt.Sprintf("%g", d.v) }

// Compile-time checks.
var (
	_ Distance[Int]   = Int(0)
	_ Distance[Float] = Float{}
)
