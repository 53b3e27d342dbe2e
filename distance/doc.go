// Package distance defines the weight abstraction used by the route graph.
//
// A Distance is a value type with a total order, an associative and
// commutative Add, and an additive identity equal to the type's zero value.
// Two implementations are provided:
//
//   - Int:   any int64, no validation required.
//   - Float: float64 guarded against NaN at construction (NewFloat / MustFloat).
//
// Errors:
//
//	ErrInvalidDistance - value would break the total order (NaN).
//
// Example:
//
//	d, err := distance.NewFloat(1.5)
//	if err != nil {
//	    return err
//	}
//	total := distance.Sum(d, distance.MustFloat(2))
package distance
