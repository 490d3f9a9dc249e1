// Package matrix provides the dense numeric container used to feed weight
// matrices into the assignment solver.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface (At/Set never panic).
//   - Dense, a row-major implementation with a finite-only numeric policy.
//   - NewDenseFromRows for [][]float64 literals (ragged rows are rejected).
//   - Negate and PadSquare, the caller-side transforms for minimization and
//     rectangular instances.
//   - ValidateNotNil / ValidateSquare / ValidateFinite as the single source of
//     truth for input checks.
//
// See the examples in this package for usage patterns.
package matrix
