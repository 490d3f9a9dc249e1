package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// loadMatrix validates a matrix.Matrix and copies it into a flat row-major
// buffer. Returns n and the buffer; nothing is allocated on failure beyond
// the partially filled copy, which is dropped.
//
// Order of checks: nil → square → finite (first offending cell, row-major).
//
// Complexity: O(n²).
func loadMatrix(m matrix.Matrix) (int, []float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	n := m.Rows()

	// Fast path: *Dense hands over its row-major buffer in one copy.
	var w []float64
	if d, ok := m.(*matrix.Dense); ok {
		w = d.RowMajor()
	} else {
		w = make([]float64, n*n)
		var (
			u, v int
			x    float64
			err  error
		)
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if x, err = m.At(u, v); err != nil {
					return 0, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
				}
				w[u*n+v] = x
			}
		}
	}

	if err := checkFinite(w, n); err != nil {
		return 0, nil, err
	}

	return n, w, nil
}

// loadRows validates a [][]float64 literal and flattens it.
//
// Contract: len(rows) == n and len(rows[u]) == n for every u.
// A first row of the wrong length reports ErrNonSquare; any later row that
// disagrees with n reports ErrRaggedRows.
//
// Complexity: O(n²).
func loadRows(rows [][]float64) (int, []float64, error) {
	n := len(rows)
	var u int
	for u = 0; u < n; u++ {
		if len(rows[u]) == n {
			continue
		}
		if u == 0 {
			return 0, nil, fmt.Errorf("%w: %d rows, %d columns", ErrNonSquare, n, len(rows[0]))
		}

		return 0, nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrRaggedRows, u, len(rows[u]), n)
	}

	w := make([]float64, n*n)
	for u = 0; u < n; u++ {
		copy(w[u*n:(u+1)*n], rows[u])
	}
	if err := checkFinite(w, n); err != nil {
		return 0, nil, err
	}

	return n, w, nil
}

// checkFinite rejects NaN/±Inf, reporting the first offending coordinates.
func checkFinite(w []float64, n int) error {
	for k, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: w[%d][%d]=%v", ErrNonFinite, k/n, k%n, x)
		}
	}

	return nil
}

// tolerance scales eps by the largest weight magnitude (at least 1).
func tolerance(eps float64, w []float64) float64 {
	scale := 1.0
	for _, x := range w {
		if a := math.Abs(x); a > scale {
			scale = a
		}
	}

	return eps * scale
}
