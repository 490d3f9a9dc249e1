// SPDX-License-Identifier: MIT

// Package matrix - constructors and shape transforms used around the solver.
//
// Purpose:
//   - Ingest [][]float64 literals into *Dense with strict shape/numeric checks.
//   - Provide the two caller-side transforms the assignment solver relies on:
//     negation (minimization) and square padding (rectangular instances).
//
// Determinism:
//   - Fixed i→j loops; no map iteration; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxFromRows  = "NewDenseFromRows"
	ctxNegate    = "Negate"
	ctxPadSquare = "PadSquare"
)

// builderErrorf tags an error with the builder name, preserving the sentinel.
func builderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewDenseFromRows copies a row-of-rows literal into a new *Dense.
//
// Contract:
//   - len(rows)==0 yields the legal empty 0×0 matrix.
//   - every row must have the same length as rows[0] (ErrDimensionMismatch otherwise).
//   - every value must be finite (ErrNaNInf otherwise).
//
// Complexity: O(r*c) time and space.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return newDenseZeroOK(0, 0)
	}
	c := len(rows[0])
	if c == 0 {
		return nil, builderErrorf(ctxFromRows, ErrInvalidDimensions)
	}

	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, builderErrorf(ctxFromRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, builderErrorf(ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Negate returns a new *Dense with every entry of m multiplied by -1.
// Maximizing over -w minimizes over w, so this is the minimization adapter.
//
// Errors: ErrNilMatrix; any At error of a foreign Matrix implementation.
// Complexity: O(r*c).
func Negate(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, builderErrorf(ctxNegate, err)
	}
	// Fast path: *Dense copies its buffer once.
	if d, ok := m.(*Dense); ok {
		out := d.Clone().(*Dense)
		for k := range out.data {
			out.data[k] = -out.data[k]
		}

		return out, nil
	}

	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, builderErrorf(ctxNegate, err)
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, builderErrorf(ctxNegate, err)
			}
			out.data[i*out.c+j] = -v
		}
	}

	return out, nil
}

// PadSquare embeds an r×c matrix into the top-left corner of a k×k matrix,
// k = max(r, c), filling the extra dummy rows or columns with fill.
//
// A square input is returned as an independent copy. A vertex matched to a
// dummy row/column in the padded instance is unmatched in the original.
//
// Errors: ErrNilMatrix; ErrNaNInf for non-finite fill.
// Complexity: O(k²).
func PadSquare(m Matrix, fill float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, builderErrorf(ctxPadSquare, err)
	}
	if math.IsNaN(fill) || math.IsInf(fill, 0) {
		return nil, builderErrorf(ctxPadSquare, ErrNaNInf)
	}
	r, c := m.Rows(), m.Cols()
	k := r
	if c > k {
		k = c
	}

	out, err := newDenseZeroOK(k, k)
	if err != nil {
		return nil, builderErrorf(ctxPadSquare, err)
	}
	var i, j int
	var v float64
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if i >= r || j >= c {
				out.data[i*k+j] = fill
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, builderErrorf(ctxPadSquare, err)
			}
			out.data[i*k+j] = v
		}
	}

	return out, nil
}
