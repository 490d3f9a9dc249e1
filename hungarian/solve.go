package hungarian

import (
	"fmt"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// Assign computes a maximum-weight perfect matching for the n×n weight
// matrix (rows = left vertices, columns = right vertices).
//
// Contracts:
//   - weights must be non-nil, square and finite (n = 0 is legal).
//   - weights is read once and never mutated.
//
// Returns a Result with mutually inverse total mappings over {0..n-1},
// the optimal Value and the final potentials. For n = 0 both mappings are
// empty and Value is 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNonFinite (all wrap ErrInvalidInput);
//   - ErrOptionViolation for invalid options;
//   - *InvariantError (wraps ErrInvariantViolation) on an algorithm defect;
//   - the error returned by an OnAugment hook, wrapped.
//
// Complexity: O(n³) time, O(n²) memory.
func Assign(weights matrix.Matrix, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	n, w, err := loadMatrix(weights)
	if err != nil {
		return Result{}, err
	}

	return solve(n, w, &o)
}

// AssignRows is Assign for a [][]float64 literal. A row whose length
// differs from len(weights) is rejected with ErrRaggedRows (ErrNonSquare
// when it is the first row).
func AssignRows(weights [][]float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	n, w, err := loadRows(weights)
	if err != nil {
		return Result{}, err
	}

	return solve(n, w, &o)
}

// AssignMin computes a minimum-weight perfect matching by negating the
// weights, maximizing, and negating Value, pair weights and potentials back.
// The returned Result has Minimized set; its potentials satisfy
// lu[u] + lv[v] ≤ w[u][v] with equality on matched pairs.
func AssignMin(weights matrix.Matrix, opts ...Option) (Result, error) {
	if err := matrix.ValidateNotNil(weights); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	neg, err := matrix.Negate(weights)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	res, err := Assign(neg, opts...)
	if err != nil {
		return Result{}, err
	}

	res.Value = -res.Value
	for i := range res.LeftPotential {
		res.LeftPotential[i] = -res.LeftPotential[i]
		res.RightPotential[i] = -res.RightPotential[i]
	}
	for i := range res.Pairs {
		res.Pairs[i].Weight = -res.Pairs[i].Weight
	}
	res.Minimized = true

	return res, nil
}

// solve runs the driver loop on validated, flattened weights.
func solve(n int, w []float64, o *Options) (Result, error) {
	if n == 0 {
		return Result{
			RightToLeft:    []int{},
			LeftToRight:    []int{},
			LeftPotential:  []float64{},
			RightPotential: []float64{},
			Pairs:          []Pair{},
		}, nil
	}

	s := newSolver(n, w, o)
	var (
		root, flipped int
		err           error
	)
	for s.round = 0; s.round < n; s.round++ {
		root = s.nextRoot()
		if root == free {
			return Result{}, s.invariant("tree", "no free left vertex with %d rounds left", n-s.round)
		}
		s.resetTree(root)
		if flipped, err = s.augment(); err != nil {
			return Result{}, err
		}
		s.stats.Rounds++
		if err = o.OnAugment(s.round, root, flipped); err != nil {
			return Result{}, fmt.Errorf("hungarian: aborted after round %d: %w", s.round, err)
		}
	}

	return s.result(), nil
}

// result packages the final state. Value is the dual objective
// Σlu + Σlv, which equals the matched weight.
func (s *solver) result() Result {
	res := Result{
		RightToLeft:    append([]int(nil), s.mv...),
		LeftToRight:    append([]int(nil), s.mu...),
		LeftPotential:  append([]float64(nil), s.lu...),
		RightPotential: append([]float64(nil), s.lv...),
		Pairs:          make([]Pair, s.n),
		Stats:          s.stats,
	}
	var left, right float64
	for i := 0; i < s.n; i++ {
		left += s.lu[i]
		right += s.lv[i]
		res.Pairs[i] = Pair{Left: i, Right: s.mu[i], Weight: s.weight(i, s.mu[i])}
	}
	res.Value = left + right

	return res
}
