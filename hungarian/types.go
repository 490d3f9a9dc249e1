// Package hungarian defines options, results and error sentinels for the
// Kuhn–Munkres solver.
package hungarian

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
//
// Every input error satisfies errors.Is(err, ErrInvalidInput); the concrete
// sentinel (ErrNonSquare, ErrRaggedRows, …) narrows the cause. Input errors
// are detected before any solver state is allocated.
var (
	// ErrInvalidInput is the root of every input-shape or input-value error.
	ErrInvalidInput = errors.New("hungarian: invalid input")

	// ErrNilMatrix is returned when the weight matrix is nil.
	ErrNilMatrix = fmt.Errorf("%w: nil weight matrix", ErrInvalidInput)

	// ErrNonSquare is returned when the row count differs from the column count.
	ErrNonSquare = fmt.Errorf("%w: weight matrix is not square", ErrInvalidInput)

	// ErrRaggedRows is returned when a row length disagrees with n.
	ErrRaggedRows = fmt.Errorf("%w: row length disagrees with n", ErrInvalidInput)

	// ErrNonFinite is returned when a weight is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("%w: weight is NaN or Inf", ErrInvalidInput)

	// ErrInvariantViolation marks an algorithm defect (never bad input).
	// The solve stops and no result is returned; see InvariantError.
	ErrInvariantViolation = errors.New("hungarian: internal invariant violation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hungarian: invalid option supplied")

	// ErrCertificate is returned by Verify when a result fails the
	// optimality certificate.
	ErrCertificate = errors.New("hungarian: optimality certificate rejected")
)

// InvariantError describes which defensive check failed, and where.
// It unwraps to ErrInvariantViolation.
type InvariantError struct {
	Phase  string // "tree", "labels" or "matching"
	Round  int    // augmentation round (== root left vertex)
	Detail string
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("hungarian: invariant violated in %s phase (round %d): %s", e.Phase, e.Round, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInvariantViolation) match.
func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// DefaultEps is the relative tolerance used for tightness and feasibility
// checks. Weights are compared against eps·max(1, max|w|).
const DefaultEps = 1e-9

// Option configures the solver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Assign.
type Option func(*Options)

// Options holds solver tolerances and observation hooks.
type Options struct {
	// Eps is the relative tolerance for floating-point tightness checks.
	Eps float64

	// StrictChecks re-verifies feasibility of every pair after each relabel
	// (O(n²) per relabel). Meant for tests and debugging.
	StrictChecks bool

	// OnRelabel is called after every potential update with the shift amount.
	OnRelabel func(round int, delta float64)

	// OnAugment is called after every completed round with the root left
	// vertex and the number of matched pairs the augmenting path rewrote.
	// Returning an error aborts the solve between rounds; the error is
	// returned wrapped and no partial result is produced.
	OnAugment func(round, root, flipped int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Eps = DefaultEps
//   - StrictChecks disabled
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Eps:          DefaultEps,
		StrictChecks: false,
		OnRelabel:    func(int, float64) {},
		OnAugment:    func(int, int, int) error { return nil },
	}
}

// WithTolerance sets the relative tolerance. eps must be finite and ≥ 0.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: tolerance must be finite and non-negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.Eps = eps
	}
}

// WithStrictChecks toggles the full feasibility check after every relabel.
func WithStrictChecks(on bool) Option {
	return func(o *Options) {
		o.StrictChecks = on
	}
}

// WithOnRelabel registers a callback run after every potential update.
func WithOnRelabel(fn func(round int, delta float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelabel = fn
		}
	}
}

// WithOnAugment registers a callback run after every augmentation round;
// returning an error from it stops the solve.
func WithOnAugment(fn func(round, root, flipped int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// gatherOptions applies fns over the defaults and reports the first violation.
func gatherOptions(fns []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Pair is one matched edge.
type Pair struct {
	Left   int
	Right  int
	Weight float64
}

// Stats counts the work done by one solve.
//
//   - Rounds: augmentation rounds (== n on success).
//   - TreeSteps: iterations of the tree-growing loop; ≤ n(n+1)/2.
//   - Relabels: potential updates with a positive shift.
//   - SlackScans: right vertices examined while selecting minimum slack;
//     ≤ n·TreeSteps, the O(n³) term of the algorithm.
type Stats struct {
	Rounds     int
	TreeSteps  int
	Relabels   int
	SlackScans int
}

// Result holds the outcome of a solve.
type Result struct {
	// RightToLeft[v] is the left vertex matched to right vertex v.
	RightToLeft []int

	// LeftToRight[u] is the right vertex matched to left vertex u.
	LeftToRight []int

	// Value is Σ LeftPotential + Σ RightPotential, which equals the total
	// matched weight because every matched edge is tight.
	Value float64

	// LeftPotential and RightPotential are the final vertex labels
	// (the dual certificate of optimality).
	LeftPotential  []float64
	RightPotential []float64

	// Pairs lists matched edges in left-vertex order.
	Pairs []Pair

	// Minimized reports that the result was produced by AssignMin; weights,
	// Value and potentials are then expressed in the caller's (cost) units
	// and the potentials satisfy lu[u] + lv[v] ≤ w[u][v].
	Minimized bool

	// Stats reports counters of the solve.
	Stats Stats
}
