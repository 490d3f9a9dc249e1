package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// Verify checks that res is a certified optimal matching for weights:
//
//  1. LeftToRight and RightToLeft are total over {0..n-1} and mutually inverse;
//  2. potentials are feasible: lu[u] + lv[v] ≥ w[u][v] for every pair
//     (≤ when res.Minimized);
//  3. every matched pair is tight: lu[u] + lv[v] = w[u][v];
//  4. Value = Σ matched weights = Σ lu + Σ lv.
//
// Conditions 2–3 prove optimality by LP duality, independent of how res was
// computed. Comparisons use eps relative to max(1, max|w|); sums allow n·tol.
//
// Errors: the input sentinels of Assign, or ErrCertificate wrapped with the
// first violated condition.
//
// Complexity: O(n²).
func Verify(weights matrix.Matrix, res Result, eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("%w: tolerance must be finite and non-negative (%v)", ErrOptionViolation, eps)
	}
	n, w, err := loadMatrix(weights)
	if err != nil {
		return err
	}
	if len(res.LeftToRight) != n || len(res.RightToLeft) != n ||
		len(res.LeftPotential) != n || len(res.RightPotential) != n {
		return fmt.Errorf("%w: result sized for a different n (want %d)", ErrCertificate, n)
	}

	var (
		u, v   int
		sign   = 1.0
		tol    = tolerance(eps, w)
		sl     float64
		sumW   float64
		sumPot float64
	)
	if res.Minimized {
		sign = -1
	}

	// 1. Bijection.
	for u = 0; u < n; u++ {
		v = res.LeftToRight[u]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: left %d matched to out-of-range right %d", ErrCertificate, u, v)
		}
		if res.RightToLeft[v] != u {
			return fmt.Errorf("%w: left %d → right %d but right %d → left %d",
				ErrCertificate, u, v, v, res.RightToLeft[v])
		}
	}

	// 2–3. Feasibility and tightness.
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			sl = sign * (res.LeftPotential[u] + res.RightPotential[v] - w[u*n+v])
			if sl < -tol {
				return fmt.Errorf("%w: pair (%d,%d) violates feasibility by %g", ErrCertificate, u, v, -sl)
			}
		}
		v = res.LeftToRight[u]
		if sl = res.LeftPotential[u] + res.RightPotential[v] - w[u*n+v]; math.Abs(sl) > tol {
			return fmt.Errorf("%w: matched pair (%d,%d) has slack %g", ErrCertificate, u, v, sl)
		}
		sumW += w[u*n+v]
		sumPot += res.LeftPotential[u] + res.RightPotential[u]
	}

	// 4. Objective agreement.
	sumTol := tol * float64(n)
	if math.Abs(sumW-res.Value) > sumTol {
		return fmt.Errorf("%w: value %g differs from matched weight %g", ErrCertificate, res.Value, sumW)
	}
	if math.Abs(sumPot-res.Value) > sumTol {
		return fmt.Errorf("%w: value %g differs from potential sum %g", ErrCertificate, res.Value, sumPot)
	}

	return nil
}
