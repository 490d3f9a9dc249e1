// Package hungarian_test provides small helpers shared across *_test.go
// files: a brute-force reference solver and deterministic random instances.
package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kuhnmunkres/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance passed to Verify in tests.
	epsTiny = 1e-9

	// epsLoose compares float sums produced along different paths.
	epsLoose = 1e-6

	// seedDet is the deterministic seed for random instances.
	seedDet = int64(42)
)

// opaque hides the concrete *Dense type to force the generic At() path.
type opaque struct{ matrix.Matrix }

// mustDense builds a *Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// bruteForce returns the maximum of Σ w[u][p(u)] over all permutations p.
// Only for n ≤ 8.
func bruteForce(w [][]float64) float64 {
	n := len(w)
	if n == 0 {
		return 0
	}
	perm := make([]int, n)
	used := make([]bool, n)
	best, first := 0.0, true

	var rec func(u int, acc float64)
	rec = func(u int, acc float64) {
		if u == n {
			if first || acc > best {
				best, first = acc, false
			}
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm[u] = v
			rec(u+1, acc+w[u][v])
			used[v] = false
		}
	}
	rec(0, 0)

	return best
}

// randomRows returns an n×n instance mixing small integers (many ties) and
// arbitrary reals in [-lim, lim].
func randomRows(rng *rand.Rand, n int, lim float64) [][]float64 {
	w := make([][]float64, n)
	for u := range w {
		w[u] = make([]float64, n)
		for v := range w[u] {
			if rng.Intn(2) == 0 {
				w[u][v] = float64(rng.Intn(11) - 5)
			} else {
				w[u][v] = (rng.Float64()*2 - 1) * lim
			}
		}
	}

	return w
}

// negateRows returns -w.
func negateRows(w [][]float64) [][]float64 {
	out := make([][]float64, len(w))
	for u := range w {
		out[u] = make([]float64, len(w[u]))
		for v := range w[u] {
			out[u][v] = -w[u][v]
		}
	}

	return out
}

// matchedWeight sums w[u][leftToRight[u]].
func matchedWeight(w [][]float64, leftToRight []int) float64 {
	var sum float64
	for u, v := range leftToRight {
		sum += w[u][v]
	}

	return sum
}

// stub is a policy-free Matrix, so tests can feed values *Dense would refuse.
type stub struct{ a [][]float64 }

var _ matrix.Matrix = stub{}

func (m stub) Rows() int { return len(m.a) }
func (m stub) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m stub) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m stub) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m stub) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return stub{cp}
}
