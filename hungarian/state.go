package hungarian

import "fmt"

// free marks an unmatched vertex or a right vertex outside the current tree.
const free = -1

// solver is the per-call state of one solve. Potentials and the matching
// persist across rounds; inS, parent and the min-slack table are scratch
// reset at the start of every round.
type solver struct {
	n   int
	w   []float64 // row-major weights, w[u*n+v]
	tol float64   // absolute tolerance for tightness/feasibility checks

	lu []float64 // left potentials
	lv []float64 // right potentials

	mu []int // left → right, free if unmatched
	mv []int // right → left, free if unmatched

	inS      []bool    // S: left vertices covered by the tree
	parent   []int     // T: right → discovering left vertex, free if not in T
	slackVal []float64 // min slack over u∈S, for right vertices not in T
	slackArg []int     // the u∈S realizing slackVal

	path []int // bounded scratch for the augmenting path (cap n)

	round int
	opts  *Options
	stats Stats
}

// newSolver allocates the state for an n×n instance and sets the trivial
// feasible labeling: lu[u] = max_v w[u][v], lv[v] = 0.
func newSolver(n int, w []float64, opts *Options) *solver {
	s := &solver{
		n:        n,
		w:        w,
		tol:      tolerance(opts.Eps, w),
		lu:       make([]float64, n),
		lv:       make([]float64, n),
		mu:       make([]int, n),
		mv:       make([]int, n),
		inS:      make([]bool, n),
		parent:   make([]int, n),
		slackVal: make([]float64, n),
		slackArg: make([]int, n),
		path:     make([]int, 0, n),
		opts:     opts,
	}

	var u, v int
	for u = 0; u < n; u++ {
		row := w[u*n : (u+1)*n]
		best := row[0]
		for v = 1; v < n; v++ {
			if row[v] > best {
				best = row[v]
			}
		}
		s.lu[u] = best
		s.mu[u] = free
		s.mv[u] = free
	}

	return s
}

// weight returns w[u][v].
func (s *solver) weight(u, v int) float64 { return s.w[u*s.n+v] }

// slack returns lu[u] + lv[v] - w[u][v]; ≥ 0 under feasibility.
func (s *solver) slack(u, v int) float64 { return s.lu[u] + s.lv[v] - s.w[u*s.n+v] }

// nextRoot returns the lowest-index free left vertex, or free if none.
func (s *solver) nextRoot() int {
	for u := 0; u < s.n; u++ {
		if s.mu[u] == free {
			return u
		}
	}

	return free
}

// resetTree starts a new round rooted at u0: S = {u0}, T = ∅ and
// minSlack[v] = (slack(u0, v), u0) for every v.
func (s *solver) resetTree(u0 int) {
	for i := 0; i < s.n; i++ {
		s.inS[i] = false
		s.parent[i] = free
		s.slackVal[i] = s.slack(u0, i)
		s.slackArg[i] = u0
	}
	s.inS[u0] = true
}

// invariant builds the error for a failed defensive check in the current round.
func (s *solver) invariant(phase, format string, args ...any) error {
	return &InvariantError{Phase: phase, Round: s.round, Detail: fmt.Sprintf(format, args...)}
}
