package hungarian

// improveLabels shifts potentials by val > 0:
//
//	lu[u] -= val  for u ∈ S
//	lv[v] += val  for v ∈ T
//	minSlack[v] -= val for v ∉ T
//
// Pairs (S,T) keep their slack, pairs (S,¬T) lose val (val is their minimum,
// so they stay ≥ 0 and at least one becomes tight), pairs (¬S,T) gain val,
// pairs (¬S,¬T) are untouched. Feasibility therefore holds after the call.
//
// Complexity: O(n), or O(n²) with StrictChecks.
func (s *solver) improveLabels(val float64) error {
	var i int
	for i = 0; i < s.n; i++ {
		if s.inS[i] {
			s.lu[i] -= val
		}
	}
	for i = 0; i < s.n; i++ {
		if s.parent[i] != free {
			s.lv[i] += val
		} else {
			s.slackVal[i] -= val
		}
	}
	s.stats.Relabels++
	s.opts.OnRelabel(s.round, val)

	if s.opts.StrictChecks {
		return s.checkFeasible()
	}

	return nil
}

// checkFeasible verifies lu[u] + lv[v] ≥ w[u][v] - tol for every pair.
// Complexity: O(n²).
func (s *solver) checkFeasible() error {
	var u, v int
	for u = 0; u < s.n; u++ {
		for v = 0; v < s.n; v++ {
			if sl := s.slack(u, v); sl < -s.tol {
				return s.invariant("labels", "pair (%d,%d) has negative slack %g", u, v, sl)
			}
		}
	}

	return nil
}
