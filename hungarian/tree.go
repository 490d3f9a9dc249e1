package hungarian

import "math"

// augment grows the alternating tree of the current round until a free right
// vertex is reached, then flips the augmenting path into the matching.
// Returns the number of right vertices the path rewrote.
//
// Loop body:
//  1. select v ∉ T minimizing (slack, argmin u, v);
//  2. if that slack is positive, relabel by it (the only potential update);
//  3. (u, v) is now tight: T[v] = u;
//  4. v matched to u1 → absorb u1 into S and refresh the slack table;
//  5. v free → improveMatching(v) and stop.
//
// Each iteration adds one vertex to T, so the loop runs at most n times,
// each doing an O(n) scan: O(n²) per round.
func (s *solver) augment() (int, error) {
	var (
		v, u int
		val  float64
		j    int
	)
	for {
		// Step 1: linear scan for the minimum-slack right vertex outside T.
		v, u, val = free, free, 0
		for j = 0; j < s.n; j++ {
			if s.parent[j] != free {
				continue
			}
			s.stats.SlackScans++
			sv, su := s.slackVal[j], s.slackArg[j]
			if v == free || sv < val || (sv == val && su < u) {
				v, u, val = j, su, sv
			}
		}
		s.stats.TreeSteps++
		if v == free {
			return 0, s.invariant("tree", "every right vertex is in the tree but none is free")
		}
		if !s.inS[u] {
			return 0, s.invariant("tree", "slack of right %d is realized by left %d outside the tree", v, u)
		}

		// Step 2: relabel when no edge leaving the tree is tight yet.
		if val > 0 {
			if err := s.improveLabels(val); err != nil {
				return 0, err
			}
		}

		// Step 3: (u, v) must be tight now.
		if sl := s.slack(u, v); math.Abs(sl) > s.tol {
			return 0, s.invariant("tree", "edge (%d,%d) selected with slack %g", u, v, sl)
		}
		s.parent[v] = u

		// Step 5: free right vertex ends the round.
		u1 := s.mv[v]
		if u1 == free {
			return s.improveMatching(v)
		}

		// Step 4: follow the matched edge and extend S.
		if s.inS[u1] {
			return 0, s.invariant("tree", "left %d matched to right %d is already in the tree", u1, v)
		}
		s.inS[u1] = true
		for j = 0; j < s.n; j++ {
			if s.parent[j] != free {
				continue
			}
			if sl := s.slack(u1, j); s.slackVal[j] > sl {
				s.slackVal[j] = sl
				s.slackArg[j] = u1
			}
		}
	}
}
