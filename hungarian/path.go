package hungarian

// improveMatching flips the augmenting path that ends at the free right
// vertex v.
//
// The path is walked iteratively: v ← u = T[v]; if u was matched, its old
// partner is the next right vertex on the path; the walk ends at the root,
// the only left vertex in the tree without a partner. Right vertices are
// collected in s.path (capacity n) and then rewired from the root side:
// mu[T[v]] = v, mv[v] = T[v]. The matching grows by exactly one pair.
//
// T is acyclic (each right vertex enters it once per round), so the walk
// visits at most n right vertices; a longer walk is reported as an
// invariant violation instead of looping.
//
// Complexity: O(depth) ≤ O(n), no allocations.
func (s *solver) improveMatching(v int) (int, error) {
	path := s.path[:0]
	for {
		if len(path) == s.n {
			return 0, s.invariant("matching", "augmenting path longer than %d", s.n)
		}
		u := s.parent[v]
		if u == free {
			return 0, s.invariant("matching", "right %d on the path is not in the tree", v)
		}
		path = append(path, v)
		prev := s.mu[u]
		if prev == free {
			break
		}
		v = prev
	}

	for i := len(path) - 1; i >= 0; i-- {
		v = path[i]
		u := s.parent[v]
		s.mu[u] = v
		s.mv[v] = u
	}
	s.path = path

	return len(path), nil
}
