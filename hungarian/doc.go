// Package hungarian computes a maximum-weight perfect matching on a complete
// bipartite graph with n left and n right vertices (the assignment problem),
// using the Kuhn–Munkres algorithm with vertex potentials.
//
// 🚀 What is Kuhn–Munkres?
//
//	Given an n×n weight matrix w, where w[u][v] is the value of pairing
//	left-vertex u with right-vertex v, find a bijection u → v that maximizes
//	Σ w[u][match(u)]. Typical uses:
//	  • workers ↔ jobs, tracks ↔ detections, drivers ↔ riders
//	  • minimum-cost assignment (negate the weights, see AssignMin)
//
// ✨ How it works:
//   - Every vertex carries a potential (label); lu[u] + lv[v] ≥ w[u][v]
//     holds for every pair at all times ("feasibility").
//   - Each round grows an alternating tree from one free left vertex over
//     tight (zero-slack) edges, tracking per-right-vertex minimum slack.
//   - When no tight edge leaves the tree, potentials shift by the minimum
//     slack; at least one new edge becomes tight.
//   - A free right vertex reached by the tree ends the round: the path back
//     to the root is flipped and the matching grows by one.
//   - After n rounds, Σlu + Σlv equals the matched weight, which certifies
//     optimality (LP duality).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kuhnmunkres/hungarian"
//
//	res, err := hungarian.AssignRows([][]float64{
//	  {7, 4, 3},
//	  {3, 1, 2},
//	  {3, 0, 0},
//	})
//	// res.LeftToRight, res.RightToLeft, res.Value
//
// Determinism:
//
//	Among right vertices with equal minimum slack, the one whose key
//	(slack, left vertex realizing it, right vertex) is lexicographically
//	smallest is selected. Roots are taken in increasing index order.
//	The same input therefore always yields the same matching.
//
// Performance:
//
//   - Time:   O(n³): n rounds, ≤ n tree steps per round, O(n) slack scan per step
//   - Memory: O(n²) for the copied weights, O(n) for everything else
//
// Each call owns its own state, so independent solves may run concurrently.
package hungarian
