// Package kuhnmunkres is a maximum-weight bipartite assignment toolkit built
// around the Kuhn–Munkres (Hungarian) algorithm.
//
// 🚀 What is inside?
//
//	A small, deterministic, zero-surprise library plus a command-line front end:
//		• Dense weight matrices with strict shape and finiteness checks
//		• O(n³) maximum-weight perfect matching on square instances
//		• Minimization and rectangular instances via negation and padding
//		• Dual potentials and an independent optimality certificate check
//
// ✨ Guarantees
//
//   - Deterministic: ties are broken by the lowest index, every time
//   - Certified: results carry potentials that prove optimality by LP duality
//   - No panics on bad input: sentinel errors, checked with errors.Is
//   - Observable: OnRelabel / OnAugment hooks for tracing and cancellation
//
// Layout:
//
//	matrix        Matrix interface, *Dense, builders (Negate, PadSquare), validators
//	hungarian     Assign, AssignRows, AssignMin, Verify
//	cmd/kmassign  CLI, JSON/YAML/TOML documents in, text/JSON/YAML report out
//
// Quick example:
//
//	        red  green  blue
//	alice [  7     4     3 ]
//	bob   [  3     1     2 ]     →  alice→red, bob→blue, carol→green (9)
//	carol [  3     0     0 ]
//
//	go get github.com/katalvlaran/kuhnmunkres/hungarian
package kuhnmunkres
