// Package scan provides short-circuiting boolean reductions over
// numeric slices.
//
// 🚀 What is scan?
//
//	Network solvers track per-element condition flags (is any node
//	surcharged? did any link flip flow direction?) as numeric arrays and
//	gate expensive work — a filter update, a re-solve — on whether any
//	flag is set. scan.Any answers that in index order and stops at the
//	first hit, so the common all-zero case pays a full pass and the
//	common early-hit case pays almost nothing.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydronum/scan"
//
//	if scan.Any(overflowDepths) {
//	    // at least one element needs the surcharge branch
//	}
//
// Semantics are identical to a plain "any nonzero" reduction: an empty
// slice reduces to false.
//
// Complexity: O(k) where k is the index of the first nonzero element
// (O(n) worst case), zero allocations.
package scan
