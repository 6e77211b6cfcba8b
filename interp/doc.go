// Package interp samples vector-valued tables over sorted 1-D grids,
// with nearest-neighbor or linear blending and hard clamping at the
// domain edges.
//
// 🚀 What is interp?
//
//	Network solvers describe boundary conditions, rating curves and
//	cross-section geometry as tables: a sorted abscissa grid xp and an
//	ordinate table fp with one row per grid point. interp answers the
//	per-timestep question "what is the table's value at x?":
//	  • Stage hydrographs sampled at the simulation clock
//	  • Rating curves (stage → discharge, area, top width, …)
//	  • Tabulated cross-section properties during transects
//
// ✨ Key features:
//   - vector-valued: one call yields the whole fp row blend (m columns)
//   - binary search placement: O(log n) per sample
//   - two methods: Nearest (tie → left neighbor) and Linear
//   - clamping edge policy: x outside [xp[0], xp[n-1]] returns the first
//     or last row verbatim — never extrapolates, never errors
//   - SampleInto reuses a caller buffer for allocation-free hot loops
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydronum/interp"
//
//	xp := []float64{0, 1, 2}
//	fp := [][]float64{{0, 10}, {1, 20}, {4, 40}}
//
//	row, err := interp.Sample(1.5, xp, fp, interp.Linear)
//	// row == [2.5, 30]
//
// Preconditions:
//
//	xp must be sorted ascending and fp rectangular with len(fp) == len(xp).
//	Sortedness is NOT validated (an O(n) scan would defeat the O(log n)
//	lookup); an unsorted grid yields an unspecified row, not a panic.
//
// Performance:
//
//   - Time:   O(log n + m) per call
//   - Memory: O(m) for Sample, zero allocations for SampleInto
//
// See examples in example_test.go.
package interp
