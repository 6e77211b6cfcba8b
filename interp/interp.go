package interp

import "sort"

// Sample evaluates the table fp over the sorted grid xp at the point x
// and returns a fresh length-m row, where m is the table width.
//
// Placement uses binary search for the first grid index whose value is
// ≥ x. Out-of-range x clamps to the first or last row — no
// extrapolation, no error. Inside the grid, Linear blends the two
// neighboring rows by distance and Nearest copies the closer one
// (ties toward the left neighbor).
//
// Preconditions and validation (in order):
//  1. xp must be non-empty (ErrEmptyGrid).
//  2. fp must have exactly len(xp) rows (ErrShapeMismatch).
//  3. method must be Nearest or Linear (ErrBadMethod).
//
// xp sortedness is a documented precondition, not validated here.
//
// Complexity:
//
//   - Time:  O(log n + m)
//   - Space: O(m) for the returned row
func Sample(x float64, xp []float64, fp [][]float64, method Method) ([]float64, error) {
	if len(xp) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(fp) != len(xp) {
		return nil, ErrShapeMismatch
	}

	// Width is dictated by the first row; touched rows are re-checked
	// against it in sampleInto.
	dst := make([]float64, len(fp[0]))
	if err := sampleInto(dst, x, xp, fp, method); err != nil {
		return nil, err
	}

	return dst, nil
}

// SampleInto is Sample with a caller-supplied output buffer, for tight
// per-element loops that must not allocate. dst must have length m
// (the table width); its prior contents are overwritten.
func SampleInto(dst []float64, x float64, xp []float64, fp [][]float64, method Method) error {
	if len(xp) == 0 {
		return ErrEmptyGrid
	}
	if len(fp) != len(xp) || len(dst) != len(fp[0]) {
		return ErrShapeMismatch
	}

	return sampleInto(dst, x, xp, fp, method)
}

// sampleInto performs the placement and blend; shape of xp/fp has been
// reconciled by the caller, dst is len(fp[0]).
func sampleInto(dst []float64, x float64, xp []float64, fp [][]float64, method Method) error {
	if method != Nearest && method != Linear {
		return ErrBadMethod
	}

	// 1) Locate the insertion index: first ix with xp[ix] >= x.
	n := len(xp)
	ix := sort.SearchFloat64s(xp, x)

	// 2) Clamp at the grid edges — the defined out-of-range policy.
	if ix == 0 {
		return copyRow(dst, fp[0])
	}
	if ix == n {
		return copyRow(dst, fp[n-1])
	}

	// 3) Interior: distances to the bracketing grid points.
	//    ix is the first index with xp[ix] >= x, so xp[ix-1] < x and
	//    dx0 > 0 — the linear denominator cannot vanish.
	lo, hi := fp[ix-1], fp[ix]
	dx0 := x - xp[ix-1]
	dx1 := xp[ix] - x

	if method == Nearest {
		if dx0 <= dx1 {
			return copyRow(dst, lo)
		}

		return copyRow(dst, hi)
	}

	// 4) Linear blend: weight of the right neighbor grows with dx0.
	if len(lo) != len(dst) || len(hi) != len(dst) {
		return ErrShapeMismatch
	}
	w := dx0 / (dx0 + dx1)
	for j := range dst {
		dst[j] = (1-w)*lo[j] + w*hi[j]
	}

	return nil
}

// copyRow copies src into dst, guarding the rectangularity precondition
// on the one row actually touched.
func copyRow(dst, src []float64) error {
	if len(src) != len(dst) {
		return ErrShapeMismatch
	}
	copy(dst, src)

	return nil
}
