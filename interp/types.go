// Package interp defines the sampling method flags and sentinel errors
// shared by Sample and SampleInto.
package interp

import "errors"

// Sentinel errors returned by the interp package.
var (
	// ErrEmptyGrid indicates that the abscissa grid xp has no points.
	ErrEmptyGrid = errors.New("interp: grid xp is empty")

	// ErrShapeMismatch indicates that the ordinate table fp does not have
	// exactly one row per grid point, or that a touched row (or the dst
	// buffer) does not match the table width.
	ErrShapeMismatch = errors.New("interp: fp/dst shape does not match grid")

	// ErrBadMethod indicates a Method other than Nearest or Linear.
	ErrBadMethod = errors.New("interp: unknown interpolation method")
)

// Method selects how a sample blends the two neighboring table rows.
//
// The integer values are stable and mirror the solver convention
// (0 = nearest, 1 = linear); do not reorder.
type Method int

const (
	// Nearest returns the row whose grid point is closest to x.
	// Exact ties resolve toward the left (lower-index) neighbor.
	Nearest Method = iota

	// Linear returns the distance-weighted blend of the two neighbors.
	Linear
)
