// Package kalman defines the sentinel errors and dimension contract for
// the semi-implicit Kalman update.
package kalman

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the kalman package.
var (
	// ErrNilInput indicates that a required matrix or vector was nil.
	ErrNilInput = errors.New("kalman: nil matrix or vector input")

	// ErrDimensionMismatch indicates inconsistent operand dimensions
	// (see SemiImplicitUpdate for the expected shapes).
	ErrDimensionMismatch = errors.New("kalman: dimension mismatch")

	// ErrSingularMatrix indicates that a required inverse does not exist:
	// either the left transition matrix A1 or the innovation covariance
	// is singular. The update fails hard — no pseudo-inverse fallback.
	ErrSingularMatrix = errors.New("kalman: singular matrix")

	// ErrNotPSD indicates that the innovation covariance handed to the
	// Cholesky-based variant is not positive definite.
	ErrNotPSD = errors.New("kalman: innovation covariance not positive definite")
)

// dims captures the three dimensions of one update:
// m states, p observations, q process-noise inputs.
type dims struct {
	m, p, q int
}

// checkDims reconciles every operand shape against the contract:
//
//	A1, A2, pPrev : m×m    b     : m
//	h             : p×m    zNext : p     rCov : p×p
//	c             : m×q    qCov  : q×q
//
// Any inconsistency yields ErrDimensionMismatch with the offending
// operand named; nil operands yield ErrNilInput.
func checkDims(zNext mat.Vector, pPrev, a1, a2 mat.Matrix, b mat.Vector, h, c, qCov, rCov mat.Matrix) (dims, error) {
	if zNext == nil || pPrev == nil || a1 == nil || a2 == nil || b == nil ||
		h == nil || c == nil || qCov == nil || rCov == nil {
		return dims{}, ErrNilInput
	}

	m, mc := a1.Dims()
	if m != mc {
		return dims{}, fmt.Errorf("%w: A1 is %dx%d, want square", ErrDimensionMismatch, m, mc)
	}
	if r, cc := a2.Dims(); r != m || cc != m {
		return dims{}, fmt.Errorf("%w: A2 is %dx%d, want %dx%d", ErrDimensionMismatch, r, cc, m, m)
	}
	if r, cc := pPrev.Dims(); r != m || cc != m {
		return dims{}, fmt.Errorf("%w: P is %dx%d, want %dx%d", ErrDimensionMismatch, r, cc, m, m)
	}
	if b.Len() != m {
		return dims{}, fmt.Errorf("%w: b has length %d, want %d", ErrDimensionMismatch, b.Len(), m)
	}

	p, hc := h.Dims()
	if hc != m {
		return dims{}, fmt.Errorf("%w: H is %dx%d, want %dx%d", ErrDimensionMismatch, p, hc, p, m)
	}
	if zNext.Len() != p {
		return dims{}, fmt.Errorf("%w: z has length %d, want %d", ErrDimensionMismatch, zNext.Len(), p)
	}
	if r, cc := rCov.Dims(); r != p || cc != p {
		return dims{}, fmt.Errorf("%w: R is %dx%d, want %dx%d", ErrDimensionMismatch, r, cc, p, p)
	}

	cr, q := c.Dims()
	if cr != m {
		return dims{}, fmt.Errorf("%w: C is %dx%d, want %dx%d", ErrDimensionMismatch, cr, q, m, q)
	}
	if r, cc := qCov.Dims(); r != q || cc != q {
		return dims{}, fmt.Errorf("%w: Q is %dx%d, want %dx%d", ErrDimensionMismatch, r, cc, q, q)
	}

	return dims{m: m, p: p, q: q}, nil
}
