package kalman

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SemiImplicitUpdate runs one predict+update cycle of the semi-implicit
// Kalman filter and returns the corrected right-hand side b̂ = A₁·x̂,
// the updated state covariance P⁺, and the innovation covariance Pzz.
//
// Operand shapes (m states, p observations, q noise inputs):
//
//	zNext : p      observation vector
//	pPrev : m×m    posterior covariance from the previous cycle
//	a1,a2 : m×m    left/right transition matrices
//	b     : m      implicit right-hand side
//	h     : p×m    observation matrix
//	c     : m×q    noise-input matrix
//	qCov  : q×q    process-noise covariance
//	rCov  : p×p    observation-noise covariance
//
// The inputs are only read; the three results are freshly allocated, so
// chained calls may feed pPost straight back in as the next pPrev.
func SemiImplicitUpdate(zNext mat.Vector, pPrev, a1, a2 mat.Matrix, b mat.Vector, h, c, qCov, rCov mat.Matrix) (*mat.VecDense, *mat.Dense, *mat.Dense, error) {
	d, err := checkDims(zNext, pPrev, a1, a2, b, h, c, qCov, rCov)
	if err != nil {
		return nil, nil, nil, err
	}

	var a1Inv mat.Dense
	if err = a1Inv.Inverse(a1); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: A1: %v", ErrSingularMatrix, err)
	}

	pPred, pzz := predict(&a1Inv, pPrev, a2, h, c, qCov, rCov)

	// 4) Gain via the explicit innovation inverse (reference form).
	var pzzInv mat.Dense
	if err = pzzInv.Inverse(pzz); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: innovation covariance: %v", ErrSingularMatrix, err)
	}
	var pht, gain mat.Dense
	pht.Mul(pPred, h.T())
	gain.Mul(&pht, &pzzInv)

	bHat, pPost := correct(d, &a1Inv, pPred, &gain, zNext, a1, b, h)

	return bHat, pPost, pzz, nil
}

// predict performs steps 1–3: it is shared verbatim by the explicit and
// Cholesky variants. Returns the predicted covariance P⁻ and the
// innovation covariance Pzz.
func predict(a1Inv *mat.Dense, pPrev, a2, h, c, qCov, rCov mat.Matrix) (pPred, pzz *mat.Dense) {
	// 2) P⁻ = (A₁⁻¹A₂)·P·(A₁⁻¹A₂)ᵀ + C·Q·Cᵀ.
	var prop mat.Dense // A₁⁻¹A₂, the effective one-step propagator
	prop.Mul(a1Inv, a2)

	var propP mat.Dense
	propP.Mul(&prop, pPrev)
	pPred = &mat.Dense{}
	pPred.Mul(&propP, prop.T())

	var cq, cqc mat.Dense
	cq.Mul(c, qCov)
	cqc.Mul(&cq, c.T())
	pPred.Add(pPred, &cqc)

	// 3) Pzz = H·P⁻·Hᵀ + R.
	var hp mat.Dense
	hp.Mul(h, pPred)
	pzz = &mat.Dense{}
	pzz.Mul(&hp, h.T())
	pzz.Add(pzz, rCov)

	return pPred, pzz
}

// correct performs steps 1 and 5–7 given the gain: state prediction,
// covariance update and re-expression of the corrected state through
// the transition.
func correct(d dims, a1Inv *mat.Dense, pPred, gain *mat.Dense, zNext mat.Vector, a1 mat.Matrix, b mat.Vector, h mat.Matrix) (*mat.VecDense, *mat.Dense) {
	// 1) x⁻ = A₁⁻¹·b.
	var xPred mat.VecDense
	xPred.MulVec(a1Inv, b)

	// 5) P⁺ = (I − L·H)·P⁻.
	var lh mat.Dense
	lh.Mul(gain, h)
	ident := identity(d.m)
	var ilh mat.Dense
	ilh.Sub(ident, &lh)
	pPost := &mat.Dense{}
	pPost.Mul(&ilh, pPred)

	// 6) x̂ = x⁻ + L·(z − H·x⁻).
	var hx, innov, corr, xHat mat.VecDense
	hx.MulVec(h, &xPred)
	innov.SubVec(zNext, &hx)
	corr.MulVec(gain, &innov)
	xHat.AddVec(&xPred, &corr)

	// 7) b̂ = A₁·x̂.
	bHat := &mat.VecDense{}
	bHat.MulVec(a1, &xHat)

	return bHat, pPost
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	ident := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		ident.Set(i, i, 1)
	}

	return ident
}
