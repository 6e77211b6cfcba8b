// Package kalman performs one predict+update cycle of a discrete-time
// linear Kalman filter specialized to semi-implicit transitions
// A₁·x₍ₖ₊₁₎ = A₂·xₖ + b, fusing model predictions with noisy
// observations.
//
// 🚀 What is kalman?
//
//	Semi-implicit hydraulic solvers never hold the state x explicitly —
//	each timestep produces the right-hand side b of an implicit linear
//	relation. This package runs the textbook predict/update cycle on
//	that relation and hands the corrected state BACK in the same
//	currency: b̂ = A₁·x̂, ready to be used as the next step's right-hand
//	side without re-deriving the implicit form.
//
// ✨ One call, seven dense steps (gonum/mat, BLAS-backed):
//  1. x⁻ = A₁⁻¹·b                        (state prediction)
//  2. P⁻ = A₁⁻¹A₂·P·(A₁⁻¹A₂)ᵀ + C·Q·Cᵀ   (covariance prediction)
//  3. Pzz = H·P⁻·Hᵀ + R                  (innovation covariance)
//  4. L = P⁻·Hᵀ·Pzz⁻¹                    (gain)
//  5. P⁺ = (I − L·H)·P⁻                  (covariance update, short form)
//  6. x̂ = x⁻ + L·(z − H·x⁻)              (state update)
//  7. b̂ = A₁·x̂                           (re-expression through the transition)
//
// There is no filter object and no retained state: the caller owns
// P and threads each call's P⁺ into the next call. All inputs are
// read-only; results are freshly allocated.
//
// Two variants:
//
//   - SemiImplicitUpdate     — explicit innovation inverse, the
//     reference formulation.
//   - SemiImplicitUpdateChol — identical contract, but the gain solve
//     runs through a Cholesky factorization of Pzz. Better conditioned
//     over long chained runs; fails with ErrNotPSD when Pzz is not
//     positive definite.
//
// Errors (sentinel):
//
//	– ErrNilInput           if any operand is nil.
//	– ErrDimensionMismatch  if operand shapes disagree (see checkDims contract).
//	– ErrSingularMatrix     if A₁ or the innovation covariance is not invertible.
//	– ErrNotPSD             (Chol variant) if Pzz is not positive definite.
//
// Singularity is a hard failure: no pseudo-inverse is substituted and
// no partial result is returned.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydronum/kalman"
//
//	bHat, pPost, pzz, err := kalman.SemiImplicitUpdate(
//	    z, pPrev, a1, a2, b, h, c, qCov, rCov)
//	// feed bHat and pPost into the next timestep
//
// Complexity: O(M³) per call for state dimension M (tens at most in
// practice), strictly dense.
package kalman
