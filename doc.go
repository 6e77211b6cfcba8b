// Package hydronum is the numeric kernel behind per-timestep hydraulic
// and hydrologic network solvers — samplers, safeguarded root finders,
// and a discrete-time Kalman update for fusing model state with noisy
// gauge observations.
//
// 🚀 What is hydronum?
//
//	A small, allocation-light toolbox of the primitives a network solver
//	calls once per element per timestep:
//		• interp:    nearest-neighbor / linear sampling over sorted 1-D grids,
//		  vector-valued, clamped at the domain edges
//		• scan:      short-circuiting "any nonzero" reduction over numeric slices
//		• rootfind:  classic Newton–Raphson, plus a bisection-safeguarded
//		  variant with guaranteed convergence inside a bracket
//		• kalman:    one predict+update cycle for semi-implicit linear
//		  state-space models (A₁·x₊ = A₂·x + b), BLAS-backed via gonum
//
// ✨ Why choose hydronum?
//
//   - Hot-loop friendly – pure functions, no retained state, Into-variants
//     that reuse caller buffers
//   - Rock-solid guarantees – sentinel errors, errors.Is everywhere,
//     no panics on user input
//   - Reentrant – every routine only reads its arguments; call freely
//     from concurrent goroutines over disjoint inputs
//   - Faithful numerics – the safeguarded solver follows the classical
//     Newton–bisection hybrid step for step
//
// Under the hood, everything is organized under four subpackages:
//
//	interp/   — grid sampling (nearest / linear, no extrapolation)
//	kalman/   — semi-implicit Kalman update + square-root (Cholesky) variant
//	rootfind/ — unconstrained & bounded Newton–Raphson
//	scan/     — short-circuit boolean reductions
//
// Quick ASCII example:
//
//	    stage ──interp──► boundary head ──rootfind──► discharge
//	                                          │
//	    gauges ───────────kalman◄─────────────┘
//
//	a boundary condition is sampled, an implicit discharge equation is
//	solved inside its physical bracket, and gauge data is folded back
//	into the model state.
//
// Dive into README-level examples under examples/ and the per-package
// doc.go files for walkthroughs and pseudocode.
//
//	go get github.com/katalvlaran/hydronum
package hydronum
