// Package rootfind solves scalar equations f(x)=0 with Newton–Raphson
// iterations: a classic unconstrained variant and a
// bisection-safeguarded variant that cannot leave a caller-supplied
// bracket.
//
// 🚀 What is rootfind?
//
//	Hydraulic solvers meet implicit scalar equations constantly —
//	normal-depth and critical-depth relations, orifice and weir
//	equations, pressurization thresholds. Both solvers take f and its
//	derivative df as plain function values plus an opaque args bundle,
//	so a solver can evaluate the governing equation without the package
//	knowing anything about its parameters.
//
// ✨ The two variants:
//
//   - NewtonRaphson — pure Newton steps. Quadratic convergence near a
//     root, but no safeguard: it may diverge or oscillate on
//     ill-conditioned problems. That is accepted behavior; use the
//     bounded variant when a physical bracket is known.
//
//   - BoundedNewtonRaphson — the classical Newton–bisection hybrid
//     (cf. Numerical Recipes' rtsafe): a Newton step is taken only when
//     it stays inside the bracket and shrinks fast enough, otherwise the
//     iteration bisects. Given a valid bracket over a continuous f, the
//     bracket width never grows and every iterate stays inside it, so
//     convergence is guaranteed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydronum/rootfind"
//
//	type channel struct{ q, n, s float64 }
//
//	f := func(h float64, c channel) float64 { /* Manning residual */ ... }
//	df := func(h float64, c channel) float64 { /* dresidual/dh */ ... }
//
//	h, err := rootfind.BoundedNewtonRaphson(f, df, h0, 0, hMax, c)
//
// Configuration uses functional options over the reference defaults
// (MaxIter=50, Atol=1.48e-8, Rtol=0):
//
//	rootfind.NewtonRaphson(f, df, x0, args,
//	    rootfind.WithMaxIter(100), rootfind.WithAtol(1e-12))
//
// Errors (sentinel):
//
//	– ErrNilFunc         if f or df is nil.
//	– ErrBadOptions      if MaxIter < 1 or a tolerance is negative.
//	– ErrZeroDerivative  if df(x)=0 during an unconstrained step.
//	– ErrNoConvergence   if MaxIter elapses without meeting the tolerance.
//
// Caller contract for the bounded variant: [xLB, xUB] must bracket a
// sign change of f (f negative at one end, positive at the other). The
// pair may be supplied in either order — it is reordered internally so
// that f(xLB) <= f(xUB) — but the sign change itself is not verified;
// behavior without one is undefined.
//
// Complexity: O(MaxIter) evaluations of f and df, zero allocations.
package rootfind
