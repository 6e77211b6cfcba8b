package rootfind

import (
	"fmt"
	"math"
)

// BoundedNewtonRaphson finds a root of f inside the bracket [xLB, xUB]
// using the classical Newton–bisection hybrid: a Newton step is taken
// only when it stays inside the current bracket and keeps shrinking
// fast enough, otherwise the iteration bisects. Given a continuous f
// that changes sign across the bracket, every iterate stays inside it
// and the bracket width never grows, so the search cannot diverge.
//
// Initialization:
//  1. The bracket is reordered so that f(xLB) <= f(xUB); callers may
//     hand the pair in either order.
//  2. An x0 outside the bracket is replaced by its midpoint.
//  3. The running step size dx starts at the full bracket width.
//
// Per iteration, with fx and dfx evaluated at the current x:
//   - Bisect when the Newton step would land outside the bracket
//     (((x-xUB)*dfx - fx) * ((x-xLB)*dfx - fx) >= 0) or when it is not
//     shrinking fast enough (|2*fx| > |dx*dfx|, measured against the
//     PREVIOUS step's dx — the one-iteration lag is part of the
//     classical scheme and is preserved deliberately).
//   - Otherwise take the Newton step dx = fx/dfx, x -= dx.
//   - Return x as soon as |dx| < Atol; the check precedes the next
//     evaluation of f, so the root is not re-evaluated.
//   - Re-evaluate fx, dfx at the new x and shrink the bracket:
//     fx < 0 moves xLB up, otherwise xUB moves down.
//
// The sign change itself is not verified; supplying a non-bracketing
// interval is a caller contract violation with undefined result.
// ErrNoConvergence is returned once MaxIter iterations elapse without
// the step-size criterion being met.
//
// Complexity: at most MaxIter+2 evaluations of f (two extra for the
// bracket reorder) and MaxIter+1 of df.
func BoundedNewtonRaphson[A any](f, df Func[A], x0, xLB, xUB float64, args A, opts ...Option) (float64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	if f == nil || df == nil {
		return 0, ErrNilFunc
	}

	// 2) Orient the bracket: after this, f is taken to be negative at
	//    xLB and positive at xUB.
	x := x0
	if f(xLB, args) > f(xUB, args) {
		xLB, xUB = xUB, xLB
	}

	// 3) Pull an out-of-bracket guess to the midpoint. Note the check
	//    runs against the reordered pair: for a decreasing f the
	//    reorder flips the bounds and most guesses fall through to the
	//    midpoint, which matches the classical scheme.
	if x < xLB || x > xUB {
		x = (xLB + xUB) / 2
	}

	// 4) Seed the running step with the full bracket width.
	dx := math.Abs(xUB - xLB)

	fx := f(x, args)
	dfx := df(x, args)

	for n := 0; n < cfg.MaxIter; n++ {
		// 5) Guard A: the Newton step from x would leave [xLB, xUB].
		//    Guard B: twice the residual exceeds the previous step times
		//    the slope — Newton is converging too slowly.
		outOfBracket := ((x-xUB)*dfx-fx)*((x-xLB)*dfx-fx) >= 0
		tooSlow := math.Abs(2*fx) > math.Abs(dx*dfx)

		if outOfBracket || tooSlow {
			// 6) Bisection step.
			dx = 0.5 * (xUB - xLB)
			x = xLB + dx
		} else {
			// 7) Newton step.
			dx = fx / dfx
			x -= dx
		}

		// 8) Step-size convergence, checked before re-evaluating f so the
		//    returned x is the post-step iterate.
		if math.Abs(dx) < cfg.Atol {
			return x, nil
		}

		// 9) Re-evaluate and shrink the bracket around the sign change.
		fx = f(x, args)
		dfx = df(x, args)
		if fx < 0 {
			xLB = x
		} else {
			xUB = x
		}
	}

	return 0, fmt.Errorf("%w (MaxIter=%d)", ErrNoConvergence, cfg.MaxIter)
}
