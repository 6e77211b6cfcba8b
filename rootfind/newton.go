package rootfind

import (
	"fmt"
	"math"
)

// NewtonRaphson finds x such that f(x, args) ≈ 0 by unconstrained
// Newton iteration from the initial guess x0.
//
// Per iteration:
//  1. fx = f(p0, args); an exact zero returns p0 immediately.
//  2. dfx = df(p0, args); dfx == 0 fails with ErrZeroDerivative.
//  3. p = p0 - fx/dfx.
//  4. Converged when |p - p0| <= Atol + Rtol*|p0|; the post-step p is
//     returned.
//
// ErrNoConvergence is returned once MaxIter iterations elapse without
// meeting the tolerance. There is no safeguard: far from a root the
// iteration may diverge or oscillate — use BoundedNewtonRaphson when a
// bracket is known.
//
// Complexity: at most MaxIter evaluations of f and of df.
func NewtonRaphson[A any](f, df Func[A], x0 float64, args A, opts ...Option) (float64, error) {
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

	// 2) Iterate.
	p0 := x0
	for n := 0; n < cfg.MaxIter; n++ {
		fx := f(p0, args)
		if fx == 0 {
			// Landed on an exact root.
			return p0, nil
		}

		dfx := df(p0, args)
		if dfx == 0 {
			return 0, fmt.Errorf("%w at x=%g (iteration %d)", ErrZeroDerivative, p0, n)
		}

		p := p0 - fx/dfx
		if math.Abs(p-p0) <= cfg.Atol+cfg.Rtol*math.Abs(p0) {
			return p, nil
		}
		p0 = p
	}

	return 0, fmt.Errorf("%w (MaxIter=%d)", ErrNoConvergence, cfg.MaxIter)
}
