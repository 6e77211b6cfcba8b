// Package rootfind defines the callable types, configuration options
// and sentinel errors shared by the Newton–Raphson solvers.
package rootfind

import "errors"

// Sentinel errors returned by the rootfind package.
var (
	// ErrNilFunc indicates that f or df was nil.
	ErrNilFunc = errors.New("rootfind: f and df must be non-nil")

	// ErrZeroDerivative indicates that df evaluated to exactly zero during
	// an unconstrained Newton step, so no step direction exists.
	ErrZeroDerivative = errors.New("rootfind: derivative is zero")

	// ErrNoConvergence indicates that the iteration budget was exhausted
	// before the tolerance criterion was met.
	ErrNoConvergence = errors.New("rootfind: no convergence within MaxIter iterations")

	// ErrBadOptions indicates an invalid solver configuration
	// (MaxIter < 1, or a negative tolerance).
	ErrBadOptions = errors.New("rootfind: invalid options")
)

// Func is a scalar equation f(x, args). The args value is caller-owned
// and passed through unmodified on every evaluation; the solvers stay
// generic over its type, so closures, structs and primitive bundles all
// work without boxing.
type Func[A any] func(x float64, args A) float64

// Options configures a solver run.
//
// MaxIter – iteration budget; exceeding it yields ErrNoConvergence.
// Atol    – absolute tolerance. The unconstrained solver stops when
//
//	|p - p0| <= Atol + Rtol*|p0|; the bounded solver stops when its
//	last step satisfies |dx| < Atol.
//
// Rtol    – relative tolerance; participates only in the unconstrained
//
//	criterion (the bounded safeguard uses step size alone, mirroring
//	the classical hybrid).
type Options struct {
	MaxIter int
	Atol    float64
	Rtol    float64
}

// Option represents a functional option for configuring a solver run.
type Option func(*Options)

// WithMaxIter sets the iteration budget. Values < 1 are rejected by the
// solver with ErrBadOptions.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithAtol sets the absolute tolerance. Negative values are rejected by
// the solver with ErrBadOptions.
func WithAtol(atol float64) Option {
	return func(o *Options) {
		o.Atol = atol
	}
}

// WithRtol sets the relative tolerance. Negative values are rejected by
// the solver with ErrBadOptions.
func WithRtol(rtol float64) Option {
	return func(o *Options) {
		o.Rtol = rtol
	}
}

// DefaultOptions returns the reference defaults: MaxIter=50,
// Atol=1.48e-8, Rtol=0.
func DefaultOptions() Options {
	return Options{
		MaxIter: 50,
		Atol:    1.48e-8,
		Rtol:    0,
	}
}

// validate checks an assembled Options value.
func (o Options) validate() error {
	if o.MaxIter < 1 || o.Atol < 0 || o.Rtol < 0 {
		return ErrBadOptions
	}

	return nil
}
