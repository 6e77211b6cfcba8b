package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronum/rootfind"
)

// recorder wraps the x^2-c problem and records every abscissa at which
// f is evaluated, so tests can assert the bracket property.
type recorder struct {
	c    float64
	seen *[]float64
}

func recSq(x float64, r recorder) float64 {
	*r.seen = append(*r.seen, x)

	return x*x - r.c
}

func recDsq(x float64, _ recorder) float64 { return 2 * x }

// TestBoundedNewtonRaphson_ConvergesInsideBracket verifies convergence
// to sqrt(2) on [0,2] from an interior guess.
func TestBoundedNewtonRaphson_ConvergesInsideBracket(t *testing.T) {
	root, err := rootfind.BoundedNewtonRaphson(sq, dsq, 1.0, 0, 2, sqProblem{c: 2})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1.48e-8)
}

// TestBoundedNewtonRaphson_OutsideGuessFallsToMidpoint verifies that an
// x0 outside the bracket is replaced by the midpoint and the solve
// still converges.
func TestBoundedNewtonRaphson_OutsideGuessFallsToMidpoint(t *testing.T) {
	for _, x0 := range []float64{-5, 7, 1e9} {
		root, err := rootfind.BoundedNewtonRaphson(sq, dsq, x0, 0, 2, sqProblem{c: 2})
		require.NoError(t, err, "x0=%g", x0)
		assert.InDelta(t, math.Sqrt2, root, 1.48e-8, "x0=%g", x0)
	}
}

// TestBoundedNewtonRaphson_ReversedBracket verifies that supplying the
// bounds backwards ([2,0]) yields the same root after the internal
// reorder.
func TestBoundedNewtonRaphson_ReversedBracket(t *testing.T) {
	root, err := rootfind.BoundedNewtonRaphson(sq, dsq, 1.0, 2, 0, sqProblem{c: 2})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1.48e-8)
}

// TestBoundedNewtonRaphson_DecreasingFunction verifies the reorder on a
// function that is negative at the upper bound: f(x) = 2 - x^2 on [0,2].
func TestBoundedNewtonRaphson_DecreasingFunction(t *testing.T) {
	f := func(x float64, _ struct{}) float64 { return 2 - x*x }
	df := func(x float64, _ struct{}) float64 { return -2 * x }

	root, err := rootfind.BoundedNewtonRaphson(f, df, 1.0, 0, 2, struct{}{})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1.48e-8)
}

// TestBoundedNewtonRaphson_IteratesStayBracketed verifies the safeguard
// property: every point at which f is evaluated lies inside [0,2]
// (the two reorder probes sit exactly on the bounds).
func TestBoundedNewtonRaphson_IteratesStayBracketed(t *testing.T) {
	seen := make([]float64, 0, 64)
	args := recorder{c: 2, seen: &seen}

	root, err := rootfind.BoundedNewtonRaphson(recSq, recDsq, 1.9, 0, 2, args)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1.48e-8)

	for _, x := range seen {
		assert.GreaterOrEqual(t, x, 0.0, "iterate left the bracket")
		assert.LessOrEqual(t, x, 2.0, "iterate left the bracket")
	}
}

// TestBoundedNewtonRaphson_SteepFlanksForceBisection verifies
// convergence on a problem where pure Newton from the initial guess
// would overshoot the bracket: f(x) = tanh(20*(x-0.1)) on [-1,1] is
// nearly flat away from its root, so early Newton steps are rejected in
// favor of bisection.
func TestBoundedNewtonRaphson_SteepFlanksForceBisection(t *testing.T) {
	f := func(x float64, _ struct{}) float64 { return math.Tanh(20 * (x - 0.1)) }
	df := func(x float64, _ struct{}) float64 {
		c := math.Cosh(20 * (x - 0.1))

		return 20 / (c * c)
	}

	root, err := rootfind.BoundedNewtonRaphson(f, df, 0.9, -1, 1, struct{}{})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, root, 1.48e-8)
}

// TestBoundedNewtonRaphson_NoConvergence verifies ErrNoConvergence when
// the iteration budget is too small for the tolerance.
func TestBoundedNewtonRaphson_NoConvergence(t *testing.T) {
	_, err := rootfind.BoundedNewtonRaphson(sq, dsq, 1.0, 0, 2, sqProblem{c: 2},
		rootfind.WithMaxIter(1))
	assert.ErrorIs(t, err, rootfind.ErrNoConvergence)
}

// TestBoundedNewtonRaphson_BadOptions verifies option validation runs
// before any evaluation of f.
func TestBoundedNewtonRaphson_BadOptions(t *testing.T) {
	boom := func(float64, struct{}) float64 {
		t.Fatal("f must not be evaluated with invalid options")

		return 0
	}

	_, err := rootfind.BoundedNewtonRaphson(boom, boom, 1.0, 0, 2, struct{}{},
		rootfind.WithMaxIter(-3))
	assert.ErrorIs(t, err, rootfind.ErrBadOptions)
}

// TestBoundedNewtonRaphson_NilFunc verifies ErrNilFunc.
func TestBoundedNewtonRaphson_NilFunc(t *testing.T) {
	_, err := rootfind.BoundedNewtonRaphson[sqProblem](nil, nil, 1.0, 0, 2, sqProblem{c: 2})
	assert.ErrorIs(t, err, rootfind.ErrNilFunc)
}
