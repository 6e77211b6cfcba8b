package rootfind_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronum/rootfind"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewtonRaphson
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Solve x^2 = 2 from x0 = 1. The parameter bundle carries the target
//	constant, showing how solver-opaque arguments flow through.
func ExampleNewtonRaphson() {
	type params struct{ c float64 }

	f := func(x float64, p params) float64 { return x*x - p.c }
	df := func(x float64, _ params) float64 { return 2 * x }

	root, err := rootfind.NewtonRaphson(f, df, 1.0, params{c: 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.8f\n", root)

	// Output:
	// root=1.41421356
}

// ExampleBoundedNewtonRaphson solves an implicit normal-depth relation
// inside its physical bracket: Manning's equation for a wide
// rectangular channel, residual f(h) = (1/n)*b*h^(5/3)*sqrt(S) - Q.
// Depth is physically confined to (0, hMax], so the safeguarded solver
// cannot wander into negative depths no matter the guess.
func ExampleBoundedNewtonRaphson() {
	type channel struct {
		n, b, s, q float64
	}

	f := func(h float64, c channel) float64 {
		return c.b * math.Pow(h, 5.0/3.0) * math.Sqrt(c.s) / c.n
	}
	residual := func(h float64, c channel) float64 { return f(h, c) - c.q }
	dresidual := func(h float64, c channel) float64 {
		return 5.0 / 3.0 * c.b * math.Pow(h, 2.0/3.0) * math.Sqrt(c.s) / c.n
	}

	ch := channel{n: 0.013, b: 5, s: 0.001, q: 12}
	h, err := rootfind.BoundedNewtonRaphson(residual, dresidual, 1.0, 1e-6, 10, ch)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("normal depth h=%.4f m\n", h)

	// Output:
	// normal depth h=0.9920 m
}
