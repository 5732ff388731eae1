// Package calc defines the numerical capabilities the geometry core
// depends on: differentiation of user-supplied distance and map functions,
// and solving the square linear system behind the boundary-velocity
// computation. Implementations (finite differences, dual-number forward
// mode, symbolic) live behind this interface so they can be swapped
// without touching the composition algebra.
package calc

import "gonum.org/v1/gonum/mat"

// Engine is the injected differentiation and linear-solve provider.
// Implementations may return NaN components where a function is not
// differentiable; callers are expected to tolerate and propagate them.
type Engine interface {
	// Gradient returns the gradient of f at x.
	Gradient(f func(x []float64) float64, x []float64) []float64

	// Jacobian returns the len(f(x))-by-len(x) matrix of partial
	// derivatives of f at x.
	Jacobian(f func(x []float64) []float64, x []float64) *mat.Dense

	// Derivative returns the derivative of a vector-valued function of a
	// scalar argument at t.
	Derivative(f func(t float64) []float64, t float64) []float64

	// Solve solves the square linear system a·v = b for v. It fails when
	// a is singular or otherwise unsolvable.
	Solve(a *mat.Dense, b []float64) ([]float64, error)
}
