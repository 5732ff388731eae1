// Package gonum implements the calc.Engine interface with central finite
// differences from gonum's diff/fd package and dense LU solves from
// gonum's mat package.
package gonum

import (
	"fmt"

	"github.com/cfdkit/immerse/pkg/calc"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Compile-time interface check.
var _ calc.Engine = (*Engine)(nil)

// Engine estimates derivatives by central differences. The zero value is
// not usable; construct with New.
type Engine struct {
	settings fd.Settings
	jacobian fd.JacobianSettings
}

// New returns an Engine using the central difference formula with the
// default step size.
func New() *Engine {
	return &Engine{
		settings: fd.Settings{Formula: fd.Central},
		jacobian: fd.JacobianSettings{Formula: fd.Central},
	}
}

// Gradient estimates the gradient of f at x.
func (e *Engine) Gradient(f func(x []float64) float64, x []float64) []float64 {
	return fd.Gradient(nil, f, x, &e.settings)
}

// Jacobian estimates the Jacobian of f at x. The output dimension is taken
// from one evaluation of f.
func (e *Engine) Jacobian(f func(x []float64) []float64, x []float64) *mat.Dense {
	m := len(f(x))
	dst := mat.NewDense(m, len(x), nil)
	fd.Jacobian(dst, func(y, p []float64) {
		copy(y, f(p))
	}, x, &e.jacobian)
	return dst
}

// Derivative estimates d/dt of a vector-valued function component-wise.
func (e *Engine) Derivative(f func(t float64) []float64, t float64) []float64 {
	out := make([]float64, len(f(t)))
	for i := range out {
		out[i] = fd.Derivative(func(tt float64) float64 {
			return f(tt)[i]
		}, t, &e.settings)
	}
	return out
}

// Solve solves a·v = b by LU decomposition.
func (e *Engine) Solve(a *mat.Dense, b []float64) ([]float64, error) {
	var v mat.VecDense
	if err := v.SolveVec(a, mat.NewVecDense(len(b), b)); err != nil {
		r, c := a.Dims()
		return nil, fmt.Errorf("solve %dx%d system: %w", r, c, err)
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out, nil
}
