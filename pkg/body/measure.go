package body

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cfdkit/immerse/pkg/calc"
)

// Measurement is a pointwise geometry sample: the corrected signed
// distance to the nearest surface, the outward unit normal, and the
// velocity of the surface at the query point.
type Measurement struct {
	Distance float64
	Normal   []float64
	Velocity []float64
}

// Measurer evaluates measurements against any Field using an injected
// differentiation and linear-solve provider. A Measurer is stateless and
// safe for concurrent use.
type Measurer struct {
	calc calc.Engine
}

// NewMeasurer returns a Measurer backed by the given numerical engine.
func NewMeasurer(c calc.Engine) *Measurer {
	return &Measurer{calc: c}
}

// Measure computes distance, normal, and velocity for f at (x, t).
//
// The raw distance is divided by the gradient magnitude, which turns a
// pseudo-SDF into a first-order-accurate true distance: near the surface
// f(x) ≈ d·|∇f|. The boundary velocity comes from treating the coordinate
// map as a material coordinate, ξ = map(x,t) constant following the
// boundary, so by the chain rule ∂map/∂t + J·ẋ = 0 and the velocity is the
// solution of J·ẋ = -∂map/∂t.
//
// If the spatial gradient contains NaN the field is degenerate at x and
// Measure returns the raw distance with zero normal and velocity, without
// error; callers must treat an all-zero normal as undefined geometry, not
// a flat surface. A singular map Jacobian fails the velocity solve and is
// returned as an error — coordinate maps are expected to be invertible at
// query points.
func (m *Measurer) Measure(f Field, x []float64, t float64) (Measurement, error) {
	sdf, mp := f.Resolve(x, t)
	d0 := sdf(x, t)

	n := m.calc.Gradient(func(p []float64) float64 {
		return sdf(p, t)
	}, x)
	for _, c := range n {
		if math.IsNaN(c) {
			return Measurement{
				Distance: d0,
				Normal:   make([]float64, len(x)),
				Velocity: make([]float64, len(x)),
			}, nil
		}
	}

	mag := floats.Norm(n, 2)
	floats.Scale(1/mag, n)

	jac := m.calc.Jacobian(func(p []float64) []float64 {
		return mp(p, t)
	}, x)
	mdot := m.calc.Derivative(func(tt float64) []float64 {
		return mp(x, tt)
	}, t)
	floats.Scale(-1, mdot)

	vel, err := m.calc.Solve(jac, mdot)
	if err != nil {
		return Measurement{}, fmt.Errorf("boundary velocity at t=%g: %w", t, err)
	}

	return Measurement{
		Distance: d0 / mag,
		Normal:   n,
		Velocity: vel,
	}, nil
}
