package body

import (
	"math"
	"testing"
)

// circle returns a static body for a circle of radius r centered at (cx, cy).
func circle(cx, cy, r float64) *Body {
	return NewBody(func(x []float64, t float64) float64 {
		return math.Hypot(x[0]-cx, x[1]-cy) - r
	})
}

var samplePoints = [][]float64{
	{0, 0}, {1, 0}, {0, 1}, {-1.5, 0.5}, {2, 2}, {0.5, -0.25}, {3, -1},
}

var sampleTimes = []float64{0, 0.5, 1, 2.75}

func TestUnionDistance(t *testing.T) {
	a := circle(0, 0, 1)
	b := circle(1.5, 0, 1)
	u := Union(a, b)

	for _, x := range samplePoints {
		for _, tm := range sampleTimes {
			want := math.Min(a.Distance(x, tm), b.Distance(x, tm))
			if got := u.Distance(x, tm); got != want {
				t.Errorf("union at %v t=%g: got %g, want %g", x, tm, got, want)
			}
		}
	}
}

func TestIntersectDistance(t *testing.T) {
	a := circle(0, 0, 1)
	b := circle(0.5, 0, 1)
	in := Intersect(a, b)

	for _, x := range samplePoints {
		for _, tm := range sampleTimes {
			want := math.Max(a.Distance(x, tm), b.Distance(x, tm))
			if got := in.Distance(x, tm); got != want {
				t.Errorf("intersect at %v t=%g: got %g, want %g", x, tm, got, want)
			}
		}
	}
}

func TestDifferenceDeMorgan(t *testing.T) {
	a := circle(0, 0, 2)
	b := circle(0.5, 0.5, 1)
	d := Difference(a, b)

	for _, x := range samplePoints {
		for _, tm := range sampleTimes {
			want := math.Max(a.Distance(x, tm), -b.Distance(x, tm))
			if got := d.Distance(x, tm); got != want {
				t.Errorf("difference at %v t=%g: got %g, want %g", x, tm, got, want)
			}
		}
	}
}

func TestDoubleNegate(t *testing.T) {
	a := circle(0.25, -0.5, 1.5)
	nn := Negate(Negate(a))

	for _, x := range samplePoints {
		for _, tm := range sampleTimes {
			if got, want := nn.Distance(x, tm), a.Distance(x, tm); got != want {
				t.Errorf("negate(negate) at %v t=%g: got %g, want %g", x, tm, got, want)
			}
		}
	}
}

// taggedBody builds a body whose map returns a constant marker point, so
// tests can tell which operand's map a composite selected.
func taggedBody(sdf SDF, tag float64) *Body {
	return NewRawBody(sdf, func(x []float64, t float64) []float64 {
		return []float64{tag, tag}
	})
}

func TestUnionTieBreaksTowardFirst(t *testing.T) {
	sdf := func(x []float64, t float64) float64 { return x[0] - 1 }
	a := taggedBody(sdf, 1)
	b := taggedBody(sdf, 2)

	// Identical distance everywhere: the tie must go to a.
	x := []float64{0.3, 0.7}
	_, mp := Union(a, b).Resolve(x, 0)
	if got := mp(x, 0)[0]; got != 1 {
		t.Errorf("union tie selected map of operand %g, want operand 1", got)
	}

	_, mp = Intersect(a, b).Resolve(x, 0)
	if got := mp(x, 0)[0]; got != 1 {
		t.Errorf("intersect tie selected map of operand %g, want operand 1", got)
	}
}

func TestUnionSelectsWinnerMap(t *testing.T) {
	a := taggedBody(func(x []float64, t float64) float64 { return math.Hypot(x[0], x[1]) - 1 }, 1)
	b := taggedBody(func(x []float64, t float64) float64 { return math.Hypot(x[0]-3, x[1]) - 1 }, 2)
	u := Union(a, b)

	_, mp := u.Resolve([]float64{0.2, 0}, 0)
	if got := mp(nil, 0)[0]; got != 1 {
		t.Errorf("near a: selected map of operand %g, want 1", got)
	}
	_, mp = u.Resolve([]float64{3.2, 0}, 0)
	if got := mp(nil, 0)[0]; got != 2 {
		t.Errorf("near b: selected map of operand %g, want 2", got)
	}
}

func TestNegateKeepsMap(t *testing.T) {
	a := taggedBody(func(x []float64, t float64) float64 { return x[0] }, 7)
	sdf, mp := Negate(a).Resolve([]float64{2, 0}, 0)

	if got := mp(nil, 0)[0]; got != 7 {
		t.Errorf("negate changed the map: got tag %g, want 7", got)
	}
	if got := sdf([]float64{2, 0}, 0); got != -2 {
		t.Errorf("negated sdf: got %g, want -2", got)
	}
}

func TestMovingBodyComposesMap(t *testing.T) {
	// Unit circle in the material frame, frame translated by (t, 0).
	sdf := func(x []float64, t float64) float64 { return math.Hypot(x[0], x[1]) - 1 }
	mp := func(x []float64, t float64) []float64 { return []float64{x[0] - t, x[1]} }
	b := NewMovingBody(sdf, mp)

	// At t=2 the circle is centered at (2, 0): its surface passes (3, 0).
	if got := b.Distance([]float64{3, 0}, 2); math.Abs(got) > 1e-12 {
		t.Errorf("moving circle surface: got distance %g, want 0", got)
	}
	if got := b.Distance([]float64{3, 0}, 0); math.Abs(got-2) > 1e-12 {
		t.Errorf("static query on moving circle: got %g, want 2", got)
	}
}

func TestRawBodyDoesNotCompose(t *testing.T) {
	sdf := func(x []float64, t float64) float64 { return x[0] }
	mp := func(x []float64, t float64) []float64 { return []float64{x[0] + 100} }
	b := NewRawBody(sdf, mp)

	// The distance must ignore the map entirely.
	if got := b.Distance([]float64{2}, 0); got != 2 {
		t.Errorf("raw body distance: got %g, want 2", got)
	}
}
