package body

import "math"

// Op identifies a boolean combination of two bodies. Carrying an explicit
// enum (rather than comparing operator functions for identity) keeps
// superposition construction checkable.
type Op int

const (
	OpUnion Op = iota
	OpIntersect
	OpDifference
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpDifference:
		return "difference"
	}
	return "unknown"
}

// csg combines two fields with a min/max operator. Only OpUnion and
// OpIntersect appear here; Difference is built from Intersect and Negate.
type csg struct {
	a, b Field
	op   Op
}

// Union combines two bodies by minimum distance: a point is inside the
// union when it is inside either operand.
func Union(a, b Field) Field { return &csg{a: a, b: b, op: OpUnion} }

// Intersect combines two bodies by maximum distance: a point is inside the
// intersection only when it is inside both operands.
func Intersect(a, b Field) Field { return &csg{a: a, b: b, op: OpIntersect} }

// Difference removes b from a: Intersect(a, Negate(b)).
func Difference(a, b Field) Field { return Intersect(a, Negate(b)) }

// Negate flips a body inside-out. The coordinate map is unchanged.
func Negate(f Field) Field { return &negated{f: f} }

func (c *csg) Distance(x []float64, t float64) float64 {
	da := c.a.Distance(x, t)
	db := c.b.Distance(x, t)
	if c.op == OpIntersect {
		return math.Max(da, db)
	}
	return math.Min(da, db)
}

// Resolve returns the combined distance function together with the map of
// the operand that wins at (x, t). Ties go to the first operand: the strict
// comparisons below never replace it. Selecting the map at evaluation time
// matters because the operands may carry different motions.
func (c *csg) Resolve(x []float64, t float64) (SDF, Map) {
	da := c.a.Distance(x, t)
	db := c.b.Distance(x, t)

	win := c.a
	if c.op == OpIntersect {
		if db > da {
			win = c.b
		}
	} else {
		if db < da {
			win = c.b
		}
	}
	_, mp := win.Resolve(x, t)
	return c.Distance, mp
}

type negated struct {
	f Field
}

func (n *negated) Distance(x []float64, t float64) float64 {
	return -n.f.Distance(x, t)
}

func (n *negated) Resolve(x []float64, t float64) (SDF, Map) {
	sdf, mp := n.f.Resolve(x, t)
	neg := func(x []float64, t float64) float64 { return -sdf(x, t) }
	return neg, mp
}
