package body

// SDF is a signed distance function: the value at (x, t) is the signed
// distance from x to the body surface at time t, negative inside and
// positive outside. Pseudo-SDFs (implicit functions that vanish on the
// surface but are not true distances elsewhere) are acceptable; the
// measurement routine normalizes by the gradient magnitude.
type SDF func(x []float64, t float64) float64

// Map is a time-dependent coordinate transform applied to query points,
// used to express moving or deforming geometry. It must return a point of
// the same dimension as its input.
type Map func(x []float64, t float64) []float64

// Identity is the default coordinate map for static bodies.
func Identity(x []float64, t float64) []float64 { return x }

// Field is the capability shared by every implicit body: single bodies,
// boolean combinations, and multi-body superpositions all implement it.
// Fields are immutable once constructed, so concurrent evaluation against
// the same value needs no locking.
type Field interface {
	// Distance evaluates the body's combined distance function at (x, t).
	Distance(x []float64, t float64) float64

	// Resolve returns the evaluable distance function and the uncomposed
	// coordinate map of the sub-body that is active at (x, t). For a single
	// body these are just its own pair; composite fields select the winning
	// operand's pair at the query point.
	Resolve(x []float64, t float64) (SDF, Map)
}

// Body is a single implicit body: one distance function and one coordinate
// map. The evaluable distance stored at construction already reflects
// whether the map was composed in; the map itself is always kept uncomposed
// so the measurement routine can differentiate it separately.
type Body struct {
	dist SDF
	mp   Map
}

// NewBody wraps a distance function as a static body with the identity map.
func NewBody(sdf SDF) *Body {
	return &Body{dist: sdf, mp: Identity}
}

// NewMovingBody builds a body whose distance function is defined in the
// material frame described by mp: the evaluable distance is
// sdf(mp(x,t), t).
func NewMovingBody(sdf SDF, mp Map) *Body {
	dist := func(x []float64, t float64) float64 {
		return sdf(mp(x, t), t)
	}
	return &Body{dist: dist, mp: mp}
}

// NewRawBody builds a body whose distance function is already in final
// evaluable form. The map is not composed into the distance; it is retained
// only for boundary-velocity measurement.
func NewRawBody(sdf SDF, mp Map) *Body {
	return &Body{dist: sdf, mp: mp}
}

// Distance evaluates the body's distance function.
func (b *Body) Distance(x []float64, t float64) float64 { return b.dist(x, t) }

// Resolve returns the body's own distance function and map.
func (b *Body) Resolve(x []float64, t float64) (SDF, Map) { return b.dist, b.mp }
