package body

import "fmt"

// ConfigurationError reports an invalid superposition construction: an op
// sequence that does not match the body count, or an operator other than
// union/difference.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "superposition: " + e.Message
}

// Superposition combines an ordered sequence of bodies with per-pair
// union/difference operators. The fold over the bodies is iterative, so
// evaluation cost stays linear and stack depth constant no matter how many
// bodies are combined — unlike chaining the pairwise combinators, which
// nests a closure per body.
type Superposition struct {
	bodies []Field
	ops    []Op
}

// NewSuperposition builds a superposition over bodies. The ops describe how
// each body after the first is folded into the running result:
//
//   - no ops: every body is unioned in;
//   - one op: that op is repeated for every pair;
//   - len(bodies)-1 ops: used pairwise as given.
//
// Only OpUnion and OpDifference are allowed. Any other op, an op count that
// fits none of the forms above, or an empty body list fails with a
// *ConfigurationError.
func NewSuperposition(bodies []Field, ops ...Op) (*Superposition, error) {
	if len(bodies) == 0 {
		return nil, &ConfigurationError{Message: "at least one body required"}
	}

	switch len(ops) {
	case 0:
		ops = make([]Op, len(bodies)-1) // zero value is OpUnion
	case 1:
		op := ops[0]
		ops = make([]Op, len(bodies)-1)
		for i := range ops {
			ops[i] = op
		}
	case len(bodies) - 1:
		ops = append([]Op(nil), ops...)
	default:
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("%d ops for %d bodies, want %d", len(ops), len(bodies), len(bodies)-1),
		}
	}

	for _, op := range ops {
		if op != OpUnion && op != OpDifference {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("operator %q not allowed, only union and difference", op),
			}
		}
	}

	return &Superposition{
		bodies: append([]Field(nil), bodies...),
		ops:    ops,
	}, nil
}

// Len returns the number of bodies in the superposition.
func (s *Superposition) Len() int { return len(s.bodies) }

// resolve folds the bodies left-to-right and returns the active sub-body's
// distance function and map along with the folded distance. The outcome is
// identical to chaining Union/Difference pairwise, including the tie-break
// toward the earlier body: the strict comparisons never replace on ties.
func (s *Superposition) resolve(x []float64, t float64) (SDF, Map, float64) {
	sdf, mp := s.bodies[0].Resolve(x, t)
	d := s.bodies[0].Distance(x, t)

	for i, op := range s.ops {
		b := s.bodies[i+1]
		db := b.Distance(x, t)

		switch op {
		case OpUnion:
			if db < d {
				sdf, mp = b.Resolve(x, t)
				d = db
			}
		case OpDifference:
			if -db > d {
				bs, bm := b.Resolve(x, t)
				sdf = func(x []float64, t float64) float64 { return -bs(x, t) }
				mp = bm
				d = -db
			}
		}
	}
	return sdf, mp, d
}

// Distance evaluates the folded distance at (x, t).
func (s *Superposition) Distance(x []float64, t float64) float64 {
	_, _, d := s.resolve(x, t)
	return d
}

// Resolve returns the active sub-body's distance function and map at (x, t).
func (s *Superposition) Resolve(x []float64, t float64) (SDF, Map) {
	sdf, mp, _ := s.resolve(x, t)
	return sdf, mp
}
