// Package sdfx adapts solids from the github.com/deadsy/sdfx CAD library
// into implicit bodies. sdfx supplies the concrete shapes; this package
// only bridges its Evaluate methods to the body.SDF signature.
package sdfx

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/cfdkit/immerse/pkg/body"
)

// FromSDF3 wraps a static sdfx solid as a three-dimensional body.
func FromSDF3(s sdf.SDF3) *body.Body {
	return body.NewBody(distance3(s))
}

// Moving wraps an sdfx solid defined in a material frame: mp carries query
// points into that frame, and the solid's motion is whatever mp describes.
func Moving(s sdf.SDF3, mp body.Map) *body.Body {
	return body.NewMovingBody(distance3(s), mp)
}

// FromSDF2 wraps a static two-dimensional sdfx shape as a body.
func FromSDF2(s sdf.SDF2) *body.Body {
	return body.NewBody(distance2(s))
}

// Moving2 wraps a two-dimensional sdfx shape defined in a material frame.
func Moving2(s sdf.SDF2, mp body.Map) *body.Body {
	return body.NewMovingBody(distance2(s), mp)
}

func distance3(s sdf.SDF3) body.SDF {
	return func(x []float64, t float64) float64 {
		return s.Evaluate(v3.Vec{X: x[0], Y: x[1], Z: x[2]})
	}
}

func distance2(s sdf.SDF2) body.SDF {
	return func(x []float64, t float64) float64 {
		return s.Evaluate(v2.Vec{X: x[0], Y: x[1]})
	}
}
