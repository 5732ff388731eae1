package body

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DimensionError reports a Hessian of unsupported size passed to Curvature.
type DimensionError struct {
	Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("curvature: hessian must be 2x2 or 3x3, got %dx%d", e.Got, e.Got)
}

// Curvature derives the mean and Gaussian curvature of the surface from
// the Hessian of the distance field at a point. The caller supplies the
// Hessian; it is not computed here.
//
// Mean curvature is half the trace. Gaussian curvature is the sum of the
// principal 2x2 minors for a 3x3 Hessian, and zero by convention in two
// dimensions.
func Curvature(h mat.Symmetric) (mean, gauss float64, err error) {
	switch n := h.SymmetricDim(); n {
	case 2:
		mean = 0.5 * (h.At(0, 0) + h.At(1, 1))
	case 3:
		mean = 0.5 * (h.At(0, 0) + h.At(1, 1) + h.At(2, 2))
		gauss = h.At(0, 0)*h.At(1, 1) + h.At(0, 0)*h.At(2, 2) + h.At(1, 1)*h.At(2, 2) -
			h.At(0, 1)*h.At(0, 1) - h.At(0, 2)*h.At(0, 2) - h.At(1, 2)*h.At(1, 2)
	default:
		return 0, 0, &DimensionError{Got: n}
	}
	return mean, gauss, nil
}
