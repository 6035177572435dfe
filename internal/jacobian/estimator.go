package jacobian

import (
	"math"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/linalg"
)

// Estimator numerically approximates the Jacobian of a flow at a point.
type Estimator interface {
	Estimate(f field.Flow, x0 field.Vec) (*linalg.Matrix, error)
}

// stepFor scales the base step by the coordinate magnitude so that
// differencing stays well conditioned away from the origin.
func stepFor(base, coord float64) float64 {
	scale := math.Abs(coord)
	if scale < 1 {
		scale = 1
	}
	return base * scale
}
