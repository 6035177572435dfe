package potential

import (
	"fmt"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/linalg"
)

// Diff computes the second-order Taylor estimate of the potential
// difference for a displacement d, given the flow value f0 at the
// reference point and the symmetric part sym of the local Jacobian:
//
//	dV = -f0·d - ½ dᵗ·sym·d
//
// Only the symmetric part participates: it is exactly the component a
// gradient field's Hessian can produce.
func Diff(f0 field.Vec, sym *linalg.Matrix, d field.Vec) (float64, error) {
	n := len(d)
	if len(f0) != n || sym.Rows() != n || sym.Cols() != n {
		return 0, fmt.Errorf("%w: f0 %d, sym %dx%d, d %d",
			field.ErrDimensionMismatch, len(f0), sym.Rows(), sym.Cols(), n)
	}

	sd, err := sym.MulVec(d)
	if err != nil {
		return 0, err
	}
	return -f0.Dot(d) - 0.5*d.Dot(sd), nil
}

// RelativeError computes the rotationality score
//
//	err = ‖skew‖ / (‖skew‖ + ‖sym‖)
//
// under the selected norm. When the Jacobian is the zero matrix both
// norms vanish and the ratio is the indeterminate form 0/0; the score is
// then defined as 0, since a vanishing linearization has no rotational
// component for the gradient model to miss.
func RelativeError(sym, skew *linalg.Matrix, kind linalg.NormKind) (float64, error) {
	if sym.Rows() != skew.Rows() || sym.Cols() != skew.Cols() {
		return 0, fmt.Errorf("%w: sym %dx%d, skew %dx%d",
			field.ErrDimensionMismatch, sym.Rows(), sym.Cols(), skew.Rows(), skew.Cols())
	}

	ns, err := linalg.Norm(skew, kind)
	if err != nil {
		return 0, err
	}
	nm, err := linalg.Norm(sym, kind)
	if err != nil {
		return 0, err
	}

	if ns == 0 && nm == 0 {
		return 0, nil
	}
	return ns / (ns + nm), nil
}
