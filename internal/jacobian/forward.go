package jacobian

import (
	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/linalg"
)

// defaultForwardStep is sqrt(machine epsilon), the usual base step for
// first-order forward differences.
const defaultForwardStep = 1.4901161193847656e-08

// Forward estimates the Jacobian with forward differences. First order
// in the step, but only n+1 flow evaluations instead of 2n; useful when
// the flow is expensive and accuracy demands are modest.
type Forward struct {
	Step float64
}

func NewForward() *Forward {
	return &Forward{}
}

func (fw *Forward) Estimate(f field.Flow, x0 field.Vec) (*linalg.Matrix, error) {
	n := len(x0)
	if n == 0 {
		return nil, field.ErrDimensionMismatch
	}

	base := fw.Step
	if base <= 0 {
		base = defaultForwardStep
	}

	f0, err := field.Eval(f, x0)
	if err != nil {
		return nil, err
	}

	jac := linalg.New(n, n)
	for j := 0; j < n; j++ {
		h := stepFor(base, x0[j])

		xp := x0.Clone()
		xp[j] += h
		fp, err := field.Eval(f, xp)
		if err != nil {
			return nil, err
		}

		inv := 1 / h
		for i := 0; i < n; i++ {
			jac.Set(i, j, (fp[i]-f0[i])*inv)
		}
	}
	return jac, nil
}
