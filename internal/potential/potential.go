package potential

import (
	"fmt"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/jacobian"
	"github.com/san-kum/potflow/internal/linalg"
)

// Result pairs a potential difference estimate with its reliability score.
type Result struct {
	// DV is the estimated potential difference V(x) - V(x0).
	DV float64
	// Err is the relative error bound in [0, 1]: the share of the local
	// linearization that the gradient model cannot capture.
	Err float64
}

type options struct {
	norm linalg.NormKind
	est  jacobian.Estimator
}

// Option configures the estimation pipeline.
type Option func(*options)

// WithNorm selects the matrix norm used for the relative error.
func WithNorm(kind linalg.NormKind) Option {
	return func(o *options) { o.norm = kind }
}

// WithEstimator substitutes the Jacobian differencing scheme.
func WithEstimator(est jacobian.Estimator) Option {
	return func(o *options) { o.est = est }
}

func buildOptions(opts []Option) options {
	o := options{
		norm: linalg.Frobenius,
		est:  jacobian.NewCentral(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Local captures the linearization of a flow around a reference point:
// the flow value, the estimated Jacobian and its symmetric/skew split.
// Computing it once lets callers evaluate many displacements cheaply.
type Local struct {
	X0       field.Vec
	F0       field.Vec
	Jacobian *linalg.Matrix
	Sym      *linalg.Matrix
	Skew     *linalg.Matrix
}

// Analyze evaluates and linearizes f at x0.
func Analyze(f field.Flow, x0 field.Vec, opts ...Option) (*Local, error) {
	if len(x0) == 0 {
		return nil, fmt.Errorf("%w: empty reference point", field.ErrDimensionMismatch)
	}
	o := buildOptions(opts)

	f0, err := field.Eval(f, x0)
	if err != nil {
		return nil, err
	}

	jac, err := o.est.Estimate(f, x0)
	if err != nil {
		return nil, err
	}

	sym, skew, err := linalg.SplitSymmetric(jac)
	if err != nil {
		return nil, err
	}

	return &Local{
		X0:       x0.Clone(),
		F0:       f0,
		Jacobian: jac,
		Sym:      sym,
		Skew:     skew,
	}, nil
}

// Diff estimates the potential difference from the reference point to x
// using the second-order Taylor model:
//
//	dV = -f(x0)·d - ½ dᵗ J_sym d,  d = x - x0
func (l *Local) Diff(x field.Vec) (float64, error) {
	if len(x) != len(l.X0) {
		return 0, fmt.Errorf("%w: point has dimension %d, reference %d",
			field.ErrDimensionMismatch, len(x), len(l.X0))
	}
	return Diff(l.F0, l.Sym, x.Sub(l.X0))
}

// RelativeError scores how much of the local linearization is rotational
// under the given norm.
func (l *Local) RelativeError(kind linalg.NormKind) (float64, error) {
	return RelativeError(l.Sym, l.Skew, kind)
}

// Estimate runs the full pipeline: Jacobian estimation at x0, the
// symmetric/skew split, the Taylor estimate of V(x) - V(x0), and the
// rotationality score of the linearization.
func Estimate(f field.Flow, x, x0 field.Vec, opts ...Option) (Result, error) {
	if len(x) != len(x0) || len(x0) == 0 {
		return Result{}, fmt.Errorf("%w: x has dimension %d, x0 has %d",
			field.ErrDimensionMismatch, len(x), len(x0))
	}
	o := buildOptions(opts)

	local, err := Analyze(f, x0, WithEstimator(o.est))
	if err != nil {
		return Result{}, err
	}

	dv, err := local.Diff(x)
	if err != nil {
		return Result{}, err
	}
	relErr, err := local.RelativeError(o.norm)
	if err != nil {
		return Result{}, err
	}

	return Result{DV: dv, Err: relErr}, nil
}
