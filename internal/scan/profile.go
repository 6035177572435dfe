package scan

import (
	"fmt"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/jacobian"
	"github.com/san-kum/potflow/internal/linalg"
	"github.com/san-kum/potflow/internal/potential"
)

// Line describes a 1-D sweep along one state axis.
type Line struct {
	Axis     int
	Min, Max float64
	N        int
}

// Trace holds 1-D sweep results, suitable for line plots.
type Trace struct {
	Center field.Vec
	Xs     []float64
	Err    []float64
	DV     []float64
}

// Profile evaluates the pipeline along a line of reference points. DV is
// taken relative to the line center.
func Profile(f field.Flow, base field.Vec, line Line, opts ...Option) (*Trace, error) {
	if line.N < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrBadRegion, line.N)
	}
	if line.Axis < 0 || line.Axis >= len(base) {
		return nil, fmt.Errorf("%w: axis %d out of range for dimension %d", ErrBadRegion, line.Axis, len(base))
	}
	if line.Min >= line.Max {
		return nil, fmt.Errorf("%w: empty interval", ErrBadRegion)
	}

	o := options{norm: linalg.Frobenius, est: jacobian.NewCentral(), workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	xs := linspace(line.Min, line.Max, line.N)

	center := base.Clone()
	center[line.Axis] = (line.Min + line.Max) / 2
	centerLocal, err := potential.Analyze(f, center, potential.WithEstimator(o.est))
	if err != nil {
		return nil, fmt.Errorf("scan: linearization at center failed: %w", err)
	}

	tr := &Trace{
		Center: center,
		Xs:     xs,
		Err:    make([]float64, line.N),
		DV:     make([]float64, line.N),
	}

	p := base.Clone()
	for i, x := range xs {
		p[line.Axis] = x

		local, err := potential.Analyze(f, p, potential.WithEstimator(o.est))
		if err != nil {
			return nil, err
		}
		relErr, err := local.RelativeError(o.norm)
		if err != nil {
			return nil, err
		}
		dv, err := centerLocal.Diff(p)
		if err != nil {
			return nil, err
		}
		tr.Err[i] = relErr
		tr.DV[i] = dv
	}
	return tr, nil
}
