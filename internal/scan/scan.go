package scan

import (
	"errors"
	"fmt"
	"sync"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/jacobian"
	"github.com/san-kum/potflow/internal/linalg"
	"github.com/san-kum/potflow/internal/potential"
)

// ErrBadRegion indicates an ill-formed sweep region.
var ErrBadRegion = errors.New("scan: invalid region")

// Region describes a rectangle of reference points to sweep, expressed
// as two state-vector axes varied over closed intervals.
type Region struct {
	AxisX, AxisY int
	MinX, MaxX   float64
	MinY, MaxY   float64
	NX, NY       int
}

func (r Region) validate(dim int) error {
	if r.NX < 2 || r.NY < 2 {
		return fmt.Errorf("%w: resolution %dx%d, need at least 2x2", ErrBadRegion, r.NX, r.NY)
	}
	if r.AxisX == r.AxisY {
		return fmt.Errorf("%w: axes must differ, both are %d", ErrBadRegion, r.AxisX)
	}
	if r.AxisX < 0 || r.AxisX >= dim || r.AxisY < 0 || r.AxisY >= dim {
		return fmt.Errorf("%w: axes (%d,%d) out of range for dimension %d", ErrBadRegion, r.AxisX, r.AxisY, dim)
	}
	if r.MinX >= r.MaxX || r.MinY >= r.MaxY {
		return fmt.Errorf("%w: empty interval", ErrBadRegion)
	}
	return nil
}

// Grid holds sweep results. Rows index the Y axis, columns the X axis.
type Grid struct {
	Region Region
	Center field.Vec
	Xs, Ys []float64

	// Err is the rotationality score of the linearization at each point.
	Err [][]float64
	// DV is the estimated potential difference from the region center.
	DV [][]float64
}

type options struct {
	norm    linalg.NormKind
	est     jacobian.Estimator
	workers int
}

type Option func(*options)

func WithNorm(kind linalg.NormKind) Option {
	return func(o *options) { o.norm = kind }
}

func WithEstimator(est jacobian.Estimator) Option {
	return func(o *options) { o.est = est }
}

// WithWorkers parallelizes the sweep over grid rows. Safe because flows
// are pure.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Sweep evaluates the estimation pipeline at every grid point. base
// supplies the values of state components not covered by the region's
// axes. The DV map is taken relative to the grid center, so the center
// cell is always zero.
func Sweep(f field.Flow, base field.Vec, reg Region, opts ...Option) (*Grid, error) {
	if err := reg.validate(len(base)); err != nil {
		return nil, err
	}

	o := options{norm: linalg.Frobenius, est: jacobian.NewCentral(), workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	xs := linspace(reg.MinX, reg.MaxX, reg.NX)
	ys := linspace(reg.MinY, reg.MaxY, reg.NY)

	center := base.Clone()
	center[reg.AxisX] = (reg.MinX + reg.MaxX) / 2
	center[reg.AxisY] = (reg.MinY + reg.MaxY) / 2

	centerLocal, err := potential.Analyze(f, center, potential.WithEstimator(o.est))
	if err != nil {
		return nil, fmt.Errorf("scan: linearization at center failed: %w", err)
	}

	g := &Grid{
		Region: reg,
		Center: center,
		Xs:     xs,
		Ys:     ys,
		Err:    make([][]float64, reg.NY),
		DV:     make([][]float64, reg.NY),
	}
	for row := range g.Err {
		g.Err[row] = make([]float64, reg.NX)
		g.DV[row] = make([]float64, reg.NX)
	}

	row := func(r int) error {
		p := base.Clone()
		p[reg.AxisY] = ys[r]
		for c := 0; c < reg.NX; c++ {
			p[reg.AxisX] = xs[c]

			local, err := potential.Analyze(f, p, potential.WithEstimator(o.est))
			if err != nil {
				return err
			}
			relErr, err := local.RelativeError(o.norm)
			if err != nil {
				return err
			}
			dv, err := centerLocal.Diff(p)
			if err != nil {
				return err
			}
			g.Err[r][c] = relErr
			g.DV[r][c] = dv
		}
		return nil
	}

	if o.workers > 1 {
		if err := parallelRows(reg.NY, o.workers, row); err != nil {
			return nil, err
		}
		return g, nil
	}

	for r := 0; r < reg.NY; r++ {
		if err := row(r); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func parallelRows(n, workers int, fn func(int) error) error {
	if workers > n {
		workers = n
	}

	rows := make(chan int, n)
	for r := 0; r < n; r++ {
		rows <- r
	}
	close(rows)

	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := range rows {
				errs[r] = fn(r)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}
