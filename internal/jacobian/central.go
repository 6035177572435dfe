package jacobian

import (
	"sync"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/linalg"
)

// defaultCentralStep is cbrt(machine epsilon), the usual base step for
// second-order central differences.
const defaultCentralStep = 6.0554544523933395e-06

// Central estimates the Jacobian with central differences, second order
// in the step. Each coordinate direction costs two flow evaluations.
type Central struct {
	// Step is the base differencing step; zero means the default.
	Step float64
	// Workers sets the number of goroutines evaluating columns. Values
	// below 2 keep the estimate serial. Safe because flows are pure.
	Workers int
}

func NewCentral() *Central {
	return &Central{}
}

func (c *Central) Estimate(f field.Flow, x0 field.Vec) (*linalg.Matrix, error) {
	n := len(x0)
	if n == 0 {
		return nil, field.ErrDimensionMismatch
	}

	base := c.Step
	if base <= 0 {
		base = defaultCentralStep
	}

	jac := linalg.New(n, n)

	if c.Workers > 1 && n > 1 {
		if err := c.estimateParallel(f, x0, base, jac); err != nil {
			return nil, err
		}
		return jac, nil
	}

	for j := 0; j < n; j++ {
		if err := centralColumn(f, x0, base, j, jac); err != nil {
			return nil, err
		}
	}
	return jac, nil
}

// centralColumn fills column j of jac. Columns touch disjoint entries,
// so concurrent calls on distinct j are safe.
func centralColumn(f field.Flow, x0 field.Vec, base float64, j int, jac *linalg.Matrix) error {
	h := stepFor(base, x0[j])

	xp := x0.Clone()
	xp[j] += h
	fp, err := field.Eval(f, xp)
	if err != nil {
		return err
	}

	xm := x0.Clone()
	xm[j] -= h
	fm, err := field.Eval(f, xm)
	if err != nil {
		return err
	}

	inv := 1 / (2 * h)
	for i := 0; i < len(x0); i++ {
		jac.Set(i, j, (fp[i]-fm[i])*inv)
	}
	return nil
}

func (c *Central) estimateParallel(f field.Flow, x0 field.Vec, base float64, jac *linalg.Matrix) error {
	n := len(x0)
	workers := c.Workers
	if workers > n {
		workers = n
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	cols := make(chan int, n)
	for j := 0; j < n; j++ {
		cols <- j
	}
	close(cols)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range cols {
				errs[j] = centralColumn(f, x0, base, j, jac)
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
