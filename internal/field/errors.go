package field

import (
	"errors"
	"fmt"
)

// Domain errors for flow evaluation and dimension checks.
var (
	// ErrDimensionMismatch indicates inconsistent vector or matrix dimensions.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrEvaluation indicates the supplied flow failed at a probe point.
	ErrEvaluation = errors.New("field: flow evaluation failed")
)

// EvalError wraps a flow evaluation failure with the probe point that
// triggered it.
type EvalError struct {
	Probe   Vec
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("flow evaluation at %v: %s", []float64(e.Probe), e.Message)
}

func (e *EvalError) Unwrap() error {
	return ErrEvaluation
}
