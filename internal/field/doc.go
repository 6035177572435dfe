// Package field provides core types for working with vector fields (flows).
//
// The package defines the fundamental types shared by the estimation
// pipeline:
//
//   - [Vec]: n-dimensional point or displacement
//   - [Flow]: a pure vector field f: R^n -> R^n
//   - [Eval]: validated flow evaluation with the package error taxonomy
//
// # Error Handling
//
// Flows are opaque caller-supplied functions. [Eval] converts any failure
// mode (panic, wrong output dimension, NaN/Inf components) into an
// [EvalError] that records the probe point, so callers can diagnose where
// in the differencing stencil a flow broke down:
//
//	out, err := field.Eval(f, x0)
//	if errors.Is(err, field.ErrEvaluation) {
//	    // flow failed at a probe point
//	}
package field
