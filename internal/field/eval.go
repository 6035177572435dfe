package field

import "fmt"

// Eval evaluates f at x and validates the result. The flow is treated as
// an opaque caller-supplied function: a panic, a wrong-dimension output,
// or a non-finite component all surface as an EvalError naming the probe
// point, never as a default value.
func Eval(f Flow, x Vec) (out Vec, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &EvalError{Probe: x.Clone(), Message: fmt.Sprintf("panic: %v", r)}
		}
	}()

	out = f(x)
	if len(out) != len(x) {
		return nil, &EvalError{
			Probe:   x.Clone(),
			Message: fmt.Sprintf("flow returned %d components, want %d", len(out), len(x)),
		}
	}
	if !out.IsValid() {
		return nil, &EvalError{Probe: x.Clone(), Message: "flow returned NaN or Inf"}
	}
	return out, nil
}
