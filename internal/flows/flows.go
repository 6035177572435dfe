package flows

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/potflow/internal/field"
)

// ErrUnknownFlow indicates a registry lookup for an unregistered name.
var ErrUnknownFlow = errors.New("flows: unknown flow")

// ErrUnknownParam indicates a SetParam call with an unrecognized name.
var ErrUnknownParam = errors.New("flows: unknown parameter")

// Flow is a named builtin vector field with tunable parameters.
type Flow interface {
	Name() string
	Dim() int
	Eval(x field.Vec) field.Vec
	GetParams() map[string]float64
	SetParam(name string, value float64) error
	// DefaultPoint is a reasonable reference point for exploration.
	DefaultPoint() field.Vec
}

// Registry maps names to flow constructors.
type Registry struct {
	flows map[string]func() Flow
}

func NewRegistry() *Registry {
	r := &Registry{flows: make(map[string]func() Flow)}

	r.flows["linear"] = func() Flow { return NewLinear(2) }
	r.flows["rotation"] = func() Flow { return NewRotation() }
	r.flows["spiral"] = func() Flow { return NewSpiral() }
	r.flows["shear"] = func() Flow { return NewShear() }
	r.flows["saddle"] = func() Flow { return NewSaddle() }
	r.flows["doublewell"] = func() Flow { return NewDoubleWell() }
	r.flows["cosine"] = func() Flow { return NewCosine() }

	return r
}

func (r *Registry) Get(name string) (Flow, error) {
	fn, ok := r.flows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.flows))
	for name := range r.flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
