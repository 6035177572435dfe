package flows

import (
	"fmt"
	"math"

	"github.com/san-kum/potflow/internal/field"
)

// Linear is the contraction flow f = -k·x, the gradient flow of the
// paraboloid V = ½k|x|². Its Jacobian is symmetric everywhere.
type Linear struct {
	K   float64
	dim int
}

func NewLinear(dim int) *Linear {
	return &Linear{K: 1.0, dim: dim}
}

func (l *Linear) Name() string { return "linear" }
func (l *Linear) Dim() int     { return l.dim }

func (l *Linear) Eval(x field.Vec) field.Vec {
	return x.Scale(-l.K)
}

func (l *Linear) DefaultPoint() field.Vec {
	p := make(field.Vec, l.dim)
	for i := range p {
		p[i] = 1
	}
	return p
}

func (l *Linear) GetParams() map[string]float64 {
	return map[string]float64{"k": l.K}
}

func (l *Linear) SetParam(name string, v float64) error {
	if name != "k" {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	l.K = v
	return nil
}

// Rotation is rigid rotation f = (-ω·y, ω·x). Its Jacobian is
// skew-symmetric everywhere: a purely non-conservative field.
type Rotation struct {
	Omega float64
}

func NewRotation() *Rotation { return &Rotation{Omega: 1.0} }

func (r *Rotation) Name() string { return "rotation" }
func (r *Rotation) Dim() int     { return 2 }

func (r *Rotation) Eval(x field.Vec) field.Vec {
	return field.Vec{-r.Omega * x[1], r.Omega * x[0]}
}

func (r *Rotation) DefaultPoint() field.Vec { return field.Vec{1, 0} }

func (r *Rotation) GetParams() map[string]float64 {
	return map[string]float64{"omega": r.Omega}
}

func (r *Rotation) SetParam(name string, v float64) error {
	if name != "omega" {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	r.Omega = v
	return nil
}

// Spiral mixes contraction and rotation: f = (-λx - ωy, ωx - λy).
// The decay/rotation ratio controls how conservative the field looks.
type Spiral struct {
	Decay float64
	Omega float64
}

func NewSpiral() *Spiral { return &Spiral{Decay: 0.5, Omega: 1.0} }

func (s *Spiral) Name() string { return "spiral" }
func (s *Spiral) Dim() int     { return 2 }

func (s *Spiral) Eval(x field.Vec) field.Vec {
	return field.Vec{
		-s.Decay*x[0] - s.Omega*x[1],
		s.Omega*x[0] - s.Decay*x[1],
	}
}

func (s *Spiral) DefaultPoint() field.Vec { return field.Vec{1, 0} }

func (s *Spiral) GetParams() map[string]float64 {
	return map[string]float64{"decay": s.Decay, "omega": s.Omega}
}

func (s *Spiral) SetParam(name string, v float64) error {
	switch name {
	case "decay":
		s.Decay = v
	case "omega":
		s.Omega = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// Shear is the simple shear f = (γ·y, 0), an even split between
// gradient-like and rotational behavior.
type Shear struct {
	Gamma float64
}

func NewShear() *Shear { return &Shear{Gamma: 1.0} }

func (s *Shear) Name() string { return "shear" }
func (s *Shear) Dim() int     { return 2 }

func (s *Shear) Eval(x field.Vec) field.Vec {
	return field.Vec{s.Gamma * x[1], 0}
}

func (s *Shear) DefaultPoint() field.Vec { return field.Vec{0, 1} }

func (s *Shear) GetParams() map[string]float64 {
	return map[string]float64{"gamma": s.Gamma}
}

func (s *Shear) SetParam(name string, v float64) error {
	if name != "gamma" {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	s.Gamma = v
	return nil
}

// Saddle is f = (a·x, -b·y), the gradient flow of V = -½a·x² + ½b·y².
type Saddle struct {
	A, B float64
}

func NewSaddle() *Saddle { return &Saddle{A: 1.0, B: 1.0} }

func (s *Saddle) Name() string { return "saddle" }
func (s *Saddle) Dim() int     { return 2 }

func (s *Saddle) Eval(x field.Vec) field.Vec {
	return field.Vec{s.A * x[0], -s.B * x[1]}
}

func (s *Saddle) DefaultPoint() field.Vec { return field.Vec{0.5, 0.5} }

func (s *Saddle) GetParams() map[string]float64 {
	return map[string]float64{"a": s.A, "b": s.B}
}

func (s *Saddle) SetParam(name string, v float64) error {
	switch name {
	case "a":
		s.A = v
	case "b":
		s.B = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// DoubleWell is the 1-D gradient flow of the bistable potential
// V = a(x² - b)², i.e. f = -4a·x·(x² - b).
type DoubleWell struct {
	A, B float64
}

func NewDoubleWell() *DoubleWell { return &DoubleWell{A: 1.0, B: 1.0} }

func (d *DoubleWell) Name() string { return "doublewell" }
func (d *DoubleWell) Dim() int     { return 1 }

func (d *DoubleWell) Eval(x field.Vec) field.Vec {
	return field.Vec{-4 * d.A * x[0] * (x[0]*x[0] - d.B)}
}

func (d *DoubleWell) DefaultPoint() field.Vec {
	return field.Vec{math.Sqrt(d.B) + 0.1}
}

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"a": d.A, "b": d.B}
}

func (d *DoubleWell) SetParam(name string, v float64) error {
	switch name {
	case "a":
		d.A = v
	case "b":
		d.B = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// Cosine is the 1-D field f = cos(x).
type Cosine struct{}

func NewCosine() *Cosine { return &Cosine{} }

func (c *Cosine) Name() string { return "cosine" }
func (c *Cosine) Dim() int     { return 1 }

func (c *Cosine) Eval(x field.Vec) field.Vec {
	return field.Vec{math.Cos(x[0])}
}

func (c *Cosine) DefaultPoint() field.Vec { return field.Vec{1} }

func (c *Cosine) GetParams() map[string]float64 { return map[string]float64{} }

func (c *Cosine) SetParam(name string, _ float64) error {
	return fmt.Errorf("%w: %s", ErrUnknownParam, name)
}
