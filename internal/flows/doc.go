// Package flows provides named builtin vector fields for exploration.
//
// Each model implements the [Flow] interface with tunable parameters:
//
//   - [Linear]: contraction, purely gradient-like
//   - [Rotation]: rigid rotation, purely rotational
//   - [Spiral]: damped rotation, mixed behavior
//   - [Shear]: simple shear, exactly half rotational
//   - [Saddle]: gradient flow of a saddle potential
//   - [DoubleWell]: 1-D bistable gradient flow
//   - [Cosine]: 1-D f = cos(x)
//
// Look up models through a [Registry]; a Flow's Eval method value is a
// valid [field.Flow] for the estimation pipeline.
package flows
