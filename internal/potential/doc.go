// Package potential estimates the local change of an implicit scalar
// potential along a flow, together with a reliability score.
//
// The pipeline linearizes the flow at a reference point, splits the
// Jacobian into symmetric (gradient-like) and skew-symmetric
// (rotational) parts, forms the second-order Taylor estimate of the
// potential difference from the symmetric part, and scores the estimate
// by the relative magnitude of the skew part:
//
//	res, err := potential.Estimate(f, x, x0, potential.WithNorm(linalg.Spectral))
//	// res.DV  — estimated V(x) - V(x0)
//	// res.Err — share of the linearization the gradient model misses, in [0,1]
//
// For many displacements around one reference point, [Analyze] computes
// the linearization once and [Local.Diff] reuses it.
package potential
