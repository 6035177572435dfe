// Package linalg provides the small dense-matrix toolkit used by the
// estimation pipeline.
//
//   - [Matrix]: dense row-major real matrix with basic arithmetic
//   - [SplitSymmetric]: lossless symmetric/skew-symmetric decomposition
//   - [Norm]: matrix norms (frobenius, one, infinity, spectral, max)
//
// The spectral norm delegates to gonum's SVD; the remaining norms are
// direct entry scans.
package linalg
