// Package jacobian numerically estimates the Jacobian of a flow at a
// point.
//
// Three interchangeable schemes implement [Estimator]:
//
//   - [Central]: second-order central differences (the default)
//   - [Forward]: first-order forward differences, cheaper per column
//   - [Richardson]: extrapolated central differences, fourth order
//
// Steps are scaled per coordinate by max(|x0_j|, 1). A failing flow
// evaluation aborts the estimate with the probe point attached; no entry
// is ever substituted with a default.
package jacobian
