// Package scan sweeps the estimation pipeline over regions of state
// space.
//
//   - [Sweep]: 2-D grid of reference points, producing rotationality
//     and potential-difference maps
//   - [Profile]: 1-D line sweep for profile plots
//
// Sweeps can run rows in parallel; the flow evaluations are pure, so
// ordering does not affect results. A flow failure at any grid point
// aborts the sweep with the probe point attached.
package scan
