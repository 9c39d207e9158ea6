// Package fixed provides integer-only math primitives for targets without
// hardware floating point: microcontrollers, DSPs, and retro-style game logic.
//
// Values use two compact representations:
//
//   - [Q8]:    signed Q8.8 fixed point (1/256 units, range ±128)
//   - [Angle]: normalized binary angle (256 units per full turn)
//
// Available operations:
//
//   - [Sin], [Cos]:  table-driven quadrant-folded sine and cosine
//   - [Atan2]:       ratio-based two-argument arctangent with quadrant correction
//   - [Sqrt]:        exact floor square root by shift-and-test, no division
//   - [Hypot]:       2D vector magnitude under a 16-bit-safe scaling discipline
//
// All operations are pure, total over their input domain, allocation-free and
// safe for concurrent use. Out-of-range arithmetic wraps silently at the
// declared bit widths; that wraparound is part of the contract, not an error
// condition. The measure/accuracy package quantifies the approximation error
// each routine accepts by design.
package fixed
