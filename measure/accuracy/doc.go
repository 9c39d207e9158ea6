// Package accuracy quantifies the approximation error of the fixed-point
// primitives in package fixed against float64 references.
//
// The core routines trade accuracy for integer-only arithmetic; this package
// measures what that trade costs:
//
//   - [SineError], [CosineError]: deviation from math.Sin/math.Cos over the
//     full angle circle, in Q8.8 units
//   - [Atan2Error]: worst and RMS angular deviation from math.Atan2 over a
//     circular sweep, in binary angle units
//   - [HypotError]: deviation from math.Hypot over a grid of the overflow-safe
//     input range, in Q8.8 units
//   - [SinePurity]: spectral view of the quantized sine (fundamental level,
//     harmonic levels, THD and SINAD)
//
// These measurements are diagnostics for callers choosing tolerances; the
// fixed package itself never depends on floating point.
package accuracy
