package fixed

import "math"

// Q8 is a signed Q8.8 fixed-point value: the low 8 bits are the fraction,
// the high 8 bits (plus sign) the integer part. The semantic value is the
// stored integer divided by 256, giving a range of about [-128, 127.996].
type Q8 int16

// One is the Q8 representation of 1.0.
const One Q8 = 256

// Angle is a normalized binary angle. The full turn is 256 units, so one
// unit is 360/256 = 1.40625 degrees. Arithmetic on Angle wraps at 256,
// which the trig routines rely on.
type Angle uint8

// FromFloat converts f to Q8.8, rounding to nearest and saturating at the
// int16 range.
func FromFloat(f float64) Q8 {
	scaled := math.Round(f * 256)
	if scaled > math.MaxInt16 {
		return math.MaxInt16
	}
	if scaled < math.MinInt16 {
		return math.MinInt16
	}
	return Q8(scaled)
}

// Float returns the semantic value of q.
func (q Q8) Float() float64 {
	return float64(q) / 256
}

// AngleFromDegrees converts degrees to the nearest binary angle. The input
// is wrapped into [0, 360) first, so negative and oversized angles are valid.
func AngleFromDegrees(deg float64) Angle {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return Angle(int(deg*256/360+0.5) & 0xFF)
}

// Degrees returns the angle in degrees, in [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a) * (360.0 / 256.0)
}

// Radians returns the angle in radians, in [0, 2π).
func (a Angle) Radians() float64 {
	return float64(a) * (2 * math.Pi / 256)
}
