package fixed

// Atan2 approximates the angle of the vector (x, y), measured from the
// positive x axis toward positive y, as a binary angle.
//
// The ratio of the smaller to the larger component magnitude is taken in
// Q8.8, keeping it within [0, 256] and away from the divide-by-near-zero
// singularity. The octant angle is then approximated linearly as z/8, an
// empirical stand-in for atan(z)·128/π that is exact at both ends of the
// octant and off by up to ~3 units (≈4°) near z = 0.5. Inversion and the
// component signs select the final octant; the corrections rely on Angle
// wrapping at 256.
//
// Atan2(0, 0) returns 0 by convention. A zero component counts as
// non-negative in the quadrant selection.
func Atan2(y, x Q8) Angle {
	if x == 0 && y == 0 {
		return 0
	}

	absY := y
	if absY < 0 {
		absY = -absY
	}
	absX := x
	if absX < 0 {
		absX = -absX
	}

	// Divide the smaller magnitude by the larger. The shift is done in
	// 32 bits; absX<<8 would not survive int16.
	var z int32
	var invert bool
	if absY > absX {
		z = (int32(absX) << 8) / int32(absY)
		invert = true
	} else {
		z = (int32(absY) << 8) / int32(absX)
	}

	base := Angle(z >> 3)
	if invert {
		base = 64 - base // complementary angle: ratio axes were swapped
	}

	switch {
	case x >= 0 && y >= 0:
		return base
	case x < 0 && y >= 0:
		return 128 - base
	case x < 0 && y < 0:
		return 128 + base
	default:
		return -base // 256 - base, wrapping to 0 on the +x axis
	}
}
