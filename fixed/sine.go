package fixed

// sineTable holds round(sin(i*90/64 deg) * 256) for the first quadrant,
// i = 0..63. The 64-entry table plus quadrant folding sets the precision
// ceiling of the trig routines: 1.40625 degrees of angular resolution and
// half-unit amplitude rounding. It is a compile-time constant; nothing may
// recompute or mutate it at runtime.
var sineTable = [64]Q8{
	0, 6, 13, 19, 25, 31, 38, 44,
	50, 56, 62, 68, 74, 80, 86, 92,
	98, 104, 109, 115, 121, 126, 132, 137,
	142, 147, 152, 157, 162, 167, 172, 177,
	181, 185, 190, 194, 198, 202, 206, 209,
	213, 216, 220, 223, 226, 229, 231, 234,
	237, 239, 241, 243, 245, 247, 248, 250,
	251, 252, 253, 254, 255, 255, 256, 256,
}

// Sin returns the sine of a in Q8.8.
//
// The top two bits of the angle select the quadrant, the low six bits index
// the first-quadrant table. The remaining quadrants reuse the table through
// the standard sine symmetries: mirrored in quadrants 1 and 3, negated in
// quadrants 2 and 3.
func Sin(a Angle) Q8 {
	quadrant := a >> 6
	index := a & 0x3F

	switch quadrant {
	case 0:
		return sineTable[index]
	case 1:
		return sineTable[63-index]
	case 2:
		return -sineTable[index]
	default:
		return -sineTable[63-index]
	}
}

// Cos returns the cosine of a in Q8.8.
//
// Cosine is sine shifted a quarter turn; the +64 wraps at 256 because Angle
// is 8 bits wide.
func Cos(a Angle) Q8 {
	return Sin(a + 64)
}
