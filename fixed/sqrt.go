package fixed

// Sqrt returns the floor square root of x, exact for all 16-bit inputs.
//
// Classic shift-and-test: candidate result bits are tried from high to low
// and kept whenever the squared candidate still fits under x. No division,
// only multiply and compare, which suits targets without a divide
// instruction. The square is compared in 32 bits, where a 16-bit register
// would wrap.
//
// The search starts at bit 14, limiting the result to 15 bits; that is
// ample headroom, since the true result never exceeds 255.
func Sqrt(x uint16) uint16 {
	var res uint16
	bit := uint16(1) << 14

	for bit > 0 {
		trial := res | bit
		if uint32(trial)*uint32(trial) <= uint32(x) {
			res = trial
		}
		bit >>= 1
	}

	return res
}
