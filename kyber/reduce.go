package kyber

// Modular arithmetic modulo q = 3329.
//
// Coefficients are kept as signed 16-bit integers. Products are reduced
// with Montgomery reduction (R = 2^16), sums are brought back in range
// with Barrett reduction. Neither function uses a division or a
// data-dependent branch.

// -q^-1 mod 2^16 is 3327; we keep q^-1 mod 2^16 in signed form.
const qinv = -3327

// 2^16 mod q, in signed representation.
const mont = -1044

// Montgomery reduction: for a in [-q*2^15, q*2^15-1], return a value
// congruent to a*2^-16 mod q, in the [-q+1, q-1] range.
func montgomery_reduce(a int32) int16 {
	t := int16(a) * qinv
	return int16((a - int32(t)*q) >> 16)
}

// Barrett reduction: return the centered representative of a modulo q,
// in the [-(q-1)/2, (q-1)/2] range.
func barrett_reduce(a int16) int16 {
	const v = ((1 << 26) + q/2) / q
	t := int16((int32(v)*int32(a) + (1 << 25)) >> 26)
	return a - t*q
}

// Multiplication followed by Montgomery reduction: returns a value
// congruent to a*b*2^-16 mod q.
func fqmul(a int16, b int16) int16 {
	return montgomery_reduce(int32(a) * int32(b))
}
