package kyber

// A ring element of Z_q[X]/(X^256+1), coefficients in normal order.
type poly [n]int16

// A ring element in the NTT domain (bit-reversed order, pairs of
// coefficients are residues modulo X^2 - zeta). Keeping a distinct type
// prevents mixing both representations by accident.
type nttPoly [n]int16

// Constraint covering both representations, for the operations that do
// not depend on the domain.
type anyPoly interface {
	poly | nttPoly
}

// Apply Barrett reduction to all coefficients.
func poly_reduce[P anyPoly](r *P) {
	for i := 0; i < n; i++ {
		(*r)[i] = barrett_reduce((*r)[i])
	}
}

// r <- a + b (no modular reduction).
func poly_add[P anyPoly](r *P, a *P, b *P) {
	for i := 0; i < n; i++ {
		(*r)[i] = (*a)[i] + (*b)[i]
	}
}

// r <- a - b (no modular reduction).
func poly_sub(r *poly, a *poly, b *poly) {
	for i := 0; i < n; i++ {
		r[i] = a[i] - b[i]
	}
}

// Forward NTT; output coefficients are reduced.
func poly_ntt(r *nttPoly, a *poly) {
	*r = nttPoly(*a)
	ntt((*[n]int16)(r))
	poly_reduce(r)
}

// Inverse NTT, with multiplication by the Montgomery factor.
func poly_invntt_tomont(r *poly, a *nttPoly) {
	*r = poly(*a)
	invntt((*[n]int16)(r))
}

// Multiply two polynomials in the NTT domain; the result carries an
// extra factor 2^-16.
func poly_basemul_montgomery(r *nttPoly, a *nttPoly, b *nttPoly) {
	for i := 0; i < n/4; i++ {
		z := zetas[64+i]
		u := 4 * i
		basemul((*[2]int16)(r[u:u+2]),
			(*[2]int16)(a[u:u+2]), (*[2]int16)(b[u:u+2]), z)
		basemul((*[2]int16)(r[u+2:u+4]),
			(*[2]int16)(a[u+2:u+4]), (*[2]int16)(b[u+2:u+4]), -z)
	}
}

// Convert all coefficients into the Montgomery domain (multiplication
// by 2^16 mod q).
func poly_tomont(r *nttPoly) {
	// f = 2^32 mod q
	const f = int32((uint64(1) << 32) % q)
	for i := 0; i < n; i++ {
		r[i] = montgomery_reduce(int32(r[i]) * f)
	}
}

// Decode a 32-byte message into a polynomial: bit i of the message
// becomes coefficient i, with value 0 or (q+1)/2. No branch depends on
// the message bits.
func poly_frommsg(r *poly, msg *[symbytes]byte) {
	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			mask := -int16((msg[i] >> j) & 1)
			r[8*i+j] = mask & ((q + 1) / 2)
		}
	}
}

// Encode a polynomial into a 32-byte message: each coefficient is
// rounded to the nearest of 0 and q/2. Coefficients must be reduced
// (centered representatives).
func poly_tomsg(msg *[symbytes]byte, a *poly) {
	for i := 0; i < n/8; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := uint32(a[8*i+j])
			t += (uint32(int32(a[8*i+j])) >> 31) * q
			// round(2*t/q) mod 2, computed without a division
			t <<= 1
			t += 1665
			t *= 80635
			t >>= 28
			t &= 1
			msg[i] |= uint8(t << j)
		}
	}
}

// Sample a polynomial with coefficients following a centered binomial
// distribution of parameter eta, from PRF(seed, nonce).
func poly_getnoise(r *poly, seed *[symbytes]byte, nonce byte, eta int) {
	var buf [3 * n / 4]byte
	b := buf[:eta*n/4]
	prf(b, seed, nonce)
	poly_cbd_eta(r, b, eta)
}

// Centered binomial distribution; buf must have length eta*n/4.
func poly_cbd_eta(r *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		cbd2(r, buf)
	case 3:
		cbd3(r, buf)
	default:
		panic("kyber: unsupported eta")
	}
}

// CBD with eta = 2: each 32-bit little-endian word yields 8
// coefficients, each the difference of two 2-bit popcounts.
func cbd2(r *poly, buf []byte) {
	for i := 0; i < n/8; i++ {
		t := load32_littleendian(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555
		for j := 0; j < 8; j++ {
			a := int16((d >> (4*j + 0)) & 0x3)
			b := int16((d >> (4*j + 2)) & 0x3)
			r[8*i+j] = a - b
		}
	}
}

// CBD with eta = 3: each 24-bit little-endian word yields 4
// coefficients, each the difference of two 3-bit popcounts.
func cbd3(r *poly, buf []byte) {
	for i := 0; i < n/4; i++ {
		t := load24_littleendian(buf[3*i:])
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249
		for j := 0; j < 4; j++ {
			a := int16((d >> (6*j + 0)) & 0x7)
			b := int16((d >> (6*j + 3)) & 0x7)
			r[4*i+j] = a - b
		}
	}
}

func load32_littleendian(x []byte) uint32 {
	_ = x[3]
	return uint32(x[0]) | (uint32(x[1]) << 8) |
		(uint32(x[2]) << 16) | (uint32(x[3]) << 24)
}

func load24_littleendian(x []byte) uint32 {
	_ = x[2]
	return uint32(x[0]) | (uint32(x[1]) << 8) | (uint32(x[2]) << 16)
}
