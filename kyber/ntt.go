package kyber

// Precomputed twiddle factors: powers of the 256-th root of unity 17,
// in Montgomery representation, in bit-reversed order, and centered
// around zero. The table is regenerated and checked in tests.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// Forward NTT, in place. Input is in normal order, output is in
// bit-reversed order. Output coefficients are NOT reduced; each layer
// adds at most q to the absolute value.
func ntt(r *[n]int16) {
	k := 1
	for l := 128; l >= 2; l >>= 1 {
		for start := 0; start < n; start += l << 1 {
			zeta := zetas[k]
			k++
			for j := start; j < start+l; j++ {
				t := fqmul(zeta, r[j+l])
				r[j+l] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
}

// Inverse NTT, in place, with a final multiplication by the Montgomery
// factor 2^16. Input is in bit-reversed order, output in normal order.
func invntt(r *[n]int16) {
	// f = mont^2/128 mod q
	const f = 1441

	k := 127
	for l := 2; l <= 128; l <<= 1 {
		for start := 0; start < n; start += l << 1 {
			zeta := zetas[k]
			k--
			for j := start; j < start+l; j++ {
				t := r[j]
				r[j] = barrett_reduce(t + r[j+l])
				r[j+l] = r[j+l] - t
				r[j+l] = fqmul(zeta, r[j+l])
			}
		}
	}
	for j := 0; j < n; j++ {
		r[j] = fqmul(r[j], f)
	}
}

// Multiplication of two degree-1 polynomials modulo X^2 - zeta. This is
// the pointwise product used for elements in the NTT domain.
func basemul(r *[2]int16, a *[2]int16, b *[2]int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])
	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}
