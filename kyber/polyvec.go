package kyber

// Polynomial vectors are slices of length k, carved by callers from
// [maxK] arrays so that they stay on the stack.

func polyvec_ntt(r []nttPoly, a []poly) {
	for i := range a {
		poly_ntt(&r[i], &a[i])
	}
}

func polyvec_invntt_tomont(r []poly, a []nttPoly) {
	for i := range a {
		poly_invntt_tomont(&r[i], &a[i])
	}
}

func polyvec_reduce[P anyPoly](r []P) {
	for i := range r {
		poly_reduce(&r[i])
	}
}

func polyvec_add[P anyPoly](r []P, a []P, b []P) {
	for i := range r {
		poly_add(&r[i], &a[i], &b[i])
	}
}

// Inner product of two vectors in the NTT domain: pointwise products
// accumulated, then reduced once. The result carries a factor 2^-16.
func polyvec_basemul_acc_montgomery(r *nttPoly, a []nttPoly, b []nttPoly) {
	var t nttPoly
	poly_basemul_montgomery(r, &a[0], &b[0])
	for i := 1; i < len(a); i++ {
		poly_basemul_montgomery(&t, &a[i], &b[i])
		poly_add(r, r, &t)
	}
	poly_reduce(r)
}

// Encode a vector with 12 bits per coefficient (k*polybytes bytes).
func polyvec_tobytes[P anyPoly](dst []byte, a []P) {
	for i := range a {
		poly_tobytes(dst[i*polybytes:], &a[i])
	}
}

// Decode a vector with 12 bits per coefficient.
func polyvec_frombytes[P anyPoly](r []P, src []byte) {
	for i := range r {
		poly_frombytes(&r[i], src[i*polybytes:])
	}
}

// Compress and encode a vector with du bits per coefficient.
func polyvec_compress(dst []byte, a []poly, du uint) {
	sz := int(du) << 5
	for i := range a {
		poly_compress_du(dst[i*sz:], &a[i], du)
	}
}

// Decode and decompress a vector with du bits per coefficient.
func polyvec_decompress(r []poly, src []byte, du uint) {
	sz := int(du) << 5
	for i := range r {
		poly_decompress_du(&r[i], src[i*sz:], du)
	}
}
