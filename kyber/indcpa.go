package kyber

// IND-CPA public-key encryption underlying the KEM. All functions are
// deterministic: randomness comes in as explicit seeds ("coins").
//
// Public key: polyvec_tobytes(t) || rho, with t = A*s + e in the NTT
// domain. Secret key: polyvec_tobytes(s), s in the NTT domain.
// Ciphertext: polyvec_compress(u) || poly_compress(v).

func pack_pk(p *Params, dst []byte, pk []nttPoly, seed *[symbytes]byte) {
	polyvec_tobytes(dst, pk)
	copy(dst[p.polyvecBytes():p.indcpaPublicKeyBytes()], seed[:])
}

func unpack_pk(p *Params, pk []nttPoly, seed *[symbytes]byte, src []byte) {
	polyvec_frombytes(pk, src)
	copy(seed[:], src[p.polyvecBytes():p.indcpaPublicKeyBytes()])
}

func pack_sk(dst []byte, sk []nttPoly) {
	polyvec_tobytes(dst, sk)
}

func unpack_sk(sk []nttPoly, src []byte) {
	polyvec_frombytes(sk, src)
}

func pack_ciphertext(p *Params, dst []byte, b []poly, v *poly) {
	polyvec_compress(dst, b, p.du)
	poly_compress(dst[p.polyvecCompressedBytes():], v, p.dv)
}

func unpack_ciphertext(p *Params, b []poly, v *poly, src []byte) {
	polyvec_decompress(b, src, p.du)
	poly_decompress(v, src[p.polyvecCompressedBytes():], p.dv)
}

// Generate a CPA key pair from a 32-byte seed. pk and sk must have the
// sizes indcpaPublicKeyBytes() and indcpaSecretKeyBytes().
func indcpa_keypair(p *Params, pk []byte, sk []byte, seed *[symbytes]byte) {
	k := p.k

	// (rho, sigma) = G(seed)
	var buf [2 * symbytes]byte
	hash_g(&buf, seed[:])
	publicseed := (*[symbytes]byte)(buf[:symbytes])
	noiseseed := (*[symbytes]byte)(buf[symbytes:])

	var a matrix
	gen_matrix(k, &a, publicseed, false)

	// Nonces 0..k-1 for s, k..2k-1 for e.
	var skpv, e [maxK]poly
	nonce := uint8(0)
	for i := 0; i < k; i++ {
		poly_getnoise(&skpv[i], noiseseed, nonce, p.eta1)
		nonce++
	}
	for i := 0; i < k; i++ {
		poly_getnoise(&e[i], noiseseed, nonce, p.eta1)
		nonce++
	}

	var shat, ehat, pkpv [maxK]nttPoly
	polyvec_ntt(shat[:k], skpv[:k])
	polyvec_ntt(ehat[:k], e[:k])

	// t = A*s + e
	for i := 0; i < k; i++ {
		polyvec_basemul_acc_montgomery(&pkpv[i], a[i][:k], shat[:k])
		poly_tomont(&pkpv[i])
	}
	polyvec_add(pkpv[:k], pkpv[:k], ehat[:k])
	polyvec_reduce(pkpv[:k])

	pack_sk(sk, shat[:k])
	pack_pk(p, pk, pkpv[:k], publicseed)
}

// Encrypt the 32-byte message m with the CPA public key pk, using the
// provided coins for all randomness. The ciphertext is written into c
// (indcpaBytes() bytes).
func indcpa_enc(p *Params, c []byte, m *[symbytes]byte,
	pk []byte, coins *[symbytes]byte) {

	k := p.k
	var seed [symbytes]byte
	var pkpv [maxK]nttPoly
	unpack_pk(p, pkpv[:k], &seed, pk)

	var kp poly
	poly_frommsg(&kp, m)

	var at matrix
	gen_matrix(k, &at, &seed, true)

	// Nonces 0..k-1 for r (eta1), k..2k-1 for e1 (eta2), 2k for e2.
	var sp, ep [maxK]poly
	var epp poly
	nonce := uint8(0)
	for i := 0; i < k; i++ {
		poly_getnoise(&sp[i], coins, nonce, p.eta1)
		nonce++
	}
	for i := 0; i < k; i++ {
		poly_getnoise(&ep[i], coins, nonce, eta2)
		nonce++
	}
	poly_getnoise(&epp, coins, nonce, eta2)

	var sphat [maxK]nttPoly
	polyvec_ntt(sphat[:k], sp[:k])

	// u = A^T*r, v = t^T*r (NTT domain)
	var bhat [maxK]nttPoly
	var vhat nttPoly
	for i := 0; i < k; i++ {
		polyvec_basemul_acc_montgomery(&bhat[i], at[i][:k], sphat[:k])
	}
	polyvec_basemul_acc_montgomery(&vhat, pkpv[:k], sphat[:k])

	var b [maxK]poly
	var v poly
	polyvec_invntt_tomont(b[:k], bhat[:k])
	poly_invntt_tomont(&v, &vhat)

	polyvec_add(b[:k], b[:k], ep[:k])
	poly_add(&v, &v, &epp)
	poly_add(&v, &v, &kp)
	polyvec_reduce(b[:k])
	poly_reduce(&v)

	pack_ciphertext(p, c, b[:k], &v)
}

// Decrypt ciphertext c with the CPA secret key sk. There is no failure
// case: with a mismatched key or a corrupted ciphertext, the output is
// simply some unrelated message.
func indcpa_dec(p *Params, m *[symbytes]byte, c []byte, sk []byte) {
	k := p.k
	var b [maxK]poly
	var v poly
	unpack_ciphertext(p, b[:k], &v, c)

	var skpv [maxK]nttPoly
	unpack_sk(skpv[:k], sk)

	var bhat [maxK]nttPoly
	polyvec_ntt(bhat[:k], b[:k])

	var mphat nttPoly
	polyvec_basemul_acc_montgomery(&mphat, skpv[:k], bhat[:k])
	var mp poly
	poly_invntt_tomont(&mp, &mphat)

	poly_sub(&mp, &v, &mp)
	poly_reduce(&mp)

	poly_tomsg(m, &mp)
}
