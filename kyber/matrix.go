package kyber

// A k*k matrix of NTT-domain polynomials; only the top-left k*k block
// is used.
type matrix [maxK][maxK]nttPoly

// Number of XOF blocks squeezed at first; enough to get 256 accepted
// values with overwhelming probability.
const gen_matrix_nblocks = (12*n/8*(1<<12)/q + xof_blockbytes) / xof_blockbytes

// Rejection sampling: parse buf as a sequence of 12-bit values (two
// values per three bytes) and keep those lower than q, until r is full
// or buf is exhausted. Returns the number of values written into r.
//
// Rejection depends only on public data (the matrix seed), so the
// branches here do not leak anything secret.
func rej_uniform(r []int16, buf []byte) int {
	ctr := 0
	pos := 0
	for ctr < len(r) && pos+3 <= len(buf) {
		val0 := (uint16(buf[pos+0]) | (uint16(buf[pos+1]) << 8)) & 0xFFF
		val1 := ((uint16(buf[pos+1]) >> 4) | (uint16(buf[pos+2]) << 4)) & 0xFFF
		pos += 3

		if val0 < q {
			r[ctr] = int16(val0)
			ctr++
		}
		if ctr < len(r) && val1 < q {
			r[ctr] = int16(val1)
			ctr++
		}
	}
	return ctr
}

// Deterministically generate the matrix A (or its transpose) from the
// public seed. Entry (i,j) is obtained from XOF(seed, j, i) for A, and
// from XOF(seed, i, j) for the transpose. The values are interpreted
// directly as NTT-domain polynomials.
func gen_matrix(k int, a *matrix, seed *[symbytes]byte, transposed bool) {
	var buf [gen_matrix_nblocks*xof_blockbytes + 2]byte
	var st xof_state
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if transposed {
				xof_absorb(&st, seed, uint8(i), uint8(j))
			} else {
				xof_absorb(&st, seed, uint8(j), uint8(i))
			}

			buflen := gen_matrix_nblocks * xof_blockbytes
			xof_squeeze(&st, buf[:buflen])
			c := a[i][j][:]
			ctr := rej_uniform(c, buf[:buflen])

			// Leftover bytes (an incomplete triple) are moved to the
			// start of the buffer, and the next block is appended.
			for ctr < n {
				off := buflen % 3
				copy(buf[:off], buf[buflen-off:buflen])
				xof_squeeze(&st, buf[off:off+xof_blockbytes])
				buflen = off + xof_blockbytes
				ctr += rej_uniform(c[ctr:], buf[:buflen])
			}
		}
	}
}
