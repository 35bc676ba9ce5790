package kyber

// Encode a polynomial with 12 bits per coefficient (two coefficients in
// three bytes). Coefficients must be reduced (|x| < q); they are mapped
// to the [0,q-1] range before packing. dst must have length at least
// polybytes.
func poly_tobytes[P anyPoly](dst []byte, a *P) {
	_ = dst[polybytes-1]
	for i := 0; i < n/2; i++ {
		t0 := uint16((*a)[2*i])
		t0 += uint16((*a)[2*i]>>15) & q
		t1 := uint16((*a)[2*i+1])
		t1 += uint16((*a)[2*i+1]>>15) & q
		dst[3*i+0] = uint8(t0)
		dst[3*i+1] = uint8(t0>>8) | uint8(t1<<4)
		dst[3*i+2] = uint8(t1 >> 4)
	}
}

// Decode a polynomial with 12 bits per coefficient. Decoded values are
// in [0,4095]; no range check is performed (values above q-1 are still
// congruent to something and the subsequent arithmetic tolerates them).
func poly_frombytes[P anyPoly](r *P, src []byte) {
	_ = src[polybytes-1]
	for i := 0; i < n/2; i++ {
		(*r)[2*i] = int16((uint16(src[3*i+0]) |
			(uint16(src[3*i+1]) << 8)) & 0xFFF)
		(*r)[2*i+1] = int16(((uint16(src[3*i+1]) >> 4) |
			(uint16(src[3*i+2]) << 4)) & 0xFFF)
	}
}

// Map a reduced coefficient to [0,q-1].
func to_positive(x int16) uint32 {
	return uint32(uint16(x + ((x >> 15) & q)))
}

// Compress a polynomial with dv bits per coefficient (dv = 4 or 5) and
// encode it. Output size is 32*dv bytes. Rounding uses multiplications
// by fixed-point reciprocals of q instead of divisions.
func poly_compress(dst []byte, a *poly, dv uint) {
	var t [8]uint8
	switch dv {
	case 4:
		_ = dst[127]
		for i := 0; i < n/8; i++ {
			for j := 0; j < 8; j++ {
				d0 := to_positive(a[8*i+j]) << 4
				d0 += 1665
				d0 *= 80635
				d0 >>= 28
				t[j] = uint8(d0 & 0xF)
			}
			r := dst[4*i : 4*i+4]
			r[0] = t[0] | (t[1] << 4)
			r[1] = t[2] | (t[3] << 4)
			r[2] = t[4] | (t[5] << 4)
			r[3] = t[6] | (t[7] << 4)
		}
	case 5:
		_ = dst[159]
		for i := 0; i < n/8; i++ {
			for j := 0; j < 8; j++ {
				d0 := to_positive(a[8*i+j]) << 5
				d0 += 1664
				d0 *= 40318
				d0 >>= 27
				t[j] = uint8(d0 & 0x1F)
			}
			r := dst[5*i : 5*i+5]
			r[0] = (t[0] >> 0) | (t[1] << 5)
			r[1] = (t[1] >> 3) | (t[2] << 2) | (t[3] << 7)
			r[2] = (t[3] >> 1) | (t[4] << 4)
			r[3] = (t[4] >> 4) | (t[5] << 1) | (t[6] << 6)
			r[4] = (t[6] >> 2) | (t[7] << 3)
		}
	default:
		panic("kyber: unsupported compression width")
	}
}

// Decode and decompress a polynomial with dv bits per coefficient;
// approximate inverse of poly_compress(). Output values are in [0,q-1].
func poly_decompress(r *poly, src []byte, dv uint) {
	switch dv {
	case 4:
		_ = src[127]
		for i := 0; i < n/2; i++ {
			r[2*i+0] = int16(((uint32(src[i]&15) * q) + 8) >> 4)
			r[2*i+1] = int16(((uint32(src[i]>>4) * q) + 8) >> 4)
		}
	case 5:
		_ = src[159]
		var t [8]uint8
		for i := 0; i < n/8; i++ {
			a := src[5*i : 5*i+5]
			t[0] = (a[0] >> 0)
			t[1] = (a[0] >> 5) | (a[1] << 3)
			t[2] = (a[1] >> 2)
			t[3] = (a[1] >> 7) | (a[2] << 1)
			t[4] = (a[2] >> 4) | (a[3] << 4)
			t[5] = (a[3] >> 1)
			t[6] = (a[3] >> 6) | (a[4] << 2)
			t[7] = (a[4] >> 3)
			for j := 0; j < 8; j++ {
				r[8*i+j] = int16((uint32(t[j]&31)*q + 16) >> 5)
			}
		}
	default:
		panic("kyber: unsupported compression width")
	}
}

// Compress a polynomial with du bits per coefficient (du = 10 or 11)
// and encode it. Output size is 32*du bytes.
func poly_compress_du(dst []byte, a *poly, du uint) {
	switch du {
	case 10:
		_ = dst[319]
		var t [4]uint16
		for j := 0; j < n/4; j++ {
			for k := 0; k < 4; k++ {
				d0 := uint64(to_positive(a[4*j+k]))
				d0 <<= 10
				d0 += 1665
				d0 *= 1290167
				d0 >>= 32
				t[k] = uint16(d0 & 0x3FF)
			}
			r := dst[5*j : 5*j+5]
			r[0] = uint8(t[0] >> 0)
			r[1] = uint8(t[0]>>8) | uint8(t[1]<<2)
			r[2] = uint8(t[1]>>6) | uint8(t[2]<<4)
			r[3] = uint8(t[2]>>4) | uint8(t[3]<<6)
			r[4] = uint8(t[3] >> 2)
		}
	case 11:
		_ = dst[351]
		var t [8]uint16
		for j := 0; j < n/8; j++ {
			for k := 0; k < 8; k++ {
				d0 := uint64(to_positive(a[8*j+k]))
				d0 <<= 11
				d0 += 1664
				d0 *= 645084
				d0 >>= 31
				t[k] = uint16(d0 & 0x7FF)
			}
			r := dst[11*j : 11*j+11]
			r[0] = uint8(t[0] >> 0)
			r[1] = uint8(t[0]>>8) | uint8(t[1]<<3)
			r[2] = uint8(t[1]>>5) | uint8(t[2]<<6)
			r[3] = uint8(t[2] >> 2)
			r[4] = uint8(t[2]>>10) | uint8(t[3]<<1)
			r[5] = uint8(t[3]>>7) | uint8(t[4]<<4)
			r[6] = uint8(t[4]>>4) | uint8(t[5]<<7)
			r[7] = uint8(t[5] >> 1)
			r[8] = uint8(t[5]>>9) | uint8(t[6]<<2)
			r[9] = uint8(t[6]>>6) | uint8(t[7]<<5)
			r[10] = uint8(t[7] >> 3)
		}
	default:
		panic("kyber: unsupported compression width")
	}
}

// Decode and decompress a polynomial with du bits per coefficient;
// approximate inverse of poly_compress_du().
func poly_decompress_du(r *poly, src []byte, du uint) {
	switch du {
	case 10:
		_ = src[319]
		var t [4]uint16
		for j := 0; j < n/4; j++ {
			a := src[5*j : 5*j+5]
			t[0] = (uint16(a[0]) >> 0) | (uint16(a[1]) << 8)
			t[1] = (uint16(a[1]) >> 2) | (uint16(a[2]) << 6)
			t[2] = (uint16(a[2]) >> 4) | (uint16(a[3]) << 4)
			t[3] = (uint16(a[3]) >> 6) | (uint16(a[4]) << 2)
			for k := 0; k < 4; k++ {
				r[4*j+k] = int16((uint32(t[k]&0x3FF)*q + 512) >> 10)
			}
		}
	case 11:
		_ = src[351]
		var t [8]uint16
		for j := 0; j < n/8; j++ {
			a := src[11*j : 11*j+11]
			t[0] = (uint16(a[0]) >> 0) | (uint16(a[1]) << 8)
			t[1] = (uint16(a[1]) >> 3) | (uint16(a[2]) << 5)
			t[2] = (uint16(a[2]) >> 6) | (uint16(a[3]) << 2) |
				(uint16(a[4]) << 10)
			t[3] = (uint16(a[4]) >> 1) | (uint16(a[5]) << 7)
			t[4] = (uint16(a[5]) >> 4) | (uint16(a[6]) << 4)
			t[5] = (uint16(a[6]) >> 7) | (uint16(a[7]) << 1) |
				(uint16(a[8]) << 9)
			t[6] = (uint16(a[8]) >> 2) | (uint16(a[9]) << 6)
			t[7] = (uint16(a[9]) >> 5) | (uint16(a[10]) << 3)
			for k := 0; k < 8; k++ {
				r[8*j+k] = int16((uint32(t[k]&0x7FF)*q + 1024) >> 11)
			}
		}
	default:
		panic("kyber: unsupported compression width")
	}
}
