package kyber

import (
	"testing"
)

func TestPolyBytesRoundTrip(t *testing.T) {
	for k := 0; k < 100; k++ {
		sh := new_test_shake("tobytes", k)
		var a, b nttPoly
		rand_coeffs(sh, (*[n]int16)(&a))
		var buf [polybytes]byte
		poly_tobytes(buf[:], &a)
		poly_frombytes(&b, buf[:])
		if a != b {
			t.Fatalf("ERR (k=%d): lossless round trip failed\n", k)
		}
	}
}

func TestPolyBytesNegative(t *testing.T) {
	// Centered representatives encode as their [0,q-1] counterpart.
	sh := new_test_shake("tobytes-neg", 0)
	var a, b poly
	rand_coeffs_centered(sh, (*[n]int16)(&a))
	var buf [polybytes]byte
	poly_tobytes(buf[:], &a)
	poly_frombytes(&b, buf[:])
	for i := 0; i < n; i++ {
		if b[i] < 0 || b[i] >= q || int64(b[i]) != modq(int64(a[i])) {
			t.Fatalf("ERR (i=%d): %d -> %d\n", i, a[i], b[i])
		}
	}
}

func TestPolyvecBytesRoundTrip(t *testing.T) {
	for _, p := range all_params {
		k := p.k
		sh := new_test_shake("polyvec-tobytes-"+p.name, 0)
		var a, b [maxK]nttPoly
		for i := 0; i < k; i++ {
			rand_coeffs(sh, (*[n]int16)(&a[i]))
		}
		buf := make([]byte, p.polyvecBytes())
		polyvec_tobytes(buf, a[:k])
		polyvec_frombytes(b[:k], buf)
		if a != b {
			t.Fatalf("ERR %s: polyvec round trip failed\n", p)
		}
	}
}

// Distance between x and y modulo q.
func distq(x int64, y int64) int64 {
	d := modq(x - y)
	if d > q/2 {
		d = q - d
	}
	return d
}

// Rounding error bound for d-bit compression: ceil(q/2^(d+1)).
func compress_bound(d uint) int64 {
	return (q + (1 << (d + 1)) - 1) >> (d + 1)
}

func TestPolyCompress(t *testing.T) {
	for _, dv := range []uint{4, 5} {
		// Cover every value in [-(q-1), q-1].
		for base := -(q - 1); base < q; base += n {
			var a, b poly
			for i := 0; i < n; i++ {
				x := base + i
				if x >= q {
					x = 0
				}
				a[i] = int16(x)
			}
			buf := make([]byte, 32*dv)
			poly_compress(buf, &a, dv)
			poly_decompress(&b, buf, dv)
			for i := 0; i < n; i++ {
				if b[i] < 0 || b[i] >= q {
					t.Fatalf("ERR dv=%d: decompressed %d\n", dv, b[i])
				}
				if distq(int64(a[i]), int64(b[i])) > compress_bound(dv) {
					t.Fatalf("ERR dv=%d: %d -> %d\n", dv, a[i], b[i])
				}
			}
		}
	}
}

func TestPolyCompressDu(t *testing.T) {
	for _, du := range []uint{10, 11} {
		for base := -(q - 1); base < q; base += n {
			var a, b poly
			for i := 0; i < n; i++ {
				x := base + i
				if x >= q {
					x = 0
				}
				a[i] = int16(x)
			}
			buf := make([]byte, 32*du)
			poly_compress_du(buf, &a, du)
			poly_decompress_du(&b, buf, du)
			for i := 0; i < n; i++ {
				if distq(int64(a[i]), int64(b[i])) > compress_bound(du) {
					t.Fatalf("ERR du=%d: %d -> %d\n", du, a[i], b[i])
				}
			}
		}
	}
}

// The multiply-and-shift rounding must agree with the textbook formula
// round(x*2^d/q) mod 2^d for every x in [0,q-1].
func TestCompressRounding(t *testing.T) {
	for _, d := range []uint{4, 5, 10, 11} {
		var a poly
		buf := make([]byte, 32*d)
		for base := 0; base < q; base += n {
			for i := 0; i < n; i++ {
				a[i] = int16((base + i) % q)
			}
			if d <= 5 {
				poly_compress(buf, &a, d)
			} else {
				poly_compress_du(buf, &a, d)
			}
			// Decode the raw d-bit values, little-endian bit order.
			for i := 0; i < n; i++ {
				v := uint32(0)
				for j := uint(0); j < d; j++ {
					bit := uint(i)*d + j
					v |= uint32((buf[bit>>3]>>(bit&7))&1) << j
				}
				exp := ((uint32(a[i]) << d) + q/2) / q
				exp &= (1 << d) - 1
				if v != exp {
					t.Fatalf("ERR d=%d: x=%d -> %d (exp: %d)\n",
						d, a[i], v, exp)
				}
			}
		}
	}
}

func TestPolyvecCompress(t *testing.T) {
	for _, p := range all_params {
		k := p.k
		sh := new_test_shake("polyvec-compress-"+p.name, 0)
		var a, b [maxK]poly
		for i := 0; i < k; i++ {
			rand_coeffs_centered(sh, (*[n]int16)(&a[i]))
		}
		buf := make([]byte, p.polyvecCompressedBytes())
		polyvec_compress(buf, a[:k], p.du)
		polyvec_decompress(b[:k], buf, p.du)
		for i := 0; i < k; i++ {
			for j := 0; j < n; j++ {
				if distq(int64(a[i][j]), int64(b[i][j])) > compress_bound(p.du) {
					t.Fatalf("ERR %s: %d -> %d\n", p, a[i][j], b[i][j])
				}
			}
		}
	}
}
