package kyber

import (
	"bytes"
	"testing"
)

func TestVerify(t *testing.T) {
	for l := 0; l <= 80; l++ {
		a := make([]byte, l)
		for i := range a {
			a[i] = byte(3*i + l)
		}
		b := append([]byte(nil), a...)
		if r := verify(a, b); r != 0 {
			t.Fatalf("ERR verify: equal slices (len=%d) -> %d\n", l, r)
		}
		for i := 0; i < l; i++ {
			for bit := 0; bit < 8; bit++ {
				b[i] ^= 1 << bit
				if r := verify(a, b); r != 1 {
					t.Fatalf("ERR verify: len=%d, diff at %d.%d -> %d\n",
						l, i, bit, r)
				}
				b[i] ^= 1 << bit
			}
			b[i] ^= 0xFF
			if r := verify(a, b); r != 1 {
				t.Fatalf("ERR verify: len=%d, diff at %d -> %d\n", l, i, r)
			}
			b[i] ^= 0xFF
		}
	}
}

func TestCmov(t *testing.T) {
	for l := 0; l <= 40; l++ {
		x := make([]byte, l)
		r := make([]byte, l)
		for i := 0; i < l; i++ {
			x[i] = byte(i + 1)
			r[i] = byte(0xA5 ^ i)
		}
		orig := append([]byte(nil), r...)
		cmov(r, x, 0)
		if !bytes.Equal(r, orig) {
			t.Fatalf("ERR cmov(b=0) modified the destination (len=%d)\n", l)
		}
		cmov(r, x, 1)
		if !bytes.Equal(r, x) {
			t.Fatalf("ERR cmov(b=1) did not copy (len=%d)\n", l)
		}
	}
}
