package kyber

import (
	"testing"
)

func test_seed(label byte) (seed [symbytes]byte) {
	for i := range seed {
		seed[i] = label + byte(7*i)
	}
	return
}

func TestRejUniform(t *testing.T) {
	var r [4]int16

	// 0xFFF is rejected twice, then 1 and 0 are accepted.
	buf := []byte{0xFF, 0xFF, 0xFF, 0x01, 0x00, 0x00}
	if c := rej_uniform(r[:], buf); c != 2 || r[0] != 1 || r[1] != 0 {
		t.Fatalf("ERR rej_uniform: %d %v\n", c, r)
	}

	// q-1 is accepted, q is rejected.
	buf = []byte{0x00, 0x0D, 0xD0, 0x00}
	buf[0] = byte((q - 1) & 0xFF)
	buf[1] = byte((q-1)>>8) | byte((q&0xF)<<4)
	buf[2] = byte(q >> 4)
	if c := rej_uniform(r[:], buf); c != 1 || r[0] != q-1 {
		t.Fatalf("ERR rej_uniform: %d %v\n", c, r)
	}

	// Output is capped at len(r), even mid-triple.
	buf = []byte{1, 0x20, 0, 3, 0x40, 0, 5, 0, 0}
	if c := rej_uniform(r[:3], buf); c != 3 || r[0] != 1 || r[1] != 2 || r[2] != 3 {
		t.Fatalf("ERR rej_uniform: %d %v\n", c, r)
	}
}

func TestGenMatrixDeterministic(t *testing.T) {
	for _, p := range all_params {
		seed := test_seed(1)
		var a1, a2 matrix
		gen_matrix(p.k, &a1, &seed, false)
		gen_matrix(p.k, &a2, &seed, false)
		if a1 != a2 {
			t.Fatalf("ERR %s: gen_matrix is not deterministic\n", p)
		}
		for i := 0; i < p.k; i++ {
			for j := 0; j < p.k; j++ {
				for u := 0; u < n; u++ {
					x := a1[i][j][u]
					if x < 0 || x >= q {
						t.Fatalf("ERR %s: coefficient out of range: %d\n", p, x)
					}
				}
			}
		}
		seed[0] ^= 1
		gen_matrix(p.k, &a2, &seed, false)
		if a1 == a2 {
			t.Fatalf("ERR %s: seed has no effect\n", p)
		}
	}
}

func TestGenMatrixTranspose(t *testing.T) {
	for _, p := range all_params {
		seed := test_seed(2)
		var a, at matrix
		gen_matrix(p.k, &a, &seed, false)
		gen_matrix(p.k, &at, &seed, true)
		for i := 0; i < p.k; i++ {
			for j := 0; j < p.k; j++ {
				if at[i][j] != a[j][i] {
					t.Fatalf("ERR %s: A^T[%d][%d] != A[%d][%d]\n",
						p, i, j, j, i)
				}
				if i != j && a[i][j] == a[j][i] {
					t.Fatalf("ERR %s: A[%d][%d] == A[%d][%d]\n",
						p, i, j, j, i)
				}
			}
		}
	}
}

// Matrix entries must equal a continuous parse of the XOF stream: the
// block-wise squeezing, with leftover bytes carried over, must not drop
// or duplicate any byte.
func TestGenMatrixStream(t *testing.T) {
	seed := test_seed(3)
	var a matrix
	gen_matrix(maxK, &a, &seed, false)
	for i := 0; i < maxK; i++ {
		for j := 0; j < maxK; j++ {
			var st xof_state
			xof_absorb(&st, &seed, uint8(j), uint8(i))
			var buf [3 * 512]byte
			xof_squeeze(&st, buf[:])
			var ref nttPoly
			if c := rej_uniform(ref[:], buf[:]); c != n {
				t.Fatalf("ERR: reference sampling too short: %d\n", c)
			}
			if ref != a[i][j] {
				t.Fatalf("ERR: A[%d][%d] differs from stream parse\n", i, j)
			}
		}
	}
}

func BenchmarkGenMatrix768(b *testing.B) {
	seed := test_seed(4)
	var a matrix
	for i := 0; i < b.N; i++ {
		gen_matrix(3, &a, &seed, false)
	}
}
