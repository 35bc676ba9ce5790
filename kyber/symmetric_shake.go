//go:build !kyber_90s

package kyber

// Symmetric primitives of the standard variant, all from the SHA-3
// family:
//
//	H    SHA3-256
//	G    SHA3-512
//	XOF  SHAKE128(seed || x || y)
//	PRF  SHAKE256(key || nonce)
//	KDF  SHAKE256

import (
	sha3 "golang.org/x/crypto/sha3"
)

// SHAKE128 rate.
const xof_blockbytes = 168

// Name of the symmetric suite compiled in.
const symmetric_suite = "SHAKE"

type xof_state struct {
	sh sha3.ShakeHash
}

// Initialize the XOF with a 32-byte seed and two index bytes.
func xof_absorb(st *xof_state, seed *[symbytes]byte, x uint8, y uint8) {
	st.sh = sha3.NewShake128()
	st.sh.Write(seed[:])
	st.sh.Write([]byte{x, y})
}

// Get the next len(out) bytes of XOF output.
func xof_squeeze(st *xof_state, out []byte) {
	st.sh.Read(out)
}

func hash_h(out *[32]byte, in ...[]byte) {
	h := sha3.New256()
	for _, b := range in {
		h.Write(b)
	}
	h.Sum(out[:0])
}

func hash_g(out *[64]byte, in ...[]byte) {
	h := sha3.New512()
	for _, b := range in {
		h.Write(b)
	}
	h.Sum(out[:0])
}

func prf(out []byte, key *[symbytes]byte, nonce uint8) {
	sh := sha3.NewShake256()
	sh.Write(key[:])
	sh.Write([]byte{nonce})
	sh.Read(out)
}

func kdf(out []byte, in []byte) {
	sha3.ShakeSum256(out, in)
}
