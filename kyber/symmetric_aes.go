//go:build kyber_90s

package kyber

// Symmetric primitives of the "90s" variant, built on primitives with
// widespread hardware support:
//
//	H    SHA-256
//	G    SHA-512
//	XOF  AES-256-CTR, key = seed, nonce = x || y || 0...
//	PRF  AES-256-CTR, key = key, nonce = nonce || 0...
//	KDF  SHA-256
//
// The CTR counter occupies the last 4 bytes of the 16-byte IV (big-endian,
// starting at zero).

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
)

// AES-256-CTR is squeezed by groups of four AES blocks.
const xof_blockbytes = 64

const symmetric_suite = "AES-256-CTR/SHA-2"

type xof_state struct {
	ctr cipher.Stream
}

func new_aes256ctr(key []byte, iv *[aes.BlockSize]byte) cipher.Stream {
	bc, err := aes.NewCipher(key)
	if err != nil {
		// Key length is always 32 here.
		panic(err)
	}
	return cipher.NewCTR(bc, iv[:])
}

func xof_absorb(st *xof_state, seed *[symbytes]byte, x uint8, y uint8) {
	var iv [aes.BlockSize]byte
	iv[0] = x
	iv[1] = y
	st.ctr = new_aes256ctr(seed[:], &iv)
}

func xof_squeeze(st *xof_state, out []byte) {
	for i := range out {
		out[i] = 0
	}
	st.ctr.XORKeyStream(out, out)
}

func hash_h(out *[32]byte, in ...[]byte) {
	h := sha256.New()
	for _, b := range in {
		h.Write(b)
	}
	h.Sum(out[:0])
}

func hash_g(out *[64]byte, in ...[]byte) {
	h := sha512.New()
	for _, b := range in {
		h.Write(b)
	}
	h.Sum(out[:0])
}

func prf(out []byte, key *[symbytes]byte, nonce uint8) {
	var iv [aes.BlockSize]byte
	iv[0] = nonce
	for i := range out {
		out[i] = 0
	}
	new_aes256ctr(key[:], &iv).XORKeyStream(out, out)
}

// KDF output is the 32-byte SHA-256 digest; out must have length 32.
func kdf(out []byte, in []byte) {
	d := sha256.Sum256(in)
	copy(out, d[:])
}
