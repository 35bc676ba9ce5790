package kyber

import (
	"crypto/rand"
	"errors"
	"io"
)

// Errors reported for malformed inputs. A ciphertext that fails the
// re-encryption check is never reported as an error: decapsulation then
// returns a pseudorandom shared secret (implicit rejection).
var (
	ErrUnknownParams  = errors.New("kyber: unknown parameter set")
	ErrPublicKeySize  = errors.New("kyber: invalid public key length")
	ErrSecretKeySize  = errors.New("kyber: invalid secret key length")
	ErrCiphertextSize = errors.New("kyber: invalid ciphertext length")
)

// Generate a new key pair.
//
//   - p is the parameter set (Kyber512, Kyber768 or Kyber1024).
//   - rng is the random source to use (nil to use the OS RNG).
//
// Output is the new key pair (secret and public keys, both encoded). An
// error is reported only if the random source fails. Exactly 64 bytes are
// read from rng: 32 for the CPA key pair seed, then 32 for the implicit
// rejection value z.
func KeyGen(p *Params, rng io.Reader) (sk []byte, pk []byte, err error) {
	if p == nil {
		return nil, nil, ErrUnknownParams
	}
	if rng == nil {
		rng = rand.Reader
	}
	var seed, z [symbytes]byte
	if _, err = io.ReadFull(rng, seed[:]); err != nil {
		return nil, nil, err
	}
	if _, err = io.ReadFull(rng, z[:]); err != nil {
		return nil, nil, err
	}
	sk, pk = keygen_inner(p, &seed, &z)
	return sk, pk, nil
}

// Deterministic key pair generation.
func keygen_inner(p *Params,
	seed *[symbytes]byte, z *[symbytes]byte) (sk []byte, pk []byte) {

	sk = make([]byte, p.SecretKeySize())
	pk = make([]byte, p.PublicKeySize())

	// sk = cpa_sk || pk || H(pk) || z
	j := p.indcpaSecretKeyBytes()
	indcpa_keypair(p, pk, sk[:j], seed)
	j += copy(sk[j:], pk)
	hash_h((*[symbytes]byte)(sk[j:j+symbytes]), pk)
	j += symbytes
	copy(sk[j:], z[:])
	return
}

// Encapsulate a fresh shared secret against the public key pk. The
// parameter set is inferred from the public key length.
//
//   - rng is the random source to use (nil to use the OS RNG); exactly
//     32 bytes are read from it.
//   - pk is the encoded public key.
//
// Output is the ciphertext to send to the key owner, and the 32-byte
// shared secret. An error is returned if the public key length does not
// match any parameter set, or if the random source fails.
func Encapsulate(rng io.Reader, pk []byte) (ct []byte, ss []byte, err error) {
	p, err := params_for_public_key(len(pk))
	if err != nil {
		return nil, nil, err
	}
	if rng == nil {
		rng = rand.Reader
	}
	var seed [symbytes]byte
	if _, err = io.ReadFull(rng, seed[:]); err != nil {
		return nil, nil, err
	}
	ct, ss = encaps_inner(p, pk, &seed)
	return ct, ss, nil
}

// Deterministic encapsulation; seed is the raw random input.
func encaps_inner(p *Params,
	pk []byte, seed *[symbytes]byte) (ct []byte, ss []byte) {

	// Raw RNG output is never used directly.
	var m [symbytes]byte
	hash_h(&m, seed[:])

	// (K, coins) = G(m || H(pk))
	var hpk [symbytes]byte
	hash_h(&hpk, pk)
	var kr [2 * symbytes]byte
	hash_g(&kr, m[:], hpk[:])

	ct = make([]byte, p.CiphertextSize())
	indcpa_enc(p, ct, &m, pk, (*[symbytes]byte)(kr[symbytes:]))

	// Coins are replaced with H(ct), then ss = KDF(K || H(ct)).
	hash_h((*[symbytes]byte)(kr[symbytes:]), ct)
	ss = make([]byte, ssbytes)
	kdf(ss, kr[:])
	return
}

// Decapsulate a ciphertext with the secret key sk. The parameter set is
// inferred from the secret key length.
//
// Output is the 32-byte shared secret. If the ciphertext is not a valid
// encapsulation for this key, the output is a pseudorandom value derived
// from the secret rejection value z and the ciphertext; this case is NOT
// reported and takes the same time as the nominal case. An error is
// returned only if the key or ciphertext length is invalid.
func Decapsulate(sk []byte, ct []byte) (ss []byte, err error) {
	p, err := params_for_secret_key(len(sk))
	if err != nil {
		return nil, err
	}
	if len(ct) != p.CiphertextSize() {
		return nil, ErrCiphertextSize
	}
	ss = make([]byte, ssbytes)
	decaps_inner(p, ss, sk, ct)
	return ss, nil
}

// Inner decapsulation; sizes are assumed correct.
func decaps_inner(p *Params, ss []byte, sk []byte, ct []byte) {
	j0 := p.indcpaSecretKeyBytes()
	j1 := j0 + p.indcpaPublicKeyBytes()
	cpa_sk := sk[:j0]
	pk := sk[j0:j1]
	hpk := sk[j1 : j1+symbytes]
	z := sk[j1+symbytes : j1+2*symbytes]

	var m [symbytes]byte
	indcpa_dec(p, &m, ct, cpa_sk)

	// (K', coins') = G(m' || H(pk))
	var kr [2 * symbytes]byte
	hash_g(&kr, m[:], hpk)

	// Re-encrypt and compare, in constant time.
	var cmpbuf [maxCiphertextBytes]byte
	cmp := cmpbuf[:len(ct)]
	indcpa_enc(p, cmp, &m, pk, (*[symbytes]byte)(kr[symbytes:]))
	fail := verify(ct, cmp)

	hash_h((*[symbytes]byte)(kr[symbytes:]), ct)

	// On mismatch, K' is replaced with z.
	cmov(kr[:symbytes], z, uint8(fail))

	kdf(ss, kr[:])
}

// Get the public key embedded in an encoded secret key. The returned
// slice is a copy.
func PublicKeyFromSecretKey(sk []byte) ([]byte, error) {
	p, err := params_for_secret_key(len(sk))
	if err != nil {
		return nil, err
	}
	j := p.indcpaSecretKeyBytes()
	pk := make([]byte, p.PublicKeySize())
	copy(pk, sk[j:j+len(pk)])
	return pk, nil
}
