// This package implements the Kyber key encapsulation mechanism (KEM),
// as specified in the third round of the NIST [PQC project]
// (CRYSTALS-Kyber, version 3.02).
//
// Kyber is based on the module learning-with-errors problem over the ring
// Z_q[X]/(X^256+1) with q = 3329. Three parameter sets are defined, which
// differ by the module rank k: [Kyber512] (k = 2), [Kyber768] (k = 3,
// recommended) and [Kyber1024] (k = 4). Keys and ciphertexts are
// exchanged as byte slices with a fixed size for a given parameter set;
// the methods PublicKeySize(), SecretKeySize() and CiphertextSize() of
// [Params] return these sizes. Encodings are bit-for-bit compatible with
// the round-3 reference code.
//
// A new key pair is created with [KeyGen], which takes the parameter set
// and a source of randomness. The random source MUST be cryptographically
// secure. If the source is nil, then the operating system's RNG is used
// (through crypto/rand.Reader).
//
// The sender calls [Encapsulate] with the recipient's public key; this
// produces a ciphertext and a 32-byte shared secret. The recipient calls
// [Decapsulate] with its secret key and the ciphertext, and obtains the
// same shared secret. Decapsulation uses implicit rejection: if the
// ciphertext is invalid (e.g. it was modified in transit), then the
// output is a pseudorandom value unrelated to the sender's secret, and
// no error is reported. Callers must not try to detect that situation;
// a mismatch will show up when the shared secret is used (e.g. as a key
// for authenticated encryption). Errors are returned only for inputs with
// an invalid length, and for failures of the random source.
//
// All operations are constant-time with regard to secret data. Scratch
// polynomials are kept in fixed-size arrays; there is no global mutable
// state, and all functions can be called concurrently.
//
// By default, the symmetric primitives are from the SHA-3 family. When
// the package is built with the "kyber_90s" tag, the "90s" variant is
// used instead (AES-256-CTR and SHA-2); keys and ciphertexts have the
// same sizes but are not interoperable with the default variant.
//
// [PQC project]: https://www.nist.gov/pqcrypto
package kyber
