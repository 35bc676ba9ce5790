package kyber

// Compare two byte slices of the same length in constant time. Returned
// value is 0 if they are equal, 1 otherwise. Slices of length zero are
// equal.
func verify(a []byte, b []byte) int {
	_ = b[:len(a)]
	r := uint8(0)
	for i := range a {
		r |= a[i] ^ b[i]
	}
	return int((-uint64(r)) >> 63)
}

// Copy x into r if b is 1; leave r unchanged if b is 0. b MUST be 0 or 1.
// Constant-time.
func cmov(r []byte, x []byte, b uint8) {
	_ = x[:len(r)]
	b = -b
	for i := range r {
		r[i] ^= b & (r[i] ^ x[i])
	}
}
