package kyber

// Fixed constants of the ring and of the symmetric layer.
const (
	n        = 256
	q        = 3329
	symbytes = 32
	ssbytes  = 32
	eta2     = 2
	maxK     = 4

	// Size of a polynomial encoded with 12 bits per coefficient.
	polybytes = 384

	// Largest ciphertext size over all parameter sets (Kyber1024).
	maxCiphertextBytes = 4*352 + 160
)

// Params identifies one of the standard Kyber parameter sets. Only the
// three values [Kyber512], [Kyber768] and [Kyber1024] exist; all sizes
// derive from the module rank k and the two compression widths.
type Params struct {
	name string
	k    int
	eta1 int
	du   uint // bits per coefficient of the compressed vector u
	dv   uint // bits per coefficient of the compressed polynomial v
}

// Kyber512 targets NIST security category 1.
var Kyber512 = &Params{name: "Kyber512", k: 2, eta1: 3, du: 10, dv: 4}

// Kyber768 targets NIST security category 3. This is the recommended
// parameter set.
var Kyber768 = &Params{name: "Kyber768", k: 3, eta1: 2, du: 10, dv: 4}

// Kyber1024 targets NIST security category 5.
var Kyber1024 = &Params{name: "Kyber1024", k: 4, eta1: 2, du: 11, dv: 5}

var all_params = []*Params{Kyber512, Kyber768, Kyber1024}

// ParamsByName returns the parameter set with the given name
// ("Kyber512", "Kyber768" or "Kyber1024").
func ParamsByName(name string) (*Params, error) {
	for _, p := range all_params {
		if p.name == name {
			return p, nil
		}
	}
	return nil, ErrUnknownParams
}

// Name returns the conventional name of the parameter set.
func (p *Params) Name() string {
	return p.name
}

// K returns the module rank (number of polynomials in a vector).
func (p *Params) K() int {
	return p.k
}

func (p *Params) String() string {
	return p.name
}

func (p *Params) polyvecBytes() int {
	return p.k * polybytes
}

func (p *Params) polyCompressedBytes() int {
	return int(p.dv) << 5
}

func (p *Params) polyvecCompressedBytes() int {
	return p.k * (int(p.du) << 5)
}

func (p *Params) indcpaPublicKeyBytes() int {
	return p.polyvecBytes() + symbytes
}

func (p *Params) indcpaSecretKeyBytes() int {
	return p.polyvecBytes()
}

func (p *Params) indcpaBytes() int {
	return p.polyvecCompressedBytes() + p.polyCompressedBytes()
}

// Get the size of an encoded public (encapsulation) key, in bytes.
func (p *Params) PublicKeySize() int {
	return p.indcpaPublicKeyBytes()
}

// Get the size of an encoded secret (decapsulation) key, in bytes. The
// secret key embeds the public key, its hash and the implicit rejection
// value z.
func (p *Params) SecretKeySize() int {
	return p.indcpaSecretKeyBytes() + p.indcpaPublicKeyBytes() + 2*symbytes
}

// Get the size of a ciphertext, in bytes.
func (p *Params) CiphertextSize() int {
	return p.indcpaBytes()
}

// Get the size of a shared secret, in bytes (always 32).
func (p *Params) SharedSecretSize() int {
	return ssbytes
}

// Find the parameter set matching an encoded public key length.
func params_for_public_key(pklen int) (*Params, error) {
	for _, p := range all_params {
		if p.PublicKeySize() == pklen {
			return p, nil
		}
	}
	return nil, ErrPublicKeySize
}

// Find the parameter set matching an encoded secret key length.
func params_for_secret_key(sklen int) (*Params, error) {
	for _, p := range all_params {
		if p.SecretKeySize() == sklen {
			return p, nil
		}
	}
	return nil, ErrSecretKeySize
}
