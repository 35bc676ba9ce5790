package kyber

import (
	"errors"
	"testing"
)

func TestPublicKeySize(t *testing.T) {
	var expected = []int{800, 1184, 1568}
	for i, p := range all_params {
		s := p.PublicKeySize()
		if s != expected[i] {
			t.Fatalf("ERR: %s -> %d (exp: %d)\n", p, s, expected[i])
		}
	}
}

func TestSecretKeySize(t *testing.T) {
	var expected = []int{1632, 2400, 3168}
	for i, p := range all_params {
		s := p.SecretKeySize()
		if s != expected[i] {
			t.Fatalf("ERR: %s -> %d (exp: %d)\n", p, s, expected[i])
		}
	}
}

func TestCiphertextSize(t *testing.T) {
	var expected = []int{768, 1088, 1568}
	for i, p := range all_params {
		s := p.CiphertextSize()
		if s != expected[i] {
			t.Fatalf("ERR: %s -> %d (exp: %d)\n", p, s, expected[i])
		}
		if s > maxCiphertextBytes {
			t.Fatalf("ERR: %s ciphertext exceeds maxCiphertextBytes\n", p)
		}
	}
}

func TestParamsByName(t *testing.T) {
	for _, p := range all_params {
		r, err := ParamsByName(p.Name())
		if err != nil || r != p {
			t.Fatalf("ERR: lookup of %s failed\n", p.Name())
		}
	}
	if _, err := ParamsByName("Kyber256"); !errors.Is(err, ErrUnknownParams) {
		t.Fatalf("ERR: unexpected result for unknown name: %v\n", err)
	}
}

func TestParamsByLength(t *testing.T) {
	for _, p := range all_params {
		r, err := params_for_public_key(p.PublicKeySize())
		if err != nil || r != p {
			t.Fatalf("ERR: public key length lookup failed for %s\n", p)
		}
		r, err = params_for_secret_key(p.SecretKeySize())
		if err != nil || r != p {
			t.Fatalf("ERR: secret key length lookup failed for %s\n", p)
		}
	}
	if _, err := params_for_public_key(1000); !errors.Is(err, ErrPublicKeySize) {
		t.Fatalf("ERR: unexpected result for bad public key length: %v\n", err)
	}
	if _, err := params_for_secret_key(1000); !errors.Is(err, ErrSecretKeySize) {
		t.Fatalf("ERR: unexpected result for bad secret key length: %v\n", err)
	}
}

func TestModuleRank(t *testing.T) {
	var expected = []int{2, 3, 4}
	for i, p := range all_params {
		if p.K() != expected[i] {
			t.Fatalf("ERR: %s -> k = %d (exp: %d)\n", p, p.K(), expected[i])
		}
		if p.PublicKeySize() != p.K()*polybytes+symbytes {
			t.Fatalf("ERR: %s public key size does not match k\n", p)
		}
	}
}
