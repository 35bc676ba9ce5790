package kyber

import (
	"golang.org/x/sys/cpu"
)

// SymmetricSuite returns the name of the symmetric primitives compiled
// into the package: "SHAKE" for the standard variant, or
// "AES-256-CTR/SHA-2" when built with the kyber_90s tag.
func SymmetricSuite() string {
	return symmetric_suite
}

// HasAESHardware reports whether the CPU offers AES instructions. This
// only matters for the kyber_90s variant, whose XOF and PRF are
// AES-based and run much faster with hardware support.
func HasAESHardware() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
