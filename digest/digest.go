// Package digest defines the pluggable hash abstraction used by the NTRU
// parameter sets. The scheme is agnostic to the concrete algorithm as long
// as the output length matches the length declared by the parameter set;
// the IEEE P1363.1 sets fix SHA-1 and SHA-256.
package digest

import (
	"crypto/sha1"
	"crypto/sha256"
)

// Digest computes fixed-length digests. The batched variants are
// semantically equal to repeated single calls; implementations may
// specialize them for throughput.
type Digest interface {
	// Name identifies the algorithm.
	Name() string
	// Size returns the digest length in bytes.
	Size() int
	// Sum returns the digest of input.
	Sum(input []byte) []byte
	// Sum4 returns the digests of four inputs.
	Sum4(inputs [4][]byte) [4][]byte
	// Sum8 returns the digests of eight inputs.
	Sum8(inputs [8][]byte) [8][]byte
}

// SHA1 is the 160-bit digest used by the 112- and 128-bit security
// parameter sets.
type SHA1 struct{}

func (SHA1) Name() string { return "sha1" }

func (SHA1) Size() int { return sha1.Size }

func (SHA1) Sum(input []byte) []byte {
	s := sha1.Sum(input)
	return s[:]
}

func (d SHA1) Sum4(inputs [4][]byte) (digests [4][]byte) {
	for i := range inputs {
		digests[i] = d.Sum(inputs[i])
	}
	return
}

func (d SHA1) Sum8(inputs [8][]byte) (digests [8][]byte) {
	for i := range inputs {
		digests[i] = d.Sum(inputs[i])
	}
	return
}

// SHA256 is the 256-bit digest used by the 192- and 256-bit security
// parameter sets.
type SHA256 struct{}

func (SHA256) Name() string { return "sha256" }

func (SHA256) Size() int { return sha256.Size }

func (SHA256) Sum(input []byte) []byte {
	s := sha256.Sum256(input)
	return s[:]
}

func (d SHA256) Sum4(inputs [4][]byte) (digests [4][]byte) {
	for i := range inputs {
		digests[i] = d.Sum(inputs[i])
	}
	return
}

func (d SHA256) Sum8(inputs [8][]byte) (digests [8][]byte) {
	for i := range inputs {
		digests[i] = d.Sum(inputs[i])
	}
	return
}
