// Package igf implements the index generation function of NTRUEncrypt: a
// digest-driven derivation of pseudorandom indices in [0, N) from a seed.
// It drives the blinding-polynomial derivation during encryption and
// decryption, and doubles as a deterministic randomness backend.
package igf

import (
	"encoding/binary"

	"github.com/FrinkGlobal/ntru/digest"
)

// Generator is the state of one index generation stream. It is not safe
// for concurrent use.
type Generator struct {
	n         int
	c         int
	threshold uint32
	digest    digest.Digest
	seed      []byte
	counter   uint32
	buf       []byte
	bitPos    int
}

// New creates a generator producing indices in [0, n) by extracting c
// bits at a time from the digest stream of seed. If hashSeed is set the
// seed is hashed once before use. minCalls digest calls are made up
// front; more follow on demand.
func New(n, c int, d digest.Digest, minCalls int, hashSeed bool, seed []byte) *Generator {
	g := &Generator{
		n:      n,
		c:      c,
		digest: d,
		// Values of c bits at or above the largest multiple of n are
		// rejected so that the reduced index is uniform.
		threshold: uint32(1)<<c - (uint32(1)<<c)%uint32(n),
	}
	if hashSeed {
		g.seed = d.Sum(seed)
	} else {
		g.seed = append([]byte(nil), seed...)
	}
	g.fill(minCalls)
	return g
}

// Next returns the next index in [0, N).
func (g *Generator) Next() int {
	for {
		if len(g.buf)*8-g.bitPos < g.c {
			g.fill(1)
		}
		var v uint32
		for i := 0; i < g.c; i++ {
			v = v<<1 | uint32(g.buf[g.bitPos>>3]>>(7-g.bitPos&7)&1)
			g.bitPos++
		}
		if v < g.threshold {
			return int(v % uint32(g.n))
		}
	}
}

// NextByte returns the next full byte of the digest stream, bypassing the
// index extraction. Used by the deterministic randomness backend.
func (g *Generator) NextByte() byte {
	if len(g.buf)*8-g.bitPos < 8 {
		g.fill(1)
	}
	var v byte
	for i := 0; i < 8; i++ {
		v = v<<1 | g.buf[g.bitPos>>3]>>(7-g.bitPos&7)&1
		g.bitPos++
	}
	return v
}

// fill appends the output of calls digest invocations of seed||counter to
// the bit buffer, batching four-way where possible.
func (g *Generator) fill(calls int) {
	// Drop fully consumed bytes first.
	if drop := g.bitPos >> 3; drop > 0 {
		g.buf = g.buf[drop:]
		g.bitPos &= 7
	}
	for calls >= 4 {
		var inputs [4][]byte
		for i := range inputs {
			inputs[i] = g.callInput(g.counter + uint32(i))
		}
		for _, d := range g.digest.Sum4(inputs) {
			g.buf = append(g.buf, d...)
		}
		g.counter += 4
		calls -= 4
	}
	for ; calls > 0; calls-- {
		g.buf = append(g.buf, g.digest.Sum(g.callInput(g.counter))...)
		g.counter++
	}
}

func (g *Generator) callInput(counter uint32) []byte {
	in := make([]byte, len(g.seed)+4)
	copy(in, g.seed)
	binary.BigEndian.PutUint32(in[len(g.seed):], counter)
	return in
}
