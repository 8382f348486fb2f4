package poly

import (
	"fmt"
	"math/bits"
)

// The wire format packs coefficients and indices tightly: values are
// written low bit first into a little-endian bit stream.

// EncLen returns the number of bytes n coefficients occupy when packed at
// ceil(log2 q) bits each.
func EncLen(n int, q uint16) int {
	return (n*bits.Len16(q-1) + 7) / 8
}

// ToBytes packs the coefficients of p at ceil(log2 q) bits each. q must
// be a power of two; coefficients are reduced modulo q on the way out.
func (p *IntPoly) ToBytes(q uint16) []byte {
	bitsPer := bits.Len16(q - 1)
	out := make([]byte, EncLen(p.N(), q))
	bit := 0
	for _, c := range p.Coeffs {
		v := uint16(c) & (q - 1)
		for b := 0; b < bitsPer; b++ {
			if v>>b&1 == 1 {
				out[bit>>3] |= 1 << (bit & 7)
			}
			bit++
		}
	}
	return out
}

// IntPolyFromBytes unpacks n coefficients packed at ceil(log2 q) bits
// each, the exact inverse of ToBytes.
func IntPolyFromBytes(data []byte, n int, q uint16) (*IntPoly, error) {
	bitsPer := bits.Len16(q - 1)
	if len(data) < EncLen(n, q) {
		return nil, fmt.Errorf("poly: %d bytes cannot hold %d coefficients of %d bits", len(data), n, bitsPer)
	}
	p := NewIntPoly(n)
	bit := 0
	for i := 0; i < n; i++ {
		var v uint16
		for b := 0; b < bitsPer; b++ {
			v |= uint16(data[bit>>3]>>(bit&7)&1) << b
			bit++
		}
		p.Coeffs[i] = int16(v)
	}
	return p, nil
}

// ToBytes4 packs the two low bits of every coefficient, the form the mask
// generation function hashes.
func (p *IntPoly) ToBytes4() []byte {
	out := make([]byte, (p.N()*2+7)/8)
	bit := 0
	for _, c := range p.Coeffs {
		out[bit>>3] |= byte(uint16(c)&3) << (bit & 7)
		bit += 2
	}
	return out
}

// PackIndices packs ternary indices at bitsPerIdx bits each.
func PackIndices(indices []uint16, bitsPerIdx int) []byte {
	out := make([]byte, (len(indices)*bitsPerIdx+7)/8)
	bit := 0
	for _, v := range indices {
		for b := 0; b < bitsPerIdx; b++ {
			if v>>b&1 == 1 {
				out[bit>>3] |= 1 << (bit & 7)
			}
			bit++
		}
	}
	return out
}

// UnpackIndices unpacks count indices packed at bitsPerIdx bits each, the
// exact inverse of PackIndices. Range validation is left to the caller.
func UnpackIndices(data []byte, count, bitsPerIdx int) ([]uint16, error) {
	if len(data) < (count*bitsPerIdx+7)/8 {
		return nil, fmt.Errorf("poly: %d bytes cannot hold %d indices of %d bits", len(data), count, bitsPerIdx)
	}
	indices := make([]uint16, count)
	bit := 0
	for i := range indices {
		var v uint16
		for b := 0; b < bitsPerIdx; b++ {
			v |= uint16(data[bit>>3]>>(bit&7)&1) << b
			bit++
		}
		indices[i] = v
	}
	return indices, nil
}
