// Package poly implements the polynomial representations and ring
// arithmetic of NTRUEncrypt: general polynomials with int16 coefficients,
// sparse ternary polynomials, product-form polynomials and the private-key
// sum type, all modulo x^N-1.
package poly

// MaxDegree is the largest supported N across all parameter sets, plus one
// coefficient of headroom for Invert.
const MaxDegree = 1499 + 1

// MaxOnes bounds the index sets of a ternary polynomial.
const MaxOnes = 499

// coeffSlots is the backing capacity of every general polynomial,
// (MaxDegree + 16) rounded to a multiple of 8. Allocating the worst case
// once keeps the ring arithmetic free of allocations regardless of the
// active parameter set.
const coeffSlots = (MaxDegree + 16 + 7) &^ 7

// IntPoly is a general polynomial with integer coefficients modulo x^N-1.
// The degree N is the length of Coeffs; the backing array always has
// capacity coeffSlots.
type IntPoly struct {
	Coeffs []int16
}

// NewIntPoly creates a zero polynomial with n coefficients.
func NewIntPoly(n int) *IntPoly {
	if n < 1 || n > MaxDegree {
		// Sanity check, callers validate n against the parameter set.
		panic("poly: degree out of range")
	}
	return &IntPoly{Coeffs: make([]int16, n, coeffSlots)}
}

// NewIntPolyFromCoeffs creates a polynomial from the given coefficients.
func NewIntPolyFromCoeffs(coeffs []int16) *IntPoly {
	p := NewIntPoly(len(coeffs))
	copy(p.Coeffs, coeffs)
	return p
}

// N returns the number of coefficients.
func (p *IntPoly) N() int {
	return len(p.Coeffs)
}

// CopyNew returns an exact copy of p.
func (p *IntPoly) CopyNew() *IntPoly {
	return NewIntPolyFromCoeffs(p.Coeffs)
}

// Zero sets all coefficients to 0.
func (p *IntPoly) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// Add adds b to p coefficientwise, without reduction.
func (p *IntPoly) Add(b *IntPoly) {
	if p.N() != b.N() {
		// Sanity check, all operands of a ring operation share one N.
		panic("poly: degree mismatch")
	}
	for i, c := range b.Coeffs {
		p.Coeffs[i] += c
	}
}

// Sub subtracts b from p coefficientwise, without reduction.
func (p *IntPoly) Sub(b *IntPoly) {
	if p.N() != b.N() {
		// Sanity check, all operands of a ring operation share one N.
		panic("poly: degree mismatch")
	}
	for i, c := range b.Coeffs {
		p.Coeffs[i] -= c
	}
}

// AddTern adds a ternary polynomial to p, without reduction.
func (p *IntPoly) AddTern(t *TernPoly) {
	if p.N() != t.N {
		// Sanity check, all operands of a ring operation share one N.
		panic("poly: degree mismatch")
	}
	for _, i := range t.Ones {
		p.Coeffs[i]++
	}
	for _, i := range t.NegOnes {
		p.Coeffs[i]--
	}
}

// MulFac multiplies every coefficient by factor, without reduction.
func (p *IntPoly) MulFac(factor int16) {
	for i := range p.Coeffs {
		p.Coeffs[i] *= factor
	}
}

// ModMask reduces every coefficient modulo the power-of-two modulus
// modMask+1, leaving it in [0, modMask].
func (p *IntPoly) ModMask(modMask uint16) {
	for i, c := range p.Coeffs {
		p.Coeffs[i] = int16(uint16(c) & modMask)
	}
}

// ModCenter reduces every coefficient modulo modulus into the centered
// interval (-modulus/2, modulus/2].
func (p *IntPoly) ModCenter(modulus uint16) {
	m := int32(modulus)
	for i, c := range p.Coeffs {
		v := int32(c) % m
		if v < 0 {
			v += m
		}
		if v > m/2 {
			v -= m
		}
		p.Coeffs[i] = int16(v)
	}
}

// Mod3 reduces every coefficient modulo 3 into {-1, 0, 1}, mapping the
// residual 2 to -1.
func (p *IntPoly) Mod3() {
	for i, c := range p.Coeffs {
		v := int16(((int32(c) % 3) + 3) % 3)
		if v == 2 {
			v = -1
		}
		p.Coeffs[i] = v
	}
}

// EqualsMod reports whether p and b are congruent coefficientwise modulo
// modulus.
func (p *IntPoly) EqualsMod(b *IntPoly, modulus uint16) bool {
	if p.N() != b.N() {
		return false
	}
	m := int32(modulus)
	for i, c := range p.Coeffs {
		if (int32(c)-int32(b.Coeffs[i]))%m != 0 {
			return false
		}
	}
	return true
}

// EqualsOne reports whether p is the constant polynomial 1.
func (p *IntPoly) EqualsOne() bool {
	for _, c := range p.Coeffs[1:] {
		if c != 0 {
			return false
		}
	}
	return p.Coeffs[0] == 1
}

// Equals reports whether p and b have identical coefficients.
func (p *IntPoly) Equals(b *IntPoly) bool {
	if p.N() != b.N() {
		return false
	}
	for i, c := range p.Coeffs {
		if b.Coeffs[i] != c {
			return false
		}
	}
	return true
}

// TritCounts returns the number of coefficients equal to -1, 0 and 1. Other
// values are not counted.
func (p *IntPoly) TritCounts() (negOnes, zeros, ones int) {
	for _, c := range p.Coeffs {
		switch c {
		case -1:
			negOnes++
		case 0:
			zeros++
		case 1:
			ones++
		}
	}
	return
}
