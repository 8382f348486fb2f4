package poly

import (
	"fmt"
)

// The three mulTern* implementations below are numerically distinct
// (int16 wrap-around, widened int32 accumulators, unrolled uint16 lanes)
// but must return coefficient-equal results modulo q for all valid inputs.
// Encrypt/decrypt round-trip correctness rests on this agreement; it is
// enforced by TestMulTernVariantsAgree.

// MulTern multiplies a general polynomial by a ternary polynomial modulo
// x^N-1, reducing the coefficients with modMask. It runs in O(N*weight)
// and fails only on a degree mismatch.
func MulTern(a *IntPoly, t *TernPoly, modMask uint16) (*IntPoly, error) {
	if a.N() != t.N {
		return nil, fmt.Errorf("poly: cannot multiply degrees %d and %d", a.N(), t.N)
	}
	c := NewIntPoly(a.N())
	mulTernRef(c, a, t, modMask)
	return c, nil
}

// mulTernRef is the reference implementation: for each output index it
// sums the shifted contributions at the "ones" positions and subtracts
// those at the "negOnes" positions, in int16 arithmetic. Intermediate
// wrap-around is harmless because the final power-of-two mask divides
// 2^16.
func mulTernRef(c, a *IntPoly, t *TernPoly, modMask uint16) {
	n := a.N()
	cc := c.Coeffs
	ac := a.Coeffs
	for _, one := range t.Ones {
		k := int(one)
		for i := 0; i < n-k; i++ {
			cc[k+i] += ac[i]
		}
		for i := n - k; i < n; i++ {
			cc[k+i-n] += ac[i]
		}
	}
	for _, negOne := range t.NegOnes {
		k := int(negOne)
		for i := 0; i < n-k; i++ {
			cc[k+i] -= ac[i]
		}
		for i := n - k; i < n; i++ {
			cc[k+i-n] -= ac[i]
		}
	}
	c.ModMask(modMask)
}

// mulTernWide accumulates in int32, so no intermediate value ever wraps,
// and masks once at the end.
func mulTernWide(c, a *IntPoly, t *TernPoly, modMask uint16) {
	n := a.N()
	acc := make([]int32, n)
	ac := a.Coeffs
	for _, one := range t.Ones {
		k := int(one)
		for i := 0; i < n-k; i++ {
			acc[k+i] += int32(ac[i])
		}
		for i := n - k; i < n; i++ {
			acc[k+i-n] += int32(ac[i])
		}
	}
	for _, negOne := range t.NegOnes {
		k := int(negOne)
		for i := 0; i < n-k; i++ {
			acc[k+i] -= int32(ac[i])
		}
		for i := n - k; i < n; i++ {
			acc[k+i-n] -= int32(ac[i])
		}
	}
	for i, v := range acc {
		c.Coeffs[i] = int16(uint16(v) & modMask)
	}
}

// mulTernSliced runs the same convolution on unsigned 16-bit lanes with
// the inner loops unrolled four ways, the shape a vectorizing backend
// wants.
func mulTernSliced(c, a *IntPoly, t *TernPoly, modMask uint16) {
	n := a.N()
	acc := make([]uint16, n)
	ac := a.Coeffs
	for _, one := range t.Ones {
		k := int(one)
		i := 0
		for ; i+3 < n-k; i += 4 {
			acc[k+i] += uint16(ac[i])
			acc[k+i+1] += uint16(ac[i+1])
			acc[k+i+2] += uint16(ac[i+2])
			acc[k+i+3] += uint16(ac[i+3])
		}
		for ; i < n-k; i++ {
			acc[k+i] += uint16(ac[i])
		}
		for ; i < n; i++ {
			acc[k+i-n] += uint16(ac[i])
		}
	}
	for _, negOne := range t.NegOnes {
		k := int(negOne)
		i := 0
		for ; i+3 < n-k; i += 4 {
			acc[k+i] -= uint16(ac[i])
			acc[k+i+1] -= uint16(ac[i+1])
			acc[k+i+2] -= uint16(ac[i+2])
			acc[k+i+3] -= uint16(ac[i+3])
		}
		for ; i < n-k; i++ {
			acc[k+i] -= uint16(ac[i])
		}
		for ; i < n; i++ {
			acc[k+i-n] -= uint16(ac[i])
		}
	}
	for i, v := range acc {
		c.Coeffs[i] = int16(v & modMask)
	}
}

// MulInt multiplies two general polynomials modulo x^N-1, reducing the
// coefficients with modMask. This is the full cyclic convolution; it
// fails only on a degree mismatch.
func MulInt(a, b *IntPoly, modMask uint16) (*IntPoly, error) {
	n := a.N()
	if n != b.N() {
		return nil, fmt.Errorf("poly: cannot multiply degrees %d and %d", n, b.N())
	}
	acc := make([]int64, n)
	bc := b.Coeffs
	for i, av := range a.Coeffs {
		if av == 0 {
			continue
		}
		ai := int64(av)
		for j := 0; j < n-i; j++ {
			acc[i+j] += ai * int64(bc[j])
		}
		for j := n - i; j < n; j++ {
			acc[i+j-n] += ai * int64(bc[j])
		}
	}
	c := NewIntPoly(n)
	for i, v := range acc {
		c.Coeffs[i] = int16(uint16(v) & modMask)
	}
	return c, nil
}

// MulProd multiplies a general polynomial by a product-form polynomial
// modulo x^N-1: a*f1*f2 + a*f3, never forming the dense f1*f2
// intermediate.
func MulProd(a *IntPoly, p *ProdPoly, modMask uint16) (*IntPoly, error) {
	if a.N() != p.N {
		return nil, fmt.Errorf("poly: cannot multiply degrees %d and %d", a.N(), p.N)
	}
	c, err := MulTern(a, p.F1, modMask)
	if err != nil {
		return nil, err
	}
	if c, err = MulTern(c, p.F2, modMask); err != nil {
		return nil, err
	}
	d, err := MulTern(a, p.F3, modMask)
	if err != nil {
		return nil, err
	}
	c.Add(d)
	c.ModMask(modMask)
	return c, nil
}

// MulPriv multiplies a general polynomial by a private polynomial,
// dispatching on its variant.
func MulPriv(a *IntPoly, t PrivPoly, modMask uint16) (*IntPoly, error) {
	if t.IsProduct() {
		return MulProd(a, t.Prod(), modMask)
	}
	return MulTern(a, t.Tern(), modMask)
}
