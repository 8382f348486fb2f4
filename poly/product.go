package poly

import (
	"fmt"

	"github.com/FrinkGlobal/ntru/rand"
)

// ProdPoly is a product-form polynomial f1*f2+f3, where f1, f2 and f3 are
// very sparsely populated ternary polynomials of the same degree. It is
// cheaper to multiply by than a ternary polynomial of comparable
// statistical weight.
type ProdPoly struct {
	N          int
	F1, F2, F3 *TernPoly
}

// NewProdPoly creates a product-form polynomial from three ternary
// factors of degree n.
func NewProdPoly(n int, f1, f2, f3 *TernPoly) (*ProdPoly, error) {
	if f1.N != n || f2.N != n || f3.N != n {
		return nil, fmt.Errorf("poly: product factors must all have degree %d", n)
	}
	return &ProdPoly{N: n, F1: f1, F2: f2, F3: f3}, nil
}

// RandProd samples a random product-form polynomial: f1 and f2 with df1
// resp. df2 ones and negative ones each, f3 with df3 of each.
func RandProd(n, df1, df2, df3 int, ctx *rand.Context) (*ProdPoly, error) {
	f1, err := RandTern(n, df1, df1, ctx)
	if err != nil {
		return nil, err
	}
	f2, err := RandTern(n, df2, df2, ctx)
	if err != nil {
		return nil, err
	}
	f3, err := RandTern(n, df3, df3, ctx)
	if err != nil {
		return nil, err
	}
	return &ProdPoly{N: n, F1: f1, F2: f2, F3: f3}, nil
}

// ToInt converts p to an equivalent general polynomial with coefficients
// reduced modulo modMask+1.
func (p *ProdPoly) ToInt(modMask uint16) *IntPoly {
	c, err := MulTern(p.F1.ToInt(), p.F2, modMask)
	if err != nil {
		// Sanity check, the factors share one N by construction.
		panic(err)
	}
	c.AddTern(p.F3)
	c.ModMask(modMask)
	return c
}

// CopyNew returns an exact copy of p.
func (p *ProdPoly) CopyNew() *ProdPoly {
	return &ProdPoly{N: p.N, F1: p.F1.CopyNew(), F2: p.F2.CopyNew(), F3: p.F3.CopyNew()}
}

// Equals reports whether p and b are identical.
func (p *ProdPoly) Equals(b *ProdPoly) bool {
	return p.N == b.N && p.F1.Equals(b.F1) && p.F2.Equals(b.F2) && p.F3.Equals(b.F3)
}
