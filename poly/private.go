package poly

// PrivPoly is the private-key polynomial, either a ternary or a
// product-form polynomial. It is a sum type: exactly one variant is set.
type PrivPoly struct {
	tern *TernPoly
	prod *ProdPoly
}

// NewTernPriv wraps a ternary polynomial as a private polynomial.
func NewTernPriv(t *TernPoly) PrivPoly {
	return PrivPoly{tern: t}
}

// NewProdPriv wraps a product-form polynomial as a private polynomial.
func NewProdPriv(p *ProdPoly) PrivPoly {
	return PrivPoly{prod: p}
}

// IsProduct reports whether the polynomial is in product form.
func (p PrivPoly) IsProduct() bool {
	return p.prod != nil
}

// Tern returns the ternary variant. It panics if the polynomial is in
// product form; that path is never reachable from external input.
func (p PrivPoly) Tern() *TernPoly {
	if p.tern == nil {
		panic("poly: private polynomial is not ternary")
	}
	return p.tern
}

// Prod returns the product-form variant. It panics if the polynomial is
// ternary; that path is never reachable from external input.
func (p PrivPoly) Prod() *ProdPoly {
	if p.prod == nil {
		panic("poly: private polynomial is not product-form")
	}
	return p.prod
}

// N returns the degree of the polynomial.
func (p PrivPoly) N() int {
	if p.IsProduct() {
		return p.prod.N
	}
	return p.tern.N
}

// ToInt converts the polynomial to an equivalent general polynomial with
// coefficients reduced modulo modMask+1.
func (p PrivPoly) ToInt(modMask uint16) *IntPoly {
	if p.IsProduct() {
		return p.prod.ToInt(modMask)
	}
	c := p.tern.ToInt()
	c.ModMask(modMask)
	return c
}

// Equals reports whether p and b hold identical polynomials of the same
// variant.
func (p PrivPoly) Equals(b PrivPoly) bool {
	if p.IsProduct() != b.IsProduct() {
		return false
	}
	if p.IsProduct() {
		return p.prod.Equals(b.prod)
	}
	return p.tern.Equals(b.tern)
}
