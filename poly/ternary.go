package poly

import (
	"fmt"
	"math/bits"

	"github.com/FrinkGlobal/ntru/rand"
	"github.com/FrinkGlobal/ntru/utils"
)

// TernPoly is a sparse ternary polynomial: every coefficient is -1, 0 or 1.
// It stores the indices of the +1 and -1 coefficients; the two index sets
// are disjoint and their sizes sum to at most N.
type TernPoly struct {
	N       int
	Ones    []uint16
	NegOnes []uint16
}

// NewTernPoly creates a ternary polynomial from the given index sets. The
// slices are copied.
func NewTernPoly(n int, ones, negOnes []uint16) (*TernPoly, error) {
	t := &TernPoly{
		N:       n,
		Ones:    append([]uint16(nil), ones...),
		NegOnes: append([]uint16(nil), negOnes...),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the structural invariants of the polynomial.
func (t *TernPoly) Validate() error {
	switch {
	case t.N < 1 || t.N > MaxDegree:
		return fmt.Errorf("poly: ternary degree %d out of range", t.N)
	case len(t.Ones) > MaxOnes || len(t.NegOnes) > MaxOnes:
		return fmt.Errorf("poly: ternary index set exceeds %d entries", MaxOnes)
	case len(t.Ones)+len(t.NegOnes) > t.N:
		return fmt.Errorf("poly: ternary weight %d exceeds degree %d", len(t.Ones)+len(t.NegOnes), t.N)
	}
	all := make([]uint16, 0, len(t.Ones)+len(t.NegOnes))
	all = append(all, t.Ones...)
	all = append(all, t.NegOnes...)
	if max := utils.MaxSlice(all); int(max) >= t.N {
		return fmt.Errorf("poly: ternary index %d out of range [0, %d)", max, t.N)
	}
	if !utils.AllDistinct(all) {
		return fmt.Errorf("poly: ternary index sets overlap")
	}
	return nil
}

// ToInt converts t to an equivalent general polynomial.
func (t *TernPoly) ToInt() *IntPoly {
	p := NewIntPoly(t.N)
	for _, i := range t.Ones {
		p.Coeffs[i] = 1
	}
	for _, i := range t.NegOnes {
		p.Coeffs[i] = -1
	}
	return p
}

// CopyNew returns an exact copy of t.
func (t *TernPoly) CopyNew() *TernPoly {
	return &TernPoly{
		N:       t.N,
		Ones:    append([]uint16(nil), t.Ones...),
		NegOnes: append([]uint16(nil), t.NegOnes...),
	}
}

// Equals reports whether t and b are identical, including index order.
func (t *TernPoly) Equals(b *TernPoly) bool {
	if t.N != b.N || len(t.Ones) != len(b.Ones) || len(t.NegOnes) != len(b.NegOnes) {
		return false
	}
	for i, v := range t.Ones {
		if b.Ones[i] != v {
			return false
		}
	}
	for i, v := range t.NegOnes {
		if b.NegOnes[i] != v {
			return false
		}
	}
	return true
}

// RandTern samples a ternary polynomial with exactly numOnes +1 and
// numNegOnes -1 coefficients by rejection sampling: random positions are
// drawn from ctx and redrawn on duplicates until the exact weights are
// reached.
func RandTern(n, numOnes, numNegOnes int, ctx *rand.Context) (*TernPoly, error) {
	if numOnes > MaxOnes || numNegOnes > MaxOnes || numOnes+numNegOnes > n {
		return nil, fmt.Errorf("poly: ternary weights (%d, %d) invalid for degree %d", numOnes, numNegOnes, n)
	}

	s := indexSampler{n: n, ctx: ctx}
	used := make([]bool, n)

	t := &TernPoly{
		N:       n,
		Ones:    make([]uint16, 0, numOnes),
		NegOnes: make([]uint16, 0, numNegOnes),
	}

	for len(t.Ones) < numOnes {
		i, err := s.next()
		if err != nil {
			return nil, err
		}
		if !used[i] {
			used[i] = true
			t.Ones = append(t.Ones, i)
		}
	}
	for len(t.NegOnes) < numNegOnes {
		i, err := s.next()
		if err != nil {
			return nil, err
		}
		if !used[i] {
			used[i] = true
			t.NegOnes = append(t.NegOnes, i)
		}
	}
	return t, nil
}

// indexSampler draws uniform indices in [0, n) from a randomness context.
// Each draw takes two random bytes masked to the next power of two;
// out-of-range values are rejected.
type indexSampler struct {
	n   int
	ctx *rand.Context
	buf []byte
}

func (s *indexSampler) next() (uint16, error) {
	mask := uint16(1)<<bits.Len16(uint16(s.n-1)) - 1
	for {
		if len(s.buf) < 2 {
			b, err := s.ctx.Generate(2 * s.n)
			if err != nil {
				return 0, err
			}
			s.buf = b
		}
		v := (uint16(s.buf[0]) | uint16(s.buf[1])<<8) & mask
		s.buf = s.buf[2:]
		if int(v) < s.n {
			return v, nil
		}
	}
}
