// Package params provides the catalog of named NTRUEncrypt parameter sets.
// The sets are the IEEE P1363.1 ones; they trade security level, key size
// and speed. Use the Default* aliases unless a specific set is required.
package params

import (
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"

	"github.com/FrinkGlobal/ntru/digest"
)

// MaxN is the largest ring degree across all parameter sets.
const MaxN = 1499

// MaxOnes bounds the size of the index sets of any sampled ternary
// polynomial, max(df1, df2, df3, dg) over the catalog.
const MaxOnes = 499

// OIDLen is the length of a parameter-set object identifier.
const OIDLen = 3

// ParamSet is an immutable set of NTRUEncrypt parameters. Its fields are
// private; instances come from the catalog of this package and are safe to
// copy and share.
type ParamSet struct {
	name         string
	n            uint16
	q            uint16
	product      bool
	df1          uint16
	df2          uint16
	df3          uint16
	dg           uint16
	dm0          uint16
	db           uint16
	c            uint16
	minCallsR    uint16
	minCallsMask uint16
	hashSeed     bool
	oid          [OIDLen]byte
	hash         digest.Digest
	pkLen        uint16
}

// Name returns the name of the parameter set, e.g. "EES401EP1".
func (p ParamSet) Name() string { return p.name }

// N returns the number of polynomial coefficients.
func (p ParamSet) N() int { return int(p.n) }

// Q returns the big modulus. It is always a power of two.
func (p ParamSet) Q() uint16 { return p.q }

// ModMask returns q-1, the bitwise reduction mask modulo q.
func (p ParamSet) ModMask() uint16 { return p.q - 1 }

// Product reports whether private keys use the product form f1*f2+f3.
func (p ParamSet) Product() bool { return p.product }

// Df1 returns the number of ones in the private polynomial f1 (product
// form) or f (ternary form).
func (p ParamSet) Df1() int { return int(p.df1) }

// Df2 returns the number of ones in f2. Zero for non-product sets.
func (p ParamSet) Df2() int { return int(p.df2) }

// Df3 returns the number of ones in f3. Zero for non-product sets.
func (p ParamSet) Df3() int { return int(p.df3) }

// Dg returns the weight parameter of the polynomial g sampled during key
// generation.
func (p ParamSet) Dg() int { return int(p.dg) }

// Dm0 returns the minimum acceptable number of -1s, 0s and 1s in the
// masked message polynomial.
func (p ParamSet) Dm0() int { return int(p.dm0) }

// Db returns the number of random bits prepended to the message.
func (p ParamSet) Db() int { return int(p.db) }

// C returns the bit-extraction width of the index generation function.
func (p ParamSet) C() int { return int(p.c) }

// MinCallsR returns the minimum number of digest calls made by the index
// generation function when deriving the blinding polynomial.
func (p ParamSet) MinCallsR() int { return int(p.minCallsR) }

// MinCallsMask returns the minimum number of digest calls made when
// generating the masking polynomial.
func (p ParamSet) MinCallsMask() int { return int(p.minCallsMask) }

// HashSeed reports whether seeds are hashed before use in the mask and
// index generation functions.
func (p ParamSet) HashSeed() bool { return p.hashSeed }

// OID returns the three bytes uniquely identifying the parameter set.
func (p ParamSet) OID() [OIDLen]byte { return p.oid }

// Hash returns the digest of the parameter set.
func (p ParamSet) Hash() digest.Digest { return p.hash }

// HashLen returns the output length of the digest in bytes.
func (p ParamSet) HashLen() int { return p.hash.Size() }

// PkLen returns the number of bits of the public key that are folded into
// the blinding-polynomial seed. It need not be octet-aligned; consumers
// truncate to whole octets.
func (p ParamSet) PkLen() int { return int(p.pkLen) }

// CoeffBits returns the number of bits needed to store one coefficient
// modulo q.
func (p ParamSet) CoeffBits() int { return bits.Len16(p.q - 1) }

// IndexBits returns the number of bits one packed ternary index occupies in
// an exported private key.
func (p ParamSet) IndexBits() int { return bits.Len16(p.n - 1) }

// MaxMsgLen returns the maximum plaintext length in bytes.
func (p ParamSet) MaxMsgLen() int {
	return int(p.n)/2*3/8 - 1 - int(p.db)/8
}

// EncLen returns the ciphertext length in bytes.
func (p ParamSet) EncLen() int {
	return (int(p.n)*p.CoeffBits() + 7) / 8
}

// PublicLen returns the exported public key length in bytes.
func (p ParamSet) PublicLen() int {
	return 4 + p.EncLen()
}

// PrivateLen returns the exported private key length in bytes.
func (p ParamSet) PrivateLen() int {
	bitsPerIdx := p.IndexBits()
	blockLen := func(df int) int {
		return 4 + (bitsPerIdx*2*df+7)/8
	}
	if p.product {
		return 5 + blockLen(p.Df1()) + blockLen(p.Df2()) + blockLen(p.Df3())
	}
	return 5 + blockLen(p.Df1())
}

// Validate checks the internal consistency of the parameter set.
func (p ParamSet) Validate() error {
	switch {
	case p.n == 0 || p.n > MaxN:
		return fmt.Errorf("params: N=%d out of range [1, %d]", p.n, MaxN)
	case p.q < 2 || p.q&(p.q-1) != 0:
		return fmt.Errorf("params: q=%d is not a power of two", p.q)
	case !p.product && (p.df2 != 0 || p.df3 != 0):
		return fmt.Errorf("params: non-product set %s has df2=%d df3=%d", p.name, p.df2, p.df3)
	case p.product && (p.df2 == 0 || p.df3 == 0):
		return fmt.Errorf("params: product set %s has zero df2 or df3", p.name)
	case p.dg > MaxOnes || p.df1 > MaxOnes:
		return fmt.Errorf("params: %s exceeds the maximum index-set size %d", p.name, MaxOnes)
	case 1<<p.c < int(p.n):
		return fmt.Errorf("params: %s has 2^c < N", p.name)
	case p.db%8 != 0:
		return fmt.Errorf("params: %s has non-octet db", p.name)
	case p.MaxMsgLen() > 255:
		return fmt.Errorf("params: %s maximum message length exceeds one octet", p.name)
	case p.hash == nil:
		return fmt.Errorf("params: %s has no digest", p.name)
	}
	return nil
}

// Equal reports whether p and other describe the same parameter set.
func (p ParamSet) Equal(other ParamSet) bool {
	return cmp.Equal(p, other,
		cmp.AllowUnexported(ParamSet{}),
		cmp.Comparer(func(a, b digest.Digest) bool {
			if a == nil || b == nil {
				return a == nil && b == nil
			}
			return a.Name() == b.Name()
		}))
}

// String implements fmt.Stringer.
func (p ParamSet) String() string {
	return fmt.Sprintf("%s (N=%d, q=%d)", p.name, p.n, p.q)
}
