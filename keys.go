package ntru

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/FrinkGlobal/ntru/params"
	"github.com/FrinkGlobal/ntru/poly"
)

// indexBits is the packed width of one ternary index for degree n, wide
// enough for n-1 and kept in sync with params.ParamSet.IndexBits.
func indexBits(n int) int {
	return bits.Len16(uint16(n - 1))
}

// PublicKey is the public half of an NTRUEncrypt key pair: the polynomial
// h = 3*g*f^-1 mod q.
type PublicKey struct {
	Q uint16
	H *poly.IntPoly
}

// PrivateKey is the private half of an NTRUEncrypt key pair: the
// polynomial t, with the actual secret being f = 1+3t.
type PrivateKey struct {
	Q uint16
	T poly.PrivPoly
}

// KeyPair holds a matching private and public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

const privFlagProduct = 1

// Export encodes the public key into its fixed-width wire form:
// N and q as 16-bit big-endian integers followed by the packed
// coefficients of h.
func (k *PublicKey) Export() []byte {
	out := make([]byte, 4, 4+poly.EncLen(k.H.N(), k.Q))
	binary.BigEndian.PutUint16(out[0:], uint16(k.H.N()))
	binary.BigEndian.PutUint16(out[2:], k.Q)
	return append(out, k.H.ToBytes(k.Q)...)
}

// ImportPublicKey decodes a public key from its wire form.
func ImportPublicKey(data []byte) (*PublicKey, error) {
	if data == nil {
		return nil, ErrNullArgument
	}
	n, q, err := keyHeader(data)
	if err != nil {
		return nil, err
	}
	if len(data) != 4+poly.EncLen(n, q) {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidKey, len(data), 4+poly.EncLen(n, q))
	}
	h, err := poly.IntPolyFromBytes(data[4:], n, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &PublicKey{Q: q, H: h}, nil
}

// Export encodes the private key into its fixed-width wire form: N and q
// as 16-bit big-endian integers, a flags octet, then one ternary block
// for a ternary key or three for a product-form key. Each block is the
// two index-set sizes as 16-bit big-endian integers followed by the
// packed indices, ones first, byte aligned.
func (k *PrivateKey) Export() []byte {
	n := k.T.N()
	out := make([]byte, 5)
	binary.BigEndian.PutUint16(out[0:], uint16(n))
	binary.BigEndian.PutUint16(out[2:], k.Q)
	if k.T.IsProduct() {
		out[4] = privFlagProduct
		p := k.T.Prod()
		for _, f := range []*poly.TernPoly{p.F1, p.F2, p.F3} {
			out = appendTernBlock(out, f, n)
		}
		return out
	}
	return appendTernBlock(out, k.T.Tern(), n)
}

// ImportPrivateKey decodes a private key from its wire form.
func ImportPrivateKey(data []byte) (*PrivateKey, error) {
	if data == nil {
		return nil, ErrNullArgument
	}
	n, q, err := keyHeader(data)
	if err != nil {
		return nil, err
	}
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: private key too short", ErrInvalidKey)
	}
	flags := data[4]
	if flags&^privFlagProduct != 0 {
		return nil, fmt.Errorf("%w: unknown private key flags %#x", ErrInvalidKey, flags)
	}
	rest := data[5:]

	numBlocks := 1
	if flags&privFlagProduct != 0 {
		numBlocks = 3
	}
	factors := make([]*poly.TernPoly, numBlocks)
	for i := range factors {
		var f *poly.TernPoly
		if f, rest, err = parseTernBlock(rest, n); err != nil {
			return nil, err
		}
		factors[i] = f
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after private key", ErrInvalidKey, len(rest))
	}

	if flags&privFlagProduct != 0 {
		p, err := poly.NewProdPoly(n, factors[0], factors[1], factors[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return &PrivateKey{Q: q, T: poly.NewProdPriv(p)}, nil
	}
	return &PrivateKey{Q: q, T: poly.NewTernPriv(factors[0])}, nil
}

// Params returns the catalog parameter set the key pair was generated
// under, matched on the structural properties of the keys.
func (k *KeyPair) Params() (params.ParamSet, error) {
	n := k.Private.T.N()
	for _, p := range params.All() {
		if p.N() != n || p.Q() != k.Private.Q || p.Product() != k.Private.T.IsProduct() {
			continue
		}
		if k.Private.T.IsProduct() {
			f := k.Private.T.Prod()
			if len(f.F1.Ones) == p.Df1() && len(f.F2.Ones) == p.Df2() && len(f.F3.Ones) == p.Df3() {
				return p, nil
			}
		} else if len(k.Private.T.Tern().Ones) == p.Df1() {
			return p, nil
		}
	}
	return params.ParamSet{}, ErrUnknownParamSet
}

func keyHeader(data []byte) (n int, q uint16, err error) {
	if len(data) < 4 {
		return 0, 0, fmt.Errorf("%w: truncated key header", ErrInvalidKey)
	}
	n = int(binary.BigEndian.Uint16(data[0:]))
	q = binary.BigEndian.Uint16(data[2:])
	if n < 1 || n > params.MaxN {
		return 0, 0, fmt.Errorf("%w: degree %d out of range", ErrInvalidKey, n)
	}
	if q < 2 || q&(q-1) != 0 {
		return 0, 0, fmt.Errorf("%w: modulus %d is not a power of two", ErrInvalidKey, q)
	}
	return n, q, nil
}

func appendTernBlock(out []byte, t *poly.TernPoly, n int) []byte {
	var sizes [4]byte
	binary.BigEndian.PutUint16(sizes[0:], uint16(len(t.Ones)))
	binary.BigEndian.PutUint16(sizes[2:], uint16(len(t.NegOnes)))
	out = append(out, sizes[:]...)

	indices := make([]uint16, 0, len(t.Ones)+len(t.NegOnes))
	indices = append(indices, t.Ones...)
	indices = append(indices, t.NegOnes...)
	return append(out, poly.PackIndices(indices, indexBits(n))...)
}

func parseTernBlock(data []byte, n int) (*poly.TernPoly, []byte, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: truncated ternary block", ErrInvalidKey)
	}
	numOnes := int(binary.BigEndian.Uint16(data[0:]))
	numNegOnes := int(binary.BigEndian.Uint16(data[2:]))
	data = data[4:]

	bitsPerIdx := indexBits(n)
	packedLen := (bitsPerIdx*(numOnes+numNegOnes) + 7) / 8
	if len(data) < packedLen {
		return nil, nil, fmt.Errorf("%w: truncated ternary indices", ErrInvalidKey)
	}
	indices, err := poly.UnpackIndices(data[:packedLen], numOnes+numNegOnes, bitsPerIdx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	t, err := poly.NewTernPoly(n, indices[:numOnes], indices[numOnes:])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return t, data[packedLen:], nil
}
