package ntru

import (
	"fmt"

	"github.com/FrinkGlobal/ntru/igf"
	"github.com/FrinkGlobal/ntru/params"
	"github.com/FrinkGlobal/ntru/poly"
	"github.com/FrinkGlobal/ntru/rand"
)

// The SVES bit-to-trit mapping: each group of three message bits selects
// one of eight trit pairs. The ninth pair (-1,-1) is unused; decoding it
// signals a corrupted or foreign ciphertext.
var (
	coeff1Table = [8]int16{0, 0, 0, 1, 1, 1, -1, -1}
	coeff2Table = [8]int16{0, 1, -1, 0, 1, -1, 0, 1}

	// tritPairTable inverts the pair (c1,c2), indexed by (c1+1)*3+(c2+1).
	// -1 marks the invalid pair.
	tritPairTable = [9]int8{-1, 6, 7, 2, 0, 1, 5, 3, 4}
)

// Encrypt encrypts msg under the public key with the P1363.1 SVES
// transform: the message is padded with db random bits and a length
// octet, zero-extended to full capacity, mapped to trits and masked; the
// blinding polynomial is derived from the padded message and the public
// key, so the ciphertext commits to both. Randomness is drawn from ctx
// for the padding bits only.
func Encrypt(msg []byte, pub *PublicKey, p params.ParamSet, ctx *rand.Context) ([]byte, error) {
	if msg == nil || pub == nil || ctx == nil {
		return nil, ErrNullArgument
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	if pub.H.N() != p.N() || pub.Q != p.Q() {
		return nil, fmt.Errorf("%w: public key does not match %s", ErrInvalidKey, p.Name())
	}
	if len(msg) > p.MaxMsgLen() {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrMessageTooLong, len(msg), p.MaxMsgLen())
	}

	mask := p.ModMask()
	dbBytes := p.Db() / 8
	hTrunc := pub.H.ToBytes(p.Q())[:p.PkLen()/8]

	// The padding bits are redrawn until the masked message satisfies the
	// dm0 minimum-symbol-count policy.
	for {
		b, err := ctx.Generate(dbBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPrng, err)
		}

		M := make([]byte, dbBytes+1+p.MaxMsgLen())
		copy(M, b)
		M[dbBytes] = byte(len(msg))
		copy(M[dbBytes+1:], msg)

		r := genBlind(blindSeed(p, msg, b, hTrunc), p)
		R, err := poly.MulPriv(pub.H, r, mask)
		if err != nil {
			// Sanity check, h and r share the parameter degree.
			panic(err)
		}

		mPrime := toTrits(M, p.N())
		mPrime.Add(genMask(R, p))
		mPrime.Mod3()

		negOnes, zeros, ones := mPrime.TritCounts()
		if negOnes < p.Dm0() || zeros < p.Dm0() || ones < p.Dm0() {
			continue
		}

		e := R
		e.Add(mPrime)
		e.ModMask(mask)
		return e.ToBytes(p.Q()), nil
	}
}

// Decrypt inverts the SVES transform and validates the padding. The
// blinding polynomial is re-derived from the recovered message and
// checked against the ciphertext, so a tampered ciphertext or a
// mismatched public key fails with ErrMd0Violation rather than yielding
// a wrong plaintext.
func Decrypt(enc []byte, kp *KeyPair, p params.ParamSet) ([]byte, error) {
	if enc == nil || kp == nil || kp.Private == nil || kp.Public == nil {
		return nil, ErrNullArgument
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	if kp.Private.T.N() != p.N() || kp.Private.Q != p.Q() || kp.Public.H.N() != p.N() || kp.Public.Q != p.Q() {
		return nil, fmt.Errorf("%w: key pair does not match %s", ErrInvalidKey, p.Name())
	}
	if len(enc) != p.EncLen() {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, want %d", ErrInvalidEncoding, len(enc), p.EncLen())
	}

	mask := p.ModMask()
	e, err := poly.IntPolyFromBytes(enc, p.N(), p.Q())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	// a = e*(1+3t) mod q, centered, reduced mod 3, recovers the masked
	// message trits.
	a, err := poly.MulPriv(e, kp.Private.T, mask)
	if err != nil {
		// Sanity check, e and t share the parameter degree.
		panic(err)
	}
	a.ModCenter(p.Q())
	a.MulFac(3)
	a.Add(e)
	a.ModCenter(p.Q())
	a.Mod3()
	mPrime := a

	negOnes, zeros, ones := mPrime.TritCounts()
	if negOnes < p.Dm0() || zeros < p.Dm0() || ones < p.Dm0() {
		return nil, ErrMd0Violation
	}

	cR := e.CopyNew()
	cR.Sub(mPrime)
	cR.ModMask(mask)

	cM := mPrime.CopyNew()
	cM.Sub(genMask(cR, p))
	cM.Mod3()

	dbBytes := p.Db() / 8
	M, err := fromTrits(cM, dbBytes+1+p.MaxMsgLen())
	if err != nil {
		return nil, err
	}

	b := M[:dbBytes]
	msgLen := int(M[dbBytes])
	if msgLen > p.MaxMsgLen() {
		return nil, fmt.Errorf("%w: declared length %d, maximum is %d", ErrInvalidMaxLength, msgLen, p.MaxMsgLen())
	}
	msg := M[dbBytes+1 : dbBytes+1+msgLen]
	for _, pad := range M[dbBytes+1+msgLen:] {
		if pad != 0 {
			return nil, ErrNoZeroPad
		}
	}

	// Re-derive the blinding polynomial from the candidate message and
	// require that it reproduces the ciphertext remainder.
	hTrunc := kp.Public.H.ToBytes(p.Q())[:p.PkLen()/8]
	r := genBlind(blindSeed(p, msg, b, hTrunc), p)
	cRPrime, err := poly.MulPriv(kp.Public.H, r, mask)
	if err != nil {
		// Sanity check, h and r share the parameter degree.
		panic(err)
	}
	if !cRPrime.Equals(cR) {
		return nil, ErrMd0Violation
	}
	return msg, nil
}

// blindSeed assembles the seed of the blinding-polynomial derivation:
// OID || msg || b || truncated public key.
func blindSeed(p params.ParamSet, msg, b, hTrunc []byte) []byte {
	oid := p.OID()
	seed := make([]byte, 0, len(oid)+len(msg)+len(b)+len(hTrunc))
	seed = append(seed, oid[:]...)
	seed = append(seed, msg...)
	seed = append(seed, b...)
	return append(seed, hTrunc...)
}

// genBlind derives the blinding polynomial r from the seed with the
// index generation function, product-form for product parameter sets.
func genBlind(seed []byte, p params.ParamSet) poly.PrivPoly {
	g := igf.New(p.N(), p.C(), p.Hash(), p.MinCallsR(), p.HashSeed(), seed)
	if !p.Product() {
		return poly.NewTernPriv(genTernIGF(g, p.N(), p.Df1()))
	}
	f1 := genTernIGF(g, p.N(), p.Df1())
	f2 := genTernIGF(g, p.N(), p.Df2())
	f3 := genTernIGF(g, p.N(), p.Df3())
	r, err := poly.NewProdPoly(p.N(), f1, f2, f3)
	if err != nil {
		// Sanity check, all factors share the parameter degree.
		panic(err)
	}
	return poly.NewProdPriv(r)
}

// genTernIGF draws a ternary polynomial with df ones and df negative
// ones from an index stream, negative ones first, skipping duplicates.
func genTernIGF(g *igf.Generator, n, df int) *poly.TernPoly {
	t := &poly.TernPoly{
		N:       n,
		Ones:    make([]uint16, 0, df),
		NegOnes: make([]uint16, 0, df),
	}
	used := make([]bool, n)
	for len(t.NegOnes) < df {
		if i := g.Next(); !used[i] {
			used[i] = true
			t.NegOnes = append(t.NegOnes, uint16(i))
		}
	}
	for len(t.Ones) < df {
		if i := g.Next(); !used[i] {
			used[i] = true
			t.Ones = append(t.Ones, uint16(i))
		}
	}
	return t
}

// genMask expands R into a pseudorandom trit polynomial with MGF-TP-1:
// the two low bits of every coefficient of R seed a digest stream, and
// each stream byte below 243 contributes five trits.
func genMask(R *poly.IntPoly, p params.ParamSet) *poly.IntPoly {
	g := igf.New(p.N(), p.C(), p.Hash(), p.MinCallsMask(), p.HashSeed(), R.ToBytes4())
	m := poly.NewIntPoly(p.N())
	i := 0
	for i < p.N() {
		o := g.NextByte()
		if o >= 243 {
			continue
		}
		for j := 0; j < 5 && i < p.N(); j++ {
			t := int16(o % 3)
			o /= 3
			if t == 2 {
				t = -1
			}
			m.Coeffs[i] = t
			i++
		}
	}
	return m
}

// toTrits maps the bytes of M to trit coefficients, three bits at a time
// from the least significant bit, two trits per group. A partial final
// group is zero-extended; coefficients past it stay zero.
func toTrits(M []byte, n int) *poly.IntPoly {
	m := poly.NewIntPoly(n)
	numGroups := (len(M)*8 + 2) / 3
	if 2*numGroups > n {
		// Sanity check, the message capacity bounds the group count.
		panic("ntru: message overflows the trit capacity")
	}
	for i := 0; i < numGroups; i++ {
		var v byte
		for b := 0; b < 3; b++ {
			if bit := 3*i + b; bit < len(M)*8 {
				v |= M[bit>>3] >> (bit & 7) & 1 << b
			}
		}
		m.Coeffs[2*i] = coeff1Table[v]
		m.Coeffs[2*i+1] = coeff2Table[v]
	}
	return m
}

// fromTrits is the exact inverse of toTrits for numBytes output bytes.
// It fails with ErrInvalidEncoding on the unused trit pair.
func fromTrits(m *poly.IntPoly, numBytes int) ([]byte, error) {
	out := make([]byte, numBytes)
	numGroups := (numBytes*8 + 2) / 3
	for i := 0; i < numGroups; i++ {
		c1 := m.Coeffs[2*i]
		c2 := m.Coeffs[2*i+1]
		v := tritPairTable[(c1+1)*3+(c2+1)]
		if v < 0 {
			return nil, fmt.Errorf("%w: invalid trit pair", ErrInvalidEncoding)
		}
		for b := 0; b < 3; b++ {
			if bit := 3*i + b; v>>b&1 == 1 && bit < numBytes*8 {
				out[bit>>3] |= 1 << (bit & 7)
			}
		}
	}
	return out, nil
}
