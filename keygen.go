package ntru

import (
	"fmt"

	"github.com/FrinkGlobal/ntru/params"
	"github.com/FrinkGlobal/ntru/poly"
	"github.com/FrinkGlobal/ntru/rand"
)

// GenerateKeyPair generates a fresh key pair under the given parameter
// set, drawing all randomness from ctx. The private polynomial t is
// resampled until 1+3t is invertible modulo q; non-invertibility is rare
// and the retry loop is unbounded.
func GenerateKeyPair(p params.ParamSet, ctx *rand.Context) (*KeyPair, error) {
	priv, fq, err := generatePrivate(p, ctx)
	if err != nil {
		return nil, err
	}
	pub, err := generatePublic(p, fq, ctx)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: pub}, nil
}

// GenerateMultiKeyPair generates one private key and num public keys for
// it, each with an independently sampled g. A ciphertext produced under
// one of the public keys decrypts only with that public key alongside
// the private key; the others fail the padding check.
func GenerateMultiKeyPair(p params.ParamSet, ctx *rand.Context, num int) (*PrivateKey, []*PublicKey, error) {
	if num < 1 {
		return nil, nil, fmt.Errorf("%w: multi-key count %d", ErrInvalidParam, num)
	}
	priv, fq, err := generatePrivate(p, ctx)
	if err != nil {
		return nil, nil, err
	}
	pubs := make([]*PublicKey, num)
	for i := range pubs {
		if pubs[i], err = generatePublic(p, fq, ctx); err != nil {
			return nil, nil, err
		}
	}
	return priv, pubs, nil
}

func generatePrivate(p params.ParamSet, ctx *rand.Context) (*PrivateKey, *poly.IntPoly, error) {
	if ctx == nil {
		return nil, nil, ErrNullArgument
	}
	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	for {
		var t poly.PrivPoly
		if p.Product() {
			f, err := poly.RandProd(p.N(), p.Df1(), p.Df2(), p.Df3(), ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrPrng, err)
			}
			t = poly.NewProdPriv(f)
		} else {
			f, err := poly.RandTern(p.N(), p.Df1(), p.Df1(), ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrPrng, err)
			}
			t = poly.NewTernPriv(f)
		}
		if fq, ok := poly.Invert(t, p.ModMask()); ok {
			return &PrivateKey{Q: p.Q(), T: t}, fq, nil
		}
	}
}

// generatePublic samples g and forms h = 3*g*fq mod q. g carries dg+1
// ones and dg negative ones, so that g(1) = 1.
func generatePublic(p params.ParamSet, fq *poly.IntPoly, ctx *rand.Context) (*PublicKey, error) {
	g, err := poly.RandTern(p.N(), p.Dg()+1, p.Dg(), ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrng, err)
	}
	h, err := poly.MulTern(fq, g, p.ModMask())
	if err != nil {
		// Sanity check, fq and g share the parameter degree.
		panic(err)
	}
	h.MulFac(3)
	h.ModMask(p.ModMask())
	return &PublicKey{Q: p.Q(), H: h}, nil
}
