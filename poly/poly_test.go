package poly

import (
	"fmt"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/FrinkGlobal/ntru/rand"
)

const testQ = uint16(2048)

func testContext(t *testing.T, seed string) *rand.Context {
	t.Helper()
	ctx, err := rand.InitDeterministic(rand.XOF, []byte(seed))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ctx.Release()) })
	return ctx
}

func randIntPoly(t *testing.T, n int, ctx *rand.Context) *IntPoly {
	t.Helper()
	raw, err := ctx.Generate(2 * n)
	require.NoError(t, err)
	p := NewIntPoly(n)
	for i := range p.Coeffs {
		p.Coeffs[i] = int16((uint16(raw[2*i]) | uint16(raw[2*i+1])<<8) & (testQ - 1))
	}
	return p
}

func testString(opname string, n int) string {
	return fmt.Sprintf("%s/N=%d", opname, n)
}

func TestMulTernVariantsAgree(t *testing.T) {
	ctx := testContext(t, "mult variants")
	for _, tc := range []struct{ n, ones, negOnes int }{
		{401, 113, 113},
		{439, 146, 145},
		{743, 11, 11},
		{1499, 499, 499},
	} {
		t.Run(testString("MulTern", tc.n), func(t *testing.T) {
			a := randIntPoly(t, tc.n, ctx)
			tern, err := RandTern(tc.n, tc.ones, tc.negOnes, ctx)
			require.NoError(t, err)

			ref, err := MulTern(a, tern, testQ-1)
			require.NoError(t, err)

			wide := NewIntPoly(tc.n)
			mulTernWide(wide, a, tern, testQ-1)
			require.True(t, ref.Equals(wide))

			sliced := NewIntPoly(tc.n)
			mulTernSliced(sliced, a, tern, testQ-1)
			require.True(t, ref.Equals(sliced))

			dense, err := MulInt(a, tern.ToInt(), testQ-1)
			require.NoError(t, err)
			require.True(t, ref.Equals(dense))
		})
	}
}

func TestMulProdMatchesDense(t *testing.T) {
	ctx := testContext(t, "product mult")
	for _, n := range []int{401, 743} {
		t.Run(testString("MulProd", n), func(t *testing.T) {
			a := randIntPoly(t, n, ctx)
			p, err := RandProd(n, 8, 8, 6, ctx)
			require.NoError(t, err)

			got, err := MulProd(a, p, testQ-1)
			require.NoError(t, err)

			dense, err := MulInt(a, p.ToInt(testQ-1), testQ-1)
			require.NoError(t, err)
			require.True(t, got.Equals(dense))
		})
	}
}

func TestMulDegreeMismatch(t *testing.T) {
	ctx := testContext(t, "degree mismatch")
	a := randIntPoly(t, 401, ctx)
	tern, err := RandTern(439, 10, 10, ctx)
	require.NoError(t, err)

	_, err = MulTern(a, tern, testQ-1)
	require.Error(t, err)
	_, err = MulInt(a, randIntPoly(t, 439, ctx), testQ-1)
	require.Error(t, err)
}

func TestInvert(t *testing.T) {
	ctx := testContext(t, "invert")

	check := func(t *testing.T, a PrivPoly) {
		fq, ok := Invert(a, testQ-1)
		require.True(t, ok)

		// (1+3a)*fq = fq + 3*(a*fq) must be 1 mod q.
		prod, err := MulPriv(fq, a, testQ-1)
		require.NoError(t, err)
		prod.MulFac(3)
		prod.Add(fq)

		one := NewIntPoly(a.N())
		one.Coeffs[0] = 1
		require.True(t, prod.EqualsMod(one, testQ))

		prod.ModMask(testQ - 1)
		require.True(t, prod.EqualsOne())
	}

	t.Run(testString("Ternary", 401), func(t *testing.T) {
		tern, err := RandTern(401, 113, 113, ctx)
		require.NoError(t, err)
		check(t, NewTernPriv(tern))
	})

	t.Run(testString("Product", 401), func(t *testing.T) {
		prod, err := RandProd(401, 8, 8, 6, ctx)
		require.NoError(t, err)
		check(t, NewProdPriv(prod))
	})
}

func TestInvertNonInvertible(t *testing.T) {
	tern, err := NewTernPoly(11, []uint16{3, 10}, []uint16{0, 6, 8})
	require.NoError(t, err)

	fq, ok := Invert(NewTernPriv(tern), testQ-1)
	require.False(t, ok)
	require.Nil(t, fq)
}

func TestModCenter(t *testing.T) {
	ctx := testContext(t, "mod center")
	p := randIntPoly(t, 401, ctx)
	p.ModCenter(testQ)
	for _, c := range p.Coeffs {
		require.Greater(t, int(c), -int(testQ)/2)
		require.LessOrEqual(t, int(c), int(testQ)/2)
	}
}

func TestMod3(t *testing.T) {
	p := NewIntPolyFromCoeffs([]int16{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5})
	p.Mod3()
	require.Equal(t, []int16{1, -1, 0, 1, -1, 0, 1, -1, 0, 1, -1}, p.Coeffs)
}

func TestCoeffPackingRoundTrip(t *testing.T) {
	ctx := testContext(t, "coeff packing")
	for _, n := range []int{401, 443, 1499} {
		t.Run(testString("ToBytes", n), func(t *testing.T) {
			p := randIntPoly(t, n, ctx)
			data := p.ToBytes(testQ)
			require.Len(t, data, EncLen(n, testQ))

			back, err := IntPolyFromBytes(data, n, testQ)
			require.NoError(t, err)
			require.True(t, p.Equals(back))
		})
	}

	_, err := IntPolyFromBytes(make([]byte, 3), 401, testQ)
	require.Error(t, err)
}

func TestIndexPackingRoundTrip(t *testing.T) {
	indices := []uint16{0, 1, 255, 256, 400}
	for _, bitsPerIdx := range []int{9, 11} {
		data := PackIndices(indices, bitsPerIdx)
		back, err := UnpackIndices(data, len(indices), bitsPerIdx)
		require.NoError(t, err)
		require.Equal(t, indices, back)
	}

	_, err := UnpackIndices(make([]byte, 1), 5, 9)
	require.Error(t, err)
}

func TestTernPolyValidate(t *testing.T) {
	_, err := NewTernPoly(11, []uint16{1, 2}, []uint16{2, 3})
	require.Error(t, err)
	_, err = NewTernPoly(11, []uint16{11}, nil)
	require.Error(t, err)
	_, err = NewTernPoly(11, []uint16{1, 1}, nil)
	require.Error(t, err)
}

func TestRandTernWeights(t *testing.T) {
	ctx := testContext(t, "sampler weights")
	tern, err := RandTern(401, 113, 112, ctx)
	require.NoError(t, err)
	require.NoError(t, tern.Validate())
	require.Len(t, tern.Ones, 113)
	require.Len(t, tern.NegOnes, 112)

	p := tern.ToInt()
	negOnes, zeros, ones := p.TritCounts()
	require.Equal(t, 112, negOnes)
	require.Equal(t, 401-113-112, zeros)
	require.Equal(t, 113, ones)
}

func TestRandTernDistribution(t *testing.T) {
	ctx := testContext(t, "sampler distribution")

	samples := make([]float64, 0, 64*100)
	for rep := 0; rep < 64; rep++ {
		tern, err := RandTern(401, 50, 50, ctx)
		require.NoError(t, err)
		for _, i := range tern.Ones {
			samples = append(samples, float64(i))
		}
		for _, i := range tern.NegOnes {
			samples = append(samples, float64(i))
		}
	}

	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	// Uniform indices over [0, 401) have mean 200; allow a wide slack for
	// the fixed seed.
	require.InDelta(t, 200, mean, 15)
}
