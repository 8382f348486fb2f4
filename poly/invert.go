package poly

// Invert computes the inverse of 1+3a modulo modMask+1, which must be a
// power of two. It returns ok=false when the polynomial is not
// invertible; this happens for a small fraction of samples and callers
// are expected to resample and retry rather than treat it as exceptional.
//
// The algorithm is the almost-inverse of "Almost Inverses and Fast NTRU
// Key Generation": an inverse modulo 2 obtained over GF(2), then lifted
// to q with one ring multiplication per precision-doubling round.
func Invert(a PrivPoly, modMask uint16) (fq *IntPoly, ok bool) {
	n := a.N()
	q := uint32(modMask) + 1

	fq, ok = invertMod2(a, n)
	if !ok {
		return nil, false
	}

	// Hensel lifting: fq is the inverse of f=1+3a mod v; each round
	// fq <- fq*(2 - f*fq) doubles the precision. v is capped at q since
	// reductions modulo the smaller power of two commute.
	for v := uint32(2); v < q; {
		v *= v
		if v > q {
			v = q
		}
		m := uint16(v - 1)

		// f*fq = fq + 3*(a*fq)
		ffq, err := MulPriv(fq, a, m)
		if err != nil {
			// Sanity check, fq and a share one N by construction.
			panic(err)
		}
		ffq.MulFac(3)
		ffq.Add(fq)
		ffq.ModMask(m)

		// temp = 2 - f*fq
		temp := NewIntPoly(n)
		for i, c := range ffq.Coeffs {
			temp.Coeffs[i] = -c
		}
		temp.Coeffs[0] += 2
		temp.ModMask(m)

		if fq, err = MulInt(fq, temp, m); err != nil {
			// Sanity check, same degree on both operands.
			panic(err)
		}
	}

	fq.ModMask(modMask)
	return fq, true
}

// invertMod2 computes the inverse of f=1+3a over GF(2)[x]/(x^N-1) with
// the almost-inverse algorithm. The working polynomials have one
// coefficient of headroom for x^N-1 itself.
func invertMod2(a PrivPoly, n int) (*IntPoly, bool) {
	// f = 1+3a mod 2, coefficientwise parity.
	ag := a.ToInt(1)
	f := make([]int16, n+1)
	copy(f, ag.Coeffs)
	f[0] = (f[0] + 1) & 1

	// g = x^N-1 mod 2
	g := make([]int16, n+1)
	g[0] = 1
	g[n] = 1

	b := make([]int16, n+1)
	b[0] = 1
	c := make([]int16, n+1)

	k := 0
	for {
		for f[0] == 0 {
			// f /= x, c *= x
			for i := 1; i <= n; i++ {
				f[i-1] = f[i]
			}
			f[n] = 0
			for i := n; i >= 1; i-- {
				c[i] = c[i-1]
			}
			c[0] = 0
			k++
			if isZeroMod2(f) {
				return nil, false
			}
		}
		if isOneMod2(f) {
			break
		}
		if degMod2(f) < degMod2(g) {
			f, g = g, f
			b, c = c, b
		}
		xorInto(f, g)
		xorInto(b, c)
	}

	if b[n] != 0 {
		return nil, false
	}

	// Inverse mod 2 is b*x^-k: rotate b down by k modulo x^N-1.
	fq := NewIntPoly(n)
	k %= n
	for i := n - 1; i >= 0; i-- {
		j := i - k
		if j < 0 {
			j += n
		}
		fq.Coeffs[j] = b[i]
	}
	return fq, true
}

func isZeroMod2(p []int16) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func isOneMod2(p []int16) bool {
	for _, c := range p[1:] {
		if c != 0 {
			return false
		}
	}
	return p[0] == 1
}

func degMod2(p []int16) int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

func xorInto(dst, src []int16) {
	for i, c := range src {
		dst[i] ^= c
	}
}
