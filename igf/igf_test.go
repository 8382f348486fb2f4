package igf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FrinkGlobal/ntru/digest"
)

func TestNextRange(t *testing.T) {
	g := New(401, 11, digest.SHA1{}, 32, true, []byte("range seed"))
	for i := 0; i < 4096; i++ {
		v := g.Next()
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 401)
	}
}

func TestDeterminism(t *testing.T) {
	a := New(677, 11, digest.SHA256{}, 27, true, []byte("seed"))
	b := New(677, 11, digest.SHA256{}, 27, true, []byte("seed"))
	for i := 0; i < 2048; i++ {
		require.Equal(t, a.Next(), b.Next())
	}

	c := New(677, 11, digest.SHA256{}, 27, true, []byte("another seed"))
	same := true
	for i := 0; i < 64; i++ {
		if a.Next() != c.Next() {
			same = false
		}
	}
	require.False(t, same)
}

func TestHashSeedChangesStream(t *testing.T) {
	seed := []byte("hash seed flag")
	hashed := New(256, 8, digest.SHA256{}, 1, true, seed)
	raw := New(256, 8, digest.SHA256{}, 1, false, seed)

	same := true
	for i := 0; i < 64; i++ {
		if hashed.NextByte() != raw.NextByte() {
			same = false
		}
	}
	require.False(t, same)
}

func TestNextByteMatchesDigestStream(t *testing.T) {
	// With c=8 and n=256 nothing is ever rejected, so NextByte and Next
	// walk the same stream.
	seed := []byte("byte stream")
	byByte := New(256, 8, digest.SHA256{}, 1, true, seed)
	byIndex := New(256, 8, digest.SHA256{}, 1, true, seed)
	for i := 0; i < 512; i++ {
		require.Equal(t, int(byByte.NextByte()), byIndex.Next())
	}
}

func TestMinCallsPrefix(t *testing.T) {
	// The warm-up call count affects readiness, not the stream content.
	seed := []byte("warm up")
	small := New(401, 11, digest.SHA1{}, 1, true, seed)
	large := New(401, 11, digest.SHA1{}, 32, true, seed)
	for i := 0; i < 1024; i++ {
		require.Equal(t, small.Next(), large.Next())
	}
}
