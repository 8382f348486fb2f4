package rand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCryptoBackend(t *testing.T) {
	require.False(t, Crypto.Deterministic())

	ctx, err := Init(Crypto)
	require.NoError(t, err)
	defer func() { require.NoError(t, ctx.Release()) }()

	a, err := ctx.Generate(64)
	require.NoError(t, err)
	require.Len(t, a, 64)

	b, err := ctx.Generate(64)
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	require.Nil(t, ctx.Seed())
}

func TestDeterministicBackends(t *testing.T) {
	for _, backend := range []Backend{XOF, IGF2} {
		t.Run(backend.Name(), func(t *testing.T) {
			require.True(t, backend.Deterministic())

			a, err := InitDeterministic(backend, []byte("seed"))
			require.NoError(t, err)
			b, err := InitDeterministic(backend, []byte("seed"))
			require.NoError(t, err)
			c, err := InitDeterministic(backend, []byte("other seed"))
			require.NoError(t, err)

			streamA, err := a.Generate(256)
			require.NoError(t, err)
			streamB, err := b.Generate(256)
			require.NoError(t, err)
			streamC, err := c.Generate(256)
			require.NoError(t, err)

			require.Equal(t, streamA, streamB)
			require.NotEqual(t, streamA, streamC)
			require.Equal(t, []byte("seed"), a.Seed())

			require.NoError(t, a.Release())
			require.NoError(t, b.Release())
			require.NoError(t, c.Release())
		})
	}
}

func TestBackendSeedMismatch(t *testing.T) {
	_, err := Init(XOF)
	require.Error(t, err)
	_, err = InitDeterministic(Crypto, []byte("seed"))
	require.Error(t, err)
	_, err = InitDeterministic(XOF, nil)
	require.Error(t, err)
}

func TestReleaseSemantics(t *testing.T) {
	ctx, err := InitDeterministic(XOF, []byte("release"))
	require.NoError(t, err)

	require.NoError(t, ctx.Release())
	require.Error(t, ctx.Release())

	_, err = ctx.Generate(1)
	require.Error(t, err)
}

func TestDefaultBackend(t *testing.T) {
	require.Equal(t, Crypto, Default)
}
