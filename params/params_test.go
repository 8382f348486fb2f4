package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	sets := All()
	require.Len(t, sets, 18)

	oids := map[[OIDLen]byte]string{}
	for _, p := range sets {
		t.Run(p.Name(), func(t *testing.T) {
			require.NoError(t, p.Validate())
			require.Equal(t, uint16(0), p.Q()&(p.Q()-1))
			if !p.Product() {
				require.Zero(t, p.Df2())
				require.Zero(t, p.Df3())
			}
			prev, dup := oids[p.OID()]
			require.False(t, dup, "OID shared with %s", prev)
			oids[p.OID()] = p.Name()
		})
	}
}

func TestLookup(t *testing.T) {
	for _, want := range All() {
		byName, ok := ByName(want.Name())
		require.True(t, ok)
		require.True(t, byName.Equal(want))

		byOID, ok := ByOID(want.OID())
		require.True(t, ok)
		require.True(t, byOID.Equal(want))
	}

	_, ok := ByName("EES0EP0")
	require.False(t, ok)
	_, ok = ByOID([OIDLen]byte{255, 255, 255})
	require.False(t, ok)
}

func TestDerivedLengths(t *testing.T) {
	p := EES401EP1
	require.Equal(t, 11, p.CoeffBits())
	require.Equal(t, 9, p.IndexBits())
	require.Equal(t, 60, p.MaxMsgLen())
	require.Equal(t, 552, p.EncLen())
	require.Equal(t, 556, p.PublicLen())
	require.Equal(t, 264, p.PrivateLen())

	for _, p := range All() {
		require.GreaterOrEqual(t, p.MaxMsgLen(), 1, p.Name())
		require.LessOrEqual(t, p.MaxMsgLen(), 255, p.Name())
	}
}

func TestEqual(t *testing.T) {
	require.True(t, EES401EP1.Equal(EES401EP1))
	require.False(t, EES401EP1.Equal(EES401EP2))

	copied, ok := ByName(EES743EP1.Name())
	require.True(t, ok)
	require.True(t, copied.Equal(EES743EP1))
}

func TestValidateRejectsInconsistency(t *testing.T) {
	broken := EES401EP1
	broken.q = 2047
	require.Error(t, broken.Validate())

	broken = EES401EP1
	broken.df2 = 8
	require.Error(t, broken.Validate())

	broken = EES401EP2
	broken.df3 = 0
	require.Error(t, broken.Validate())

	broken = EES401EP1
	broken.hash = nil
	require.Error(t, broken.Validate())
}

func TestDefaults(t *testing.T) {
	for _, p := range []ParamSet{Default112Bits, Default128Bits, Default192Bits, Default256Bits} {
		_, ok := ByName(p.Name())
		require.True(t, ok)
	}
}
