package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownVectors(t *testing.T) {
	for _, tc := range []struct {
		d    Digest
		want string
	}{
		{SHA1{}, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256{}, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	} {
		t.Run(tc.d.Name(), func(t *testing.T) {
			sum := tc.d.Sum([]byte("abc"))
			require.Equal(t, tc.d.Size(), len(sum))
			require.Equal(t, tc.want, hex.EncodeToString(sum))
		})
	}
}

func TestBatchedSums(t *testing.T) {
	for _, d := range []Digest{SHA1{}, SHA256{}} {
		t.Run(d.Name(), func(t *testing.T) {
			var in4 [4][]byte
			var in8 [8][]byte
			for i := range in8 {
				in8[i] = []byte{byte(i), byte(i * 3)}
				if i < 4 {
					in4[i] = in8[i]
				}
			}
			for i, sum := range d.Sum4(in4) {
				require.Equal(t, d.Sum(in4[i]), sum)
			}
			for i, sum := range d.Sum8(in8) {
				require.Equal(t, d.Sum(in8[i]), sum)
			}
		})
	}
}
