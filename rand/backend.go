package rand

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/FrinkGlobal/ntru/digest"
	"github.com/FrinkGlobal/ntru/igf"
)

// Crypto draws from the operating system entropy source.
var Crypto Backend = cryptoBackend{}

type cryptoBackend struct{}

func (cryptoBackend) Name() string        { return "crypto" }
func (cryptoBackend) Deterministic() bool { return false }

func (cryptoBackend) Init(seed []byte) (io.Reader, error) {
	if seed != nil {
		return nil, fmt.Errorf("rand: crypto backend does not accept a seed")
	}
	return cryptorand.Reader, nil
}

// XOF expands the seed with the blake2b extendable output function. It is
// the preferred deterministic backend.
var XOF Backend = xofBackend{}

type xofBackend struct{}

func (xofBackend) Name() string        { return "xof" }
func (xofBackend) Deterministic() bool { return true }

func (xofBackend) Init(seed []byte) (io.Reader, error) {
	x, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}
	if _, err := x.Write(seed); err != nil {
		return nil, err
	}
	return x, nil
}

// IGF2 expands the seed with the index generation function over SHA-256,
// configured to emit full bytes. Slower than XOF but shares its machinery
// with the blinding-polynomial derivation.
var IGF2 Backend = igf2Backend{}

type igf2Backend struct{}

func (igf2Backend) Name() string        { return "igf2" }
func (igf2Backend) Deterministic() bool { return true }

func (igf2Backend) Init(seed []byte) (io.Reader, error) {
	return &igfReader{gen: igf.New(256, 8, digest.SHA256{}, 1, true, seed)}, nil
}

type igfReader struct {
	gen *igf.Generator
}

func (r *igfReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.gen.NextByte()
	}
	return len(p), nil
}
