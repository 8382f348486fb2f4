// Package rand provides the randomness backends feeding key generation
// and encryption. A Backend is acquired through Init or
// InitDeterministic, yielding a Context that generates bytes and must be
// released exactly once on every exit path.
package rand

import (
	"fmt"
	"io"
)

// Backend creates randomness streams. Every Init call must return
// independent state.
type Backend interface {
	// Name identifies the backend.
	Name() string
	// Deterministic reports whether identical seeds yield identical
	// streams.
	Deterministic() bool
	// Init returns fresh generation state. seed must be nil for
	// non-deterministic backends and non-empty for deterministic ones.
	Init(seed []byte) (io.Reader, error)
}

// Default is the backend used when callers have no reason to pick one.
// It draws from OS entropy.
var Default Backend = Crypto

// Context owns an acquired randomness stream. It is exclusively owned by
// its creator and not safe for concurrent use, since generation is
// stateful.
type Context struct {
	backend  Backend
	seed     []byte
	stream   io.Reader
	released bool
}

// Init acquires a context from a non-deterministic backend.
func Init(b Backend) (*Context, error) {
	if b.Deterministic() {
		return nil, fmt.Errorf("rand: backend %s requires a seed, use InitDeterministic", b.Name())
	}
	stream, err := b.Init(nil)
	if err != nil {
		return nil, err
	}
	return &Context{backend: b, stream: stream}, nil
}

// InitDeterministic acquires a context from a deterministic backend.
// Identical seeds yield identical byte streams.
func InitDeterministic(b Backend, seed []byte) (*Context, error) {
	if !b.Deterministic() {
		return nil, fmt.Errorf("rand: backend %s does not accept a seed", b.Name())
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("rand: deterministic backend %s needs a non-empty seed", b.Name())
	}
	stream, err := b.Init(seed)
	if err != nil {
		return nil, err
	}
	return &Context{backend: b, seed: append([]byte(nil), seed...), stream: stream}, nil
}

// Generate returns length fresh random bytes.
func (c *Context) Generate(length int) ([]byte, error) {
	if c.released {
		return nil, fmt.Errorf("rand: context already released")
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(c.stream, out); err != nil {
		return nil, fmt.Errorf("rand: %s generation failed: %w", c.backend.Name(), err)
	}
	return out, nil
}

// Seed returns a copy of the deterministic seed, nil for
// non-deterministic contexts.
func (c *Context) Seed() []byte {
	return append([]byte(nil), c.seed...)
}

// Backend returns the backend this context was acquired from.
func (c *Context) Backend() Backend {
	return c.backend
}

// Release destroys the context. Releasing twice is an error.
func (c *Context) Release() error {
	if c.released {
		return fmt.Errorf("rand: context already released")
	}
	c.released = true
	for i := range c.seed {
		c.seed[i] = 0
	}
	c.seed = nil
	c.stream = nil
	return nil
}
