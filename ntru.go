// Package ntru implements the NTRUEncrypt public-key encryption scheme
// of IEEE P1363.1 (SVES) over the ring Z[x]/(x^N-1): key generation,
// encryption and decryption under the named parameter sets of the params
// package.
//
// The library is organized in focused sub-packages: params holds the
// immutable parameter catalog, poly the polynomial representations and
// ring arithmetic, rand the pluggable randomness backends, igf the
// digest-driven index generation function and digest the hash
// abstraction. This root package ties them together into the scheme
// operations and the fixed-width key wire format.
//
// All operations are synchronous and allocate no shared mutable state;
// distinct randomness contexts may be used from distinct goroutines, a
// single context may not.
package ntru
