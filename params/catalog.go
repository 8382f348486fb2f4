package params

import (
	"github.com/FrinkGlobal/ntru/digest"
	"github.com/FrinkGlobal/ntru/utils"
)

var (
	sha1   = digest.SHA1{}
	sha256 = digest.SHA256{}
)

// EES401EP1 is an IEEE P1363.1 parameter set that gives 112 bits of
// security and is optimized for key size.
var EES401EP1 = ParamSet{
	name: "EES401EP1", n: 401, q: 2048,
	df1: 113, dg: 133, dm0: 113, db: 112, c: 11,
	minCallsR: 32, minCallsMask: 9, hashSeed: true,
	oid: [OIDLen]byte{0, 2, 4}, hash: sha1, pkLen: 114,
}

// EES449EP1 is an IEEE P1363.1 parameter set that gives 128 bits of
// security and is optimized for key size.
var EES449EP1 = ParamSet{
	name: "EES449EP1", n: 449, q: 2048,
	df1: 134, dg: 149, dm0: 134, db: 128, c: 9,
	minCallsR: 31, minCallsMask: 9, hashSeed: true,
	oid: [OIDLen]byte{0, 3, 3}, hash: sha1, pkLen: 128,
}

// EES677EP1 is an IEEE P1363.1 parameter set that gives 192 bits of
// security and is optimized for key size.
var EES677EP1 = ParamSet{
	name: "EES677EP1", n: 677, q: 2048,
	df1: 157, dg: 225, dm0: 157, db: 192, c: 11,
	minCallsR: 27, minCallsMask: 9, hashSeed: true,
	oid: [OIDLen]byte{0, 5, 3}, hash: sha256, pkLen: 192,
}

// EES1087EP2 is an IEEE P1363.1 parameter set that gives 256 bits of
// security and is optimized for key size.
var EES1087EP2 = ParamSet{
	name: "EES1087EP2", n: 1087, q: 2048,
	df1: 120, dg: 362, dm0: 120, db: 256, c: 13,
	minCallsR: 25, minCallsMask: 14, hashSeed: true,
	oid: [OIDLen]byte{0, 6, 3}, hash: sha256, pkLen: 256,
}

// EES541EP1 is an IEEE P1363.1 parameter set that gives 112 bits of
// security and is a tradeoff between key size and speed.
var EES541EP1 = ParamSet{
	name: "EES541EP1", n: 541, q: 2048,
	df1: 49, dg: 180, dm0: 49, db: 112, c: 12,
	minCallsR: 15, minCallsMask: 11, hashSeed: true,
	oid: [OIDLen]byte{0, 2, 5}, hash: sha1, pkLen: 112,
}

// EES613EP1 is an IEEE P1363.1 parameter set that gives 128 bits of
// security and is a tradeoff between key size and speed.
var EES613EP1 = ParamSet{
	name: "EES613EP1", n: 613, q: 2048,
	df1: 55, dg: 204, dm0: 55, db: 128, c: 11,
	minCallsR: 16, minCallsMask: 13, hashSeed: true,
	oid: [OIDLen]byte{0, 3, 4}, hash: sha1, pkLen: 128,
}

// EES887EP1 is an IEEE P1363.1 parameter set that gives 192 bits of
// security and is a tradeoff between key size and speed.
var EES887EP1 = ParamSet{
	name: "EES887EP1", n: 887, q: 2048,
	df1: 81, dg: 295, dm0: 81, db: 192, c: 10,
	minCallsR: 13, minCallsMask: 12, hashSeed: true,
	oid: [OIDLen]byte{0, 5, 4}, hash: sha256, pkLen: 192,
}

// EES1171EP1 is an IEEE P1363.1 parameter set that gives 256 bits of
// security and is a tradeoff between key size and speed.
var EES1171EP1 = ParamSet{
	name: "EES1171EP1", n: 1171, q: 2048,
	df1: 106, dg: 390, dm0: 106, db: 256, c: 12,
	minCallsR: 20, minCallsMask: 15, hashSeed: true,
	oid: [OIDLen]byte{0, 6, 4}, hash: sha256, pkLen: 256,
}

// EES659EP1 is an IEEE P1363.1 parameter set that gives 112 bits of
// security and is optimized for speed.
var EES659EP1 = ParamSet{
	name: "EES659EP1", n: 659, q: 2048,
	df1: 38, dg: 219, dm0: 38, db: 112, c: 11,
	minCallsR: 11, minCallsMask: 14, hashSeed: true,
	oid: [OIDLen]byte{0, 2, 6}, hash: sha1, pkLen: 112,
}

// EES761EP1 is an IEEE P1363.1 parameter set that gives 128 bits of
// security and is optimized for speed.
var EES761EP1 = ParamSet{
	name: "EES761EP1", n: 761, q: 2048,
	df1: 42, dg: 253, dm0: 42, db: 128, c: 12,
	minCallsR: 13, minCallsMask: 16, hashSeed: true,
	oid: [OIDLen]byte{0, 3, 5}, hash: sha1, pkLen: 128,
}

// EES1087EP1 is an IEEE P1363.1 parameter set that gives 192 bits of
// security and is optimized for speed.
var EES1087EP1 = ParamSet{
	name: "EES1087EP1", n: 1087, q: 2048,
	df1: 63, dg: 362, dm0: 63, db: 192, c: 13,
	minCallsR: 13, minCallsMask: 14, hashSeed: true,
	oid: [OIDLen]byte{0, 5, 5}, hash: sha256, pkLen: 192,
}

// EES1499EP1 is an IEEE P1363.1 parameter set that gives 256 bits of
// security and is optimized for speed.
var EES1499EP1 = ParamSet{
	name: "EES1499EP1", n: 1499, q: 2048,
	df1: 79, dg: 499, dm0: 79, db: 256, c: 13,
	minCallsR: 17, minCallsMask: 19, hashSeed: true,
	oid: [OIDLen]byte{0, 6, 5}, hash: sha256, pkLen: 256,
}

// EES401EP2 is a product-form parameter set that gives 112 bits of
// security.
var EES401EP2 = ParamSet{
	name: "EES401EP2", n: 401, q: 2048, product: true,
	df1: 8, df2: 8, df3: 6, dg: 133, dm0: 101, db: 112, c: 11,
	minCallsR: 10, minCallsMask: 6, hashSeed: true,
	oid: [OIDLen]byte{0, 2, 16}, hash: sha1, pkLen: 112,
}

// EES439EP1 is a product-form parameter set that gives 128 bits of
// security.
//
// Deprecated: use EES443EP1 instead.
var EES439EP1 = ParamSet{
	name: "EES439EP1", n: 439, q: 2048, product: true,
	df1: 9, df2: 8, df3: 5, dg: 146, dm0: 112, db: 128, c: 9,
	minCallsR: 15, minCallsMask: 6, hashSeed: true,
	oid: [OIDLen]byte{0, 3, 16}, hash: sha1, pkLen: 128,
}

// EES443EP1 is a product-form parameter set that gives 128 bits of
// security.
var EES443EP1 = ParamSet{
	name: "EES443EP1", n: 443, q: 2048, product: true,
	df1: 9, df2: 8, df3: 5, dg: 148, dm0: 115, db: 128, c: 9,
	minCallsR: 8, minCallsMask: 5, hashSeed: true,
	oid: [OIDLen]byte{0, 3, 17}, hash: sha256, pkLen: 128,
}

// EES593EP1 is a product-form parameter set that gives 192 bits of
// security.
//
// Deprecated: use EES587EP1 instead.
var EES593EP1 = ParamSet{
	name: "EES593EP1", n: 593, q: 2048, product: true,
	df1: 10, df2: 10, df3: 8, dg: 197, dm0: 158, db: 192, c: 11,
	minCallsR: 12, minCallsMask: 5, hashSeed: true,
	oid: [OIDLen]byte{0, 5, 16}, hash: sha256, pkLen: 192,
}

// EES587EP1 is a product-form parameter set that gives 192 bits of
// security.
var EES587EP1 = ParamSet{
	name: "EES587EP1", n: 587, q: 2048, product: true,
	df1: 10, df2: 10, df3: 8, dg: 196, dm0: 157, db: 192, c: 11,
	minCallsR: 13, minCallsMask: 7, hashSeed: true,
	oid: [OIDLen]byte{0, 5, 17}, hash: sha256, pkLen: 192,
}

// EES743EP1 is a product-form parameter set that gives 256 bits of
// security.
var EES743EP1 = ParamSet{
	name: "EES743EP1", n: 743, q: 2048, product: true,
	df1: 11, df2: 11, df3: 15, dg: 247, dm0: 204, db: 256, c: 13,
	minCallsR: 12, minCallsMask: 7, hashSeed: true,
	oid: [OIDLen]byte{0, 6, 16}, hash: sha256, pkLen: 256,
}

// Default parameter sets per security level.
var (
	Default112Bits = EES541EP1
	Default128Bits = EES613EP1
	Default192Bits = EES887EP1
	Default256Bits = EES1171EP1
)

var catalog = map[string]ParamSet{
	EES401EP1.name:  EES401EP1,
	EES449EP1.name:  EES449EP1,
	EES677EP1.name:  EES677EP1,
	EES1087EP2.name: EES1087EP2,
	EES541EP1.name:  EES541EP1,
	EES613EP1.name:  EES613EP1,
	EES887EP1.name:  EES887EP1,
	EES1171EP1.name: EES1171EP1,
	EES659EP1.name:  EES659EP1,
	EES761EP1.name:  EES761EP1,
	EES1087EP1.name: EES1087EP1,
	EES1499EP1.name: EES1499EP1,
	EES401EP2.name:  EES401EP2,
	EES439EP1.name:  EES439EP1,
	EES443EP1.name:  EES443EP1,
	EES593EP1.name:  EES593EP1,
	EES587EP1.name:  EES587EP1,
	EES743EP1.name:  EES743EP1,
}

// Names returns the names of all built-in parameter sets in sorted order.
func Names() []string {
	return utils.GetSortedKeys(catalog)
}

// All returns all built-in parameter sets, ordered by name.
func All() []ParamSet {
	sets := make([]ParamSet, 0, len(catalog))
	for _, name := range Names() {
		sets = append(sets, catalog[name])
	}
	return sets
}

// ByName returns the built-in parameter set with the given name.
func ByName(name string) (ParamSet, bool) {
	p, ok := catalog[name]
	return p, ok
}

// ByOID returns the built-in parameter set with the given object
// identifier.
func ByOID(oid [OIDLen]byte) (ParamSet, bool) {
	for _, p := range catalog {
		if p.oid == oid {
			return p, true
		}
	}
	return ParamSet{}, false
}
