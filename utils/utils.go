// Package utils implements small generic helpers shared across the library.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[V constraints.Ordered](s []V) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// AllDistinct returns true if all elements of v are distinct.
func AllDistinct[V comparable](v []V) bool {
	m := map[V]bool{}
	for _, vi := range v {
		if m[vi] {
			return false
		}
		m[vi] = true
	}
	return true
}

// MaxSlice returns the maximum value of the slice.
func MaxSlice[V constraints.Ordered](s []V) (max V) {
	for _, c := range s {
		if c > max {
			max = c
		}
	}
	return
}
