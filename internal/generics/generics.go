// Package generics implements generic helper functions missing from the stdlib.
package generics

import (
	"cmp"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// SortedKeys returns the keys of the map m, sorted.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) []K {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
