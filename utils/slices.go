// Package utils implements generic helpers on slices and maps.
package utils

import (
	"fmt"
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
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// Chunks splits s into consecutive sub-slices of length size, the last one
// holding the remainder. The sub-slices share the backing array of s.
func Chunks[V any](s []V, size int) (chunks [][]V) {

	if size <= 0 {
		panic(fmt.Errorf("cannot Chunks: size must be positive but is %d", size))
	}

	chunks = make([][]V, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		chunks = append(chunks, s[start:min(start+size, len(s)):min(start+size, len(s))])
	}

	return
}
