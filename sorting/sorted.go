// Package sorting implements classic in-place comparison sorts over slices.
//
// Every algorithm has one implementation taking a types.Less, plus a
// natural-order wrapper for cmp.Ordered element types.
package sorting

import (
	"cmp"

	"github.com/kabu1204/go-algorithms/types"
)

// IsSorted reports whether s is in strictly ascending natural order.
// Equal neighbours make it false.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedFunc(s, types.Natural[T])
}

// IsSortedFunc reports whether every element strictly precedes its successor.
func IsSortedFunc[T any](s []T, less types.Less[T]) bool {
	return FirstUnsorted(s, less) < 0
}

// FirstUnsorted returns the first index whose element does not strictly
// follow its predecessor, or -1 if s is strictly ascending.
func FirstUnsorted[T any](s []T, less types.Less[T]) int {
	for i := 1; i < len(s); i++ {
		if !less(s[i-1], s[i]) {
			return i
		}
	}
	return -1
}

// IsOrderedFunc is the non-strict form of IsSortedFunc: equal neighbours are
// allowed, only an element preceding its predecessor fails.
func IsOrderedFunc[T any](s []T, less types.Less[T]) bool {
	return FirstDisorder(s, less) < 0
}

// FirstDisorder returns the first index whose element belongs before its
// predecessor, or -1 if s is ordered.
func FirstDisorder[T any](s []T, less types.Less[T]) int {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return i
		}
	}
	return -1
}
