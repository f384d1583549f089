// Package searching finds elements in slices by linear scan or binary search.
package searching

import (
	"github.com/kabu1204/go-algorithms/optional"
	"github.com/kabu1204/go-algorithms/types"
)

// Linear returns the index of the first element equal to target.
func Linear[T comparable](s []T, target T) optional.Optional[int] {
	for i, v := range s {
		if v == target {
			return optional.Some(i)
		}
	}
	return optional.None[int]()
}

// LinearFunc returns the index of the first element matching p.
func LinearFunc[T any](s []T, p types.Predicate[T]) optional.Optional[int] {
	for i, v := range s {
		if p(v) {
			return optional.Some(i)
		}
	}
	return optional.None[int]()
}
