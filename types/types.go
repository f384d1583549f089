package types

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

type (
	// Less reports whether a belongs before b.
	Less[T any] func(a, b T) bool

	// Comparator returns a negative number if a < b, zero if a == b and a
	// positive number if a > b.
	Comparator[T any] func(a, b T) int

	Predicate[T any] func(T) bool
)

// Natural is the default order of ordered types. NaNs sort first.
func Natural[T cmp.Ordered](a, b T) bool { return cmp.Less(a, b) }

// Compare is the three-way form of Natural.
func Compare[T cmp.Ordered](a, b T) int { return cmp.Compare(a, b) }

func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}

// ByKey orders elements by an extracted key.
func ByKey[T any, K cmp.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

func (c Comparator[T]) Less() Less[T] {
	return func(a, b T) bool { return c(a, b) < 0 }
}

func (l Less[T]) Comparator() Comparator[T] {
	return func(a, b T) int {
		switch {
		case l(a, b):
			return -1
		case l(b, a):
			return 1
		}
		return 0
	}
}

// FromGods adapts an untyped gods comparator such as utils.IntComparator.
// The comparator panics if T is not the type it asserts.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int { return c(a, b) }
}

// Array adapts a slice and a comparator to sort.Interface.
type Array[T any] struct {
	Data []T
	Cmp  Comparator[T]
}
