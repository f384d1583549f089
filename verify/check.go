// Package verify checks the properties every sort routine must hold:
// ordered output, permutation of the input, stability where promised and
// idempotence.
package verify

import (
	"cmp"
	"slices"
	"sort"

	"github.com/cornelk/hashmap"
	"github.com/pkg/errors"

	"github.com/kabu1204/go-algorithms/sorting"
	"github.com/kabu1204/go-algorithms/types"
)

// Self is the identity key for ordered elements.
func Self[T cmp.Ordered](v T) T { return v }

// Equal is == except that NaN equals NaN.
func Equal[T comparable](a, b T) bool { return a == b || (a != a && b != b) }

// Equivalent reports a and b as equal when neither precedes the other.
func Equivalent[T any](less types.Less[T]) func(a, b T) bool {
	return func(a, b T) bool { return !less(a, b) && !less(b, a) }
}

// Sorted fails if an element of s belongs before its predecessor.
func Sorted[T any](s []T, less types.Less[T]) error {
	if i := sorting.FirstDisorder(s, less); i >= 0 {
		return errors.Errorf("verify: not sorted: index %d belongs before index %d", i, i-1)
	}
	return nil
}

// Permutation fails unless after holds exactly the elements of before, counted
// by key. key must tell distinct elements apart. NaN keys never match
// themselves in a map, so they are counted on their own.
func Permutation[T any, K cmp.Ordered](before, after []T, key func(T) K) error {
	if len(before) != len(after) {
		return errors.Errorf("verify: length changed from %d to %d", len(before), len(after))
	}
	counts := hashmap.New[K, int]()
	nans := 0
	for _, e := range before {
		k := key(e)
		if k != k {
			nans++
			continue
		}
		n, _ := counts.Get(k)
		counts.Set(k, n+1)
	}
	for i, e := range after {
		k := key(e)
		if k != k {
			if nans == 0 {
				return errors.Errorf("verify: index %d holds %v more often than the input", i, k)
			}
			nans--
			continue
		}
		n, _ := counts.Get(k)
		if n == 0 {
			return errors.Errorf("verify: index %d holds %v more often than the input", i, k)
		}
		counts.Set(k, n-1)
	}
	return nil
}

// Stable fails unless output equals the stable sort of input.
func Stable[T comparable](input, output []T, less types.Less[T]) error {
	want := slices.Clone(input)
	sort.Stable(&types.Array[T]{Data: want, Cmp: less.Comparator()})
	if i := firstDiff(want, output, Equal[T]); i >= 0 {
		return errors.Errorf("verify: not stable at index %d", i)
	}
	return nil
}

// Idempotent fails if sorting the already sorted s changes it, as judged by
// equal. Unstable sorts may reorder equivalent elements, so they are judged by
// Equivalent rather than Equal.
func Idempotent[T any](s []T, sortFn func([]T), equal func(a, b T) bool) error {
	again := slices.Clone(s)
	sortFn(again)
	if i := firstDiff(s, again, equal); i >= 0 {
		return errors.Errorf("verify: second sort moved index %d", i)
	}
	return nil
}

// Check sorts a copy of input with alg and applies every property that alg
// promises. input is left untouched.
func Check[T comparable, K cmp.Ordered](alg sorting.Algorithm[T], input []T, less types.Less[T], key func(T) K) error {
	out := slices.Clone(input)
	alg.Sort(out, less)

	if err := Sorted(out, less); err != nil {
		return errors.Wrap(err, alg.Name)
	}
	if err := Permutation(input, out, key); err != nil {
		return errors.Wrap(err, alg.Name)
	}
	if alg.Stable {
		if err := Stable(input, out, less); err != nil {
			return errors.Wrap(err, alg.Name)
		}
	}
	equal := Equal[T]
	if !alg.Stable {
		equal = Equivalent(less)
	}
	if err := Idempotent(out, func(s []T) { alg.Sort(s, less) }, equal); err != nil {
		return errors.Wrap(err, alg.Name)
	}
	return nil
}

func firstDiff[T any](a, b []T, equal func(a, b T) bool) int {
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return i
		}
	}
	return -1
}
