package sorting

import (
	"cmp"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/kabu1204/go-algorithms/types"
)

func Quick[T cmp.Ordered](s []T) { QuickFunc(s, types.Natural[T]) }

// QuickFunc sorts s around middle-element pivots. It recurses into the smaller
// side and loops on the larger one, so the stack depth stays O(log n) even when
// partitions are unbalanced. It is not stable.
func QuickFunc[T any](s []T, less types.Less[T]) {
	for len(s) > 1 {
		p := partition(s, less)
		left, right := s[:p], s[p+1:]
		if len(left) < len(right) {
			QuickFunc(left, less)
			s = right
		} else {
			QuickFunc(right, less)
			s = left
		}
	}
}

// partition moves the middle element to the end, gathers everything that
// precedes it at the front and then swaps it into its final index.
func partition[T any](s []T, less types.Less[T]) int {
	last := len(s) - 1
	s[len(s)/2], s[last] = s[last], s[len(s)/2]

	store := 0
	for i := 0; i < last; i++ {
		if less(s[i], s[last]) {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}

	s[store], s[last] = s[last], s[store]
	return store
}

type quickFrame struct{ lo, hi int }

// QuickIterFunc partitions exactly like QuickFunc but keeps pending ranges on a
// heap-allocated work stack.
func QuickIterFunc[T any](s []T, less types.Less[T]) {
	stack := arraystack.New()
	stack.Push(quickFrame{lo: 0, hi: len(s)})
	for !stack.Empty() {
		v, _ := stack.Pop()
		f := v.(quickFrame)
		if f.hi-f.lo < 2 {
			continue
		}
		p := f.lo + partition(s[f.lo:f.hi], less)
		stack.Push(quickFrame{lo: p + 1, hi: f.hi})
		stack.Push(quickFrame{lo: f.lo, hi: p})
	}
}
