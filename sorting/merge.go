package sorting

import (
	"cmp"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/kabu1204/go-algorithms/types"
)

func Merge[T cmp.Ordered](s []T) { MergeFunc(s, types.Natural[T]) }

// MergeFunc is a stable top-down merge sort. A single scratch buffer of
// len(s)/2 elements is shared by every merge.
func MergeFunc[T any](s []T, less types.Less[T]) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, make([]T, len(s)/2), less)
}

func mergeSort[T any](s, buf []T, less types.Less[T]) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf, less)
	mergeSort(s[mid:], buf, less)
	merge(s, mid, buf, less)
}

// merge interleaves the sorted runs s[:mid] and s[mid:], taking from the right
// run only when its head strictly precedes the left head. Only the left run is
// copied out: the write index never passes the right read index.
func merge[T any](s []T, mid int, buf []T, less types.Less[T]) {
	left := buf[:copy(buf, s[:mid])]
	i, j, k := 0, mid, 0
	for i < len(left) && j < len(s) {
		if less(s[j], left[i]) {
			s[k] = s[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	copy(s[k:], left[i:])
}

type mergeFrame struct {
	lo, hi int
	merge  bool
}

// MergeIterFunc performs the same splits and merges as MergeFunc, driven by a
// heap-allocated work stack instead of recursion.
func MergeIterFunc[T any](s []T, less types.Less[T]) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s)/2)
	stack := arraystack.New()
	stack.Push(mergeFrame{lo: 0, hi: len(s)})
	for !stack.Empty() {
		v, _ := stack.Pop()
		f := v.(mergeFrame)
		if f.hi-f.lo < 2 {
			continue
		}
		mid := f.lo + (f.hi-f.lo)/2
		if f.merge {
			merge(s[f.lo:f.hi], mid-f.lo, buf, less)
			continue
		}
		// the left half is popped, and fully sorted, before the right half
		stack.Push(mergeFrame{lo: f.lo, hi: f.hi, merge: true})
		stack.Push(mergeFrame{lo: mid, hi: f.hi})
		stack.Push(mergeFrame{lo: f.lo, hi: mid})
	}
}
