package sorting

import (
	"cmp"

	"github.com/kabu1204/go-algorithms/types"
)

func Bubble[T cmp.Ordered](s []T)    { BubbleFunc(s, types.Natural[T]) }
func Insertion[T cmp.Ordered](s []T) { InsertionFunc(s, types.Natural[T]) }
func Selection[T cmp.Ordered](s []T) { SelectionFunc(s, types.Natural[T]) }

// BubbleFunc sorts s with full adjacent-swap passes until a pass makes no swap.
// It is stable.
func BubbleFunc[T any](s []T, less types.Less[T]) {
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i+1 < len(s); i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
	}
}

// InsertionFunc sorts s by moving each element left past the elements it
// strictly precedes. It is stable and linear on sorted input.
func InsertionFunc[T any](s []T, less types.Less[T]) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// SelectionFunc swaps the first minimum of each suffix into place.
// It is not stable.
func SelectionFunc[T any](s []T, less types.Less[T]) {
	for i := 0; i+1 < len(s); i++ {
		m := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[m]) {
				m = j
			}
		}
		s[i], s[m] = s[m], s[i]
	}
}
