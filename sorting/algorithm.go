package sorting

import (
	"github.com/kabu1204/go-algorithms/optional"
	"github.com/kabu1204/go-algorithms/types"
)

// Algorithm describes one sort routine of this package.
type Algorithm[T any] struct {
	Name   string
	Stable bool
	Sort   func(s []T, less types.Less[T])
}

// Algorithms lists every sort routine, elementary ones first.
func Algorithms[T any]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "bubble", Stable: true, Sort: BubbleFunc[T]},
		{Name: "insertion", Stable: true, Sort: InsertionFunc[T]},
		{Name: "selection", Stable: false, Sort: SelectionFunc[T]},
		{Name: "merge", Stable: true, Sort: MergeFunc[T]},
		{Name: "merge-iter", Stable: true, Sort: MergeIterFunc[T]},
		{Name: "quick", Stable: false, Sort: QuickFunc[T]},
		{Name: "quick-iter", Stable: false, Sort: QuickIterFunc[T]},
	}
}

func Lookup[T any](name string) optional.Optional[Algorithm[T]] {
	for _, a := range Algorithms[T]() {
		if a.Name == name {
			return optional.Some(a)
		}
	}
	return optional.None[Algorithm[T]]()
}
