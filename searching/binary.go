package searching

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/kabu1204/go-algorithms/optional"
	"github.com/kabu1204/go-algorithms/sorting"
	"github.com/kabu1204/go-algorithms/types"
)

var (
	ErrNotFound = errors.New("searching: element not found")
	ErrUnsorted = errors.New("searching: input is not strictly ascending")
)

// Binary searches a strictly ascending slice. An unsorted slice yields None,
// exactly as a miss does; use BinaryChecked to tell the two apart. A hit
// means s[i] == target, so a NaN target is never found, as with Linear.
func Binary[T cmp.Ordered](s []T, target T) optional.Optional[int] {
	if target != target {
		return optional.None[int]()
	}
	return BinaryFunc(s, target, types.Compare[T])
}

// BinaryFunc is Binary under a three-way comparator.
func BinaryFunc[T any](s []T, target T, c types.Comparator[T]) optional.Optional[int] {
	if !sorting.IsSortedFunc(s, c.Less()) {
		return optional.None[int]()
	}
	if i, ok := halve(s, target, c); ok {
		return optional.Some(i)
	}
	return optional.None[int]()
}

// BinaryChecked returns the index of target, ErrUnsorted if s is not strictly
// ascending, or ErrNotFound. A NaN target is never found.
func BinaryChecked[T cmp.Ordered](s []T, target T) (int, error) {
	if i := sorting.FirstUnsorted(s, types.Natural[T]); i >= 0 {
		return -1, errors.Wrapf(ErrUnsorted, "index %d does not follow index %d", i, i-1)
	}
	if target != target {
		return -1, errors.Wrapf(ErrNotFound, "%v", target)
	}
	if i, ok := halve(s, target, types.Compare[T]); ok {
		return i, nil
	}
	return -1, errors.Wrapf(ErrNotFound, "%v", target)
}

// halve is the classic search over the inclusive range [low, high].
func halve[T any](s []T, target T, c types.Comparator[T]) (int, bool) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		switch r := c(target, s[mid]); {
		case r < 0:
			if mid == 0 {
				return -1, false
			}
			high = mid - 1
		case r > 0:
			low = mid + 1
		default:
			return mid, true
		}
	}
	return -1, false
}
