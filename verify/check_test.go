package verify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-algorithms/sorting"
	"github.com/kabu1204/go-algorithms/types"
)

type record struct {
	Key int
	ID  int
}

func byKey(a, b record) bool { return a.Key < b.Key }

func recordID(r record) int { return r.ID }

func TestSorted(t *testing.T) {
	assert.NoError(t, Sorted([]int{1, 1, 2}, types.Natural[int]))
	assert.NoError(t, Sorted([]int{}, types.Natural[int]))

	err := Sorted([]int{1, 3, 2}, types.Natural[int])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 2")
}

func TestPermutation(t *testing.T) {
	assert.NoError(t, Permutation([]int{3, 1, 3}, []int{1, 3, 3}, Self[int]))
	assert.Error(t, Permutation([]int{3, 1, 3}, []int{1, 1, 3}, Self[int]))
	assert.Error(t, Permutation([]int{3, 1}, []int{1, 3, 3}, Self[int]))
	assert.Error(t, Permutation([]string{"a"}, []string{"b"}, Self[string]))
}

func TestPermutationNaN(t *testing.T) {
	nan := math.NaN()
	assert.NoError(t, Permutation([]float64{2, nan, 1, nan}, []float64{nan, nan, 1, 2}, Self[float64]))
	assert.Error(t, Permutation([]float64{2, nan, 1}, []float64{nan, nan, 1}, Self[float64]))
	assert.Error(t, Permutation([]float64{2, nan, 1}, []float64{2, 2, 1}, Self[float64]))
}

func TestCheckFloatsWithNaN(t *testing.T) {
	input := []float64{2, math.NaN(), 1, math.NaN(), 0.5}
	for _, alg := range sorting.Algorithms[float64]() {
		assert.NoError(t, Check(alg, input, types.Natural[float64], Self[float64]), alg.Name)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(math.NaN(), math.NaN()))
	assert.False(t, Equal(math.NaN(), 1.0))
	assert.True(t, Equal("a", "a"))
}

func TestStable(t *testing.T) {
	input := []record{{2, 0}, {1, 1}, {2, 2}}

	assert.NoError(t, Stable(input, []record{{1, 1}, {2, 0}, {2, 2}}, byKey))
	assert.Error(t, Stable(input, []record{{1, 1}, {2, 2}, {2, 0}}, byKey))
}

func TestIdempotent(t *testing.T) {
	assert.NoError(t, Idempotent([]int{1, 2, 3}, sorting.Quick[int], Equal[int]))
	assert.Error(t, Idempotent([]int{3, 2, 1}, sorting.Quick[int], Equal[int]))
}

func TestIdempotentUnstable(t *testing.T) {
	sorted := []record{{1, 0}, {1, 1}, {1, 2}}
	quick := func(s []record) { sorting.QuickFunc(s, byKey) }

	assert.Error(t, Idempotent(sorted, quick, Equal[record]))
	assert.NoError(t, Idempotent(sorted, quick, Equivalent(byKey)))
}

func TestCheck(t *testing.T) {
	input := []record{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}, {3, 5}}
	for _, alg := range sorting.Algorithms[record]() {
		assert.NoError(t, Check(alg, input, byKey, recordID), alg.Name)
	}
	assert.Equal(t, []record{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}, {3, 5}}, input)
}

func TestCheckCatchesBrokenSort(t *testing.T) {
	dropFirst := sorting.Algorithm[int]{
		Name: "broken",
		Sort: func(s []int, less types.Less[int]) {
			sorting.MergeFunc(s, less)
			if len(s) > 1 {
				s[0] = s[1]
			}
		},
	}
	err := Check(dropFirst, []int{2, 1, 3}, types.Natural[int], Self[int])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	unstable := sorting.Lookup[record]("selection").Get()
	unstable.Stable = true
	err = Check(unstable, []record{{2, 1}, {2, 2}, {1, 3}}, byKey, recordID)
	assert.Error(t, err)
}
