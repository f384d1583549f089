package verify

import "math/rand"

// RandomInts returns n values drawn from [0, limit). A small limit yields many
// duplicates.
func RandomInts(r *rand.Rand, n, limit int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(limit)
	}
	return s
}
