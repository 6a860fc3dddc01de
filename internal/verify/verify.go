// Package verify checks the post-conditions of an ordering run.
package verify

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/sortbench/model"
)

// OrderError reports the first position whose key is not strictly smaller
// than its successor.
type OrderError struct {
	Position int
	Prev     model.Key
	Next     model.Key
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("order violated at position %d: %d >= %d", e.Position, e.Prev, e.Next)
}

// Ascending checks keys[i] < keys[i+1] for every consecutive pair.
func Ascending(keys []model.Key) error {
	for i := 0; i+1 < len(keys); i++ {
		if keys[i] >= keys[i+1] {
			return &OrderError{Position: i, Prev: keys[i], Next: keys[i+1]}
		}
	}
	return nil
}

// PermutationError reports an index slice that is not a permutation of [0,n).
type PermutationError struct {
	Position int
	Index    int
	Reason   string
}

func (e *PermutationError) Error() string {
	return fmt.Sprintf("not a permutation: %s (position %d, index %d)", e.Reason, e.Position, e.Index)
}

// Permutation checks that idx holds every position in [0,n) exactly once.
func Permutation(idx []int, n int) error {
	if len(idx) != n {
		return &PermutationError{Position: len(idx), Index: n, Reason: fmt.Sprintf("length %d, want %d", len(idx), n)}
	}

	seen := bitset.New(uint(n))
	for pos, i := range idx {
		if i < 0 || i >= n {
			return &PermutationError{Position: pos, Index: i, Reason: "out of range"}
		}
		if seen.Test(uint(i)) {
			return &PermutationError{Position: pos, Index: i, Reason: "repeated"}
		}
		seen.Set(uint(i))
	}
	return nil
}
