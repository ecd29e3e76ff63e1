package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/jmcph4/enceladus/core"
)

// InsertionSort sorts list in place to be non-decreasing under cmp.
//
// Classic insertion sort: each element list[j] is inserted into the sorted
// prefix list[0..j-1] by shifting predecessors right while
// cmp(key, predecessor) holds.
//
// List errors are propagated unchanged; indices are in range by
// construction. Complexity: O(n²) worst case, O(n) on sorted input.
func InsertionSort[T comparable](list core.List[T], cmp core.Comparator[T]) error {
	n := list.Length()
	if n <= 1 {
		return nil
	}

	for j := 1; j < n; j++ {
		key, err := list.Get(j)
		if err != nil {
			return err
		}

		// Shift the sorted prefix right until key's slot appears.
		i := j - 1
		for i >= 0 {
			pred, err := list.Get(i)
			if err != nil {
				return err
			}
			if !cmp(key, pred) {
				break
			}
			if err = list.Set(i+1, pred); err != nil {
				return err
			}
			i--
		}

		if err = list.Set(i+1, key); err != nil {
			return err
		}
	}

	return nil
}

// Ascending returns a non-strict "less or equal" comparator over the natural
// order, producing ascending output from either sorting routine.
func Ascending[T constraints.Ordered]() core.Comparator[T] {
	return func(a, b T) bool { return a <= b }
}

// Descending returns a non-strict "greater or equal" comparator over the
// natural order, producing descending output.
func Descending[T constraints.Ordered]() core.Comparator[T] {
	return func(a, b T) bool { return a >= b }
}
