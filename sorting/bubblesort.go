package sorting

import (
	"github.com/jmcph4/enceladus/core"
)

// Bubblesort sorts list in place to be non-decreasing under cmp.
//
// For each boundary position i the inner loop scans from the end of the
// list down toward i+1 and swaps whenever cmp(list[j], list[i]) holds.
// Note the inverted argument order: the later element is passed first, the
// boundary element second.
//
// List errors are propagated unchanged; indices are in range by
// construction, so any error reflects a misbehaving List implementation.
// Complexity: O(n²) comparisons and up to O(n²) swaps.
func Bubblesort[T comparable](list core.List[T], cmp core.Comparator[T]) error {
	n := list.Length()
	if n <= 1 {
		return nil
	}

	for i := 0; i < n; i++ {
		for j := n - 1; j > i; j-- {
			later, err := list.Get(j)
			if err != nil {
				return err
			}
			boundary, err := list.Get(i)
			if err != nil {
				return err
			}
			if cmp(later, boundary) {
				if err = list.Swap(i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
