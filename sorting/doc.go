// Package sorting provides bubble sort and insertion sort over any
// implementation of the core.List capability.
//
// Both routines take a core.Comparator reporting whether its first argument
// should be ordered before its second, mutate the list in place, and are
// no-ops for lists of length 0 or 1. Output is non-decreasing under the
// comparator; stability holds only for strict comparators.
//
// These are teaching-grade O(n²) routines that exercise the List seam;
// reach for the standard library's sort when performance matters.
package sorting
