// Package arraylist provides ArrayList, a slice-backed implementation of the
// core.List capability.
//
// ArrayList is the workhorse sequence of enceladus: the sorting routines
// operate on it through core.List, and the stack and queue packages use it
// as backing storage. All positional methods are bounds-checked and return
// core.ErrOutOfBounds instead of panicking.
package arraylist
