// Package stack provides ListStack, a LIFO implementation of the core.Stack
// capability backed by an arraylist.ArrayList. Pop and Peek on an empty
// stack report insufficient elements via core.ErrOutOfBounds.
package stack
