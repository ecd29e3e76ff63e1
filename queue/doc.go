// Package queue provides ListQueue, a FIFO implementation of the core.Queue
// capability backed by an arraylist.ArrayList. Pop and Peek on an empty
// queue report insufficient elements via core.ErrOutOfBounds.
package queue
