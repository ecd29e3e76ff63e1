// Package traverse: tunable options and sentinel errors for BFS and DFS.
package traverse

import (
	"errors"
	"fmt"

	"github.com/jmcph4/enceladus/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Result carries the outcome of a traversal.
type Result struct {
	// Order lists vertices in visit order, starting with the start vertex.
	Order []core.VertexNumber

	// Depth maps each visited vertex to its discovery depth: for BFS this
	// is the unweighted shortest-path distance from the start.
	Depth map[core.VertexNumber]int

	// Parent maps each visited vertex (except the start) to the vertex it
	// was discovered from.
	Parent map[core.VertexNumber]core.VertexNumber
}

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth limit) is recorded internally and
// surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// OnVisit is called when a vertex is visited. A returned error aborts
	// the traversal and propagates to the caller.
	OnVisit func(v core.VertexNumber, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(core.VertexNumber, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit installs a visit hook. A nil hook surfaces ErrOptionViolation.
func WithOnVisit(hook func(v core.VertexNumber, depth int) error) Option {
	return func(o *Options) {
		if hook == nil {
			o.err = fmt.Errorf("%w: nil OnVisit hook", ErrOptionViolation)
			return
		}
		o.OnVisit = hook
	}
}

// WithMaxDepth limits exploration depth. Negative values surface
// ErrOptionViolation.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			o.err = fmt.Errorf("%w: negative MaxDepth %d", ErrOptionViolation, depth)
			return
		}
		o.MaxDepth = depth
	}
}

// buildOptions folds opts over DefaultOptions and surfaces the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
