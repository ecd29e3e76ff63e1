// Package hashmap: tunable options, defaults and sentinel errors for HashMap
// construction.
package hashmap

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Defaults applied by New when no option overrides them.
const (
	// DefaultInitialBuckets is the bucket count of a freshly built map.
	DefaultInitialBuckets = 16

	// DefaultGrowthFactor multiplies the bucket count on every rehash.
	DefaultGrowthFactor = 2

	// DefaultMaxLoadFactor is the occupancy threshold that triggers a rehash.
	DefaultMaxLoadFactor = 0.75
)

// ErrBadOption is returned by New when an invalid Option is supplied.
var ErrBadOption = errors.New("hashmap: invalid option supplied")

// Hasher maps a key to a 64-bit hash. Implementations must be pure: equal
// keys must always produce equal hashes.
type Hasher[K comparable] func(K) uint64

// DefaultHasher formats the key with fmt.Sprint and hashes the bytes with
// xxhash. It is adequate for any key type; supply a specialized Hasher via
// WithHasher when formatting cost matters.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		return xxhash.Sum64String(fmt.Sprint(key))
	}
}

// Option configures HashMap construction via functional arguments.
// An invalid Option (e.g. non-positive bucket count) is recorded internally
// and surfaced as ErrBadOption by New.
type Option[K comparable] func(*Options[K])

// Options holds the tunable parameters of a HashMap.
type Options[K comparable] struct {
	// InitialBuckets is the bucket count at construction and after Clear.
	InitialBuckets int

	// GrowthFactor multiplies the bucket count on rehash; must be >= 2.
	GrowthFactor int

	// MaxLoadFactor is the occupied-bucket fraction threshold in (0, 1].
	MaxLoadFactor float64

	// Hash distributes keys over buckets.
	Hash Hasher[K]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the Options applied by New before user overrides.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		InitialBuckets: DefaultInitialBuckets,
		GrowthFactor:   DefaultGrowthFactor,
		MaxLoadFactor:  DefaultMaxLoadFactor,
		Hash:           DefaultHasher[K](),
	}
}

// WithInitialBuckets sets the starting (and post-Clear) bucket count.
// Values < 1 surface ErrBadOption.
func WithInitialBuckets[K comparable](n int) Option[K] {
	return func(o *Options[K]) {
		if n < 1 {
			o.err = fmt.Errorf("%w: initial buckets %d < 1", ErrBadOption, n)
			return
		}
		o.InitialBuckets = n
	}
}

// WithGrowthFactor sets the rehash multiplier. Values < 2 surface ErrBadOption.
func WithGrowthFactor[K comparable](factor int) Option[K] {
	return func(o *Options[K]) {
		if factor < 2 {
			o.err = fmt.Errorf("%w: growth factor %d < 2", ErrBadOption, factor)
			return
		}
		o.GrowthFactor = factor
	}
}

// WithMaxLoadFactor sets the occupancy threshold. Values outside (0, 1]
// surface ErrBadOption.
func WithMaxLoadFactor[K comparable](threshold float64) Option[K] {
	return func(o *Options[K]) {
		if threshold <= 0 || threshold > 1 {
			o.err = fmt.Errorf("%w: load factor threshold %v outside (0, 1]", ErrBadOption, threshold)
			return
		}
		o.MaxLoadFactor = threshold
	}
}

// WithHasher replaces the default key hasher. A nil Hasher surfaces
// ErrBadOption.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(o *Options[K]) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil hasher", ErrBadOption)
			return
		}
		o.Hash = h
	}
}
