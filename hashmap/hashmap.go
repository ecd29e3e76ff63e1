package hashmap

import (
	"fmt"
	"strings"

	"github.com/jmcph4/enceladus/core"
)

// entry is one key/value pair stored in a bucket chain.
type entry[K comparable, V comparable] struct {
	key   K
	value V
}

// HashMap is a separate-chaining hash table implementing core.Map.
//
// Invariant: bucket index of a live entry is always hash(key) mod the
// current bucket count; rehashing restores the invariant after growth.
type HashMap[K comparable, V comparable] struct {
	buckets    [][]entry[K, V]
	numKeys    int
	loadFactor float64 // fraction of non-empty buckets, kept current
	opts       Options[K]
}

// Compile-time conformance checks.
var (
	_ core.Map[string, int] = (*HashMap[string, int])(nil)
	_ fmt.Stringer          = (*HashMap[string, int])(nil)
)

// New builds an empty HashMap with DefaultOptions, then applies opts.
// Returns ErrBadOption if any option is invalid.
// Complexity: O(InitialBuckets).
func New[K comparable, V comparable](opts ...Option[K]) (*HashMap[K, V], error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &HashMap[K, V]{
		buckets: make([][]entry[K, V], o.InitialBuckets),
		opts:    o,
	}, nil
}

// bucketIndex returns the chain index for key under the current bucket count.
func (m *HashMap[K, V]) bucketIndex(key K) int {
	return int(m.opts.Hash(key) % uint64(len(m.buckets)))
}

// locate returns the bucket index and chain position of the first entry
// matching key, or ok=false.
func (m *HashMap[K, V]) locate(key K) (bucket, pos int, ok bool) {
	bucket = m.bucketIndex(key)
	for pos, e := range m.buckets[bucket] {
		if e.key == key {
			return bucket, pos, true
		}
	}

	return bucket, 0, false
}

// recomputeLoadFactor refreshes loadFactor as occupied buckets over total.
func (m *HashMap[K, V]) recomputeLoadFactor() {
	occupied := 0
	for _, chain := range m.buckets {
		if len(chain) > 0 {
			occupied++
		}
	}
	m.loadFactor = float64(occupied) / float64(len(m.buckets))
}

// rehash rebuilds the bucket array at GrowthFactor times its size and
// re-distributes every entry. Stop-the-world, O(n + buckets).
func (m *HashMap[K, V]) rehash() {
	old := m.buckets
	m.buckets = make([][]entry[K, V], len(old)*m.opts.GrowthFactor)
	for _, chain := range old {
		for _, e := range chain {
			idx := m.bucketIndex(e.key)
			m.buckets[idx] = append(m.buckets[idx], e)
		}
	}
	m.recomputeLoadFactor()
}

// maybeRehash runs rehash while occupancy is at or above the threshold.
func (m *HashMap[K, V]) maybeRehash() {
	for m.loadFactor >= m.opts.MaxLoadFactor {
		m.rehash()
	}
}

// Get returns the value stored under key, with ok=false when absent.
// Complexity: O(1) average, O(n) worst case.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	var zero V
	bucket, pos, ok := m.locate(key)
	if !ok {
		return zero, false
	}

	return m.buckets[bucket][pos].value, true
}

// GetMut returns a pointer to the value stored under key for in-place
// mutation, with ok=false when absent. The pointer is invalidated by any
// subsequent Insert, Remove or Clear (a rehash moves entries).
// Complexity: O(1) average.
func (m *HashMap[K, V]) GetMut(key K) (*V, bool) {
	bucket, pos, ok := m.locate(key)
	if !ok {
		return nil, false
	}

	return &m.buckets[bucket][pos].value, true
}

// Set overwrites the value under an existing key in place.
// Returns core.ErrKeyNotFound when key is absent.
// Complexity: O(1) average.
func (m *HashMap[K, V]) Set(key K, value V) error {
	bucket, pos, ok := m.locate(key)
	if !ok {
		return core.ErrKeyNotFound
	}
	m.buckets[bucket][pos].value = value

	return nil
}

// Insert appends a new entry to the target chain and grows the bucket array
// if occupancy reached the threshold. No duplicate scan is performed: an
// existing key gains a second, shadowed entry until one is removed.
// Complexity: O(1) amortized.
func (m *HashMap[K, V]) Insert(key K, value V) error {
	idx := m.bucketIndex(key)
	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.numKeys++
	m.recomputeLoadFactor()
	m.maybeRehash()

	return nil
}

// Remove deletes the first entry matching key.
// Returns core.ErrKeyNotFound when key is absent.
// Complexity: O(1) average.
func (m *HashMap[K, V]) Remove(key K) error {
	bucket, pos, ok := m.locate(key)
	if !ok {
		return core.ErrKeyNotFound
	}
	chain := m.buckets[bucket]
	m.buckets[bucket] = append(chain[:pos], chain[pos+1:]...)
	m.numKeys--
	m.recomputeLoadFactor()

	return nil
}

// Size returns the number of stored entries. Complexity: O(1).
func (m *HashMap[K, V]) Size() int {
	return m.numKeys
}

// ContainsKey reports whether key is present.
// Complexity: O(n); materializes the key set to scan it.
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	for _, k := range m.Keys() {
		if k == key {
			return true
		}
	}

	return false
}

// ContainsValue reports whether any entry stores value.
// Complexity: O(n).
func (m *HashMap[K, V]) ContainsValue(value V) bool {
	for _, v := range m.Values() {
		if v == value {
			return true
		}
	}

	return false
}

// Clear removes every entry and reinitializes the bucket array to the
// configured initial bucket count, restoring New-parity.
// Complexity: O(InitialBuckets).
func (m *HashMap[K, V]) Clear() {
	m.buckets = make([][]entry[K, V], m.opts.InitialBuckets)
	m.numKeys = 0
	m.loadFactor = 0
}

// Keys returns every stored key in bucket order. Shadowed duplicate keys
// appear once per entry. Complexity: O(n + buckets).
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.numKeys)
	for _, chain := range m.buckets {
		for _, e := range chain {
			keys = append(keys, e.key)
		}
	}

	return keys
}

// Values returns every stored value in bucket order.
// Complexity: O(n + buckets).
func (m *HashMap[K, V]) Values() []V {
	values := make([]V, 0, m.numKeys)
	for _, chain := range m.buckets {
		for _, e := range chain {
			values = append(values, e.value)
		}
	}

	return values
}

// NumBuckets returns the current bucket count. Complexity: O(1).
func (m *HashMap[K, V]) NumBuckets() int {
	return len(m.buckets)
}

// LoadFactor returns the fraction of non-empty buckets. Complexity: O(1).
func (m *HashMap[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

// Equal reports strict pairwise equality: both maps hold the same key set
// and map each key to an equal value. Bucket layout, option configuration
// and shadowed duplicates do not participate.
// Complexity: O(n) average.
func (m *HashMap[K, V]) Equal(other *HashMap[K, V]) bool {
	if other == nil || m.numKeys != other.numKeys {
		return false
	}
	for _, chain := range m.buckets {
		for _, e := range chain {
			v, ok := other.Get(e.key)
			if !ok || v != e.value {
				return false
			}
		}
	}

	return true
}

// String renders the map as "{k1: v1, k2: v2}" in bucket order.
func (m *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for _, chain := range m.buckets {
		for _, e := range chain {
			if !first {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v: %v", e.key, e.value)
			first = false
		}
	}
	sb.WriteString("}")

	return sb.String()
}
