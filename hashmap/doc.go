// Package hashmap provides HashMap, a separate-chaining implementation of
// the core.Map capability with occupancy-driven dynamic growth.
//
// Keys are distributed over a bucket array by hash(key) mod bucket count;
//each bucket holds a short chain of key/value entries. The load factor is the
// fraction of NON-EMPTY buckets (occupancy), not the average chain length;
// whenever it reaches the configured threshold after a mutation, the bucket
// array is rebuilt at growthFactor times its size and every entry is
// re-distributed (a stop-the-world, O(n) rehash).
//
// Behavioral contract (see core.Map):
//
//   - Get/GetMut report absence via ok=false, never an error.
//   - Set and Remove require presence and fail with core.ErrKeyNotFound.
//   - Insert appends without a duplicate scan; inserting an existing key
//     shadows the older entry until the newer one is removed.
//   - ContainsKey/ContainsValue are O(n) scans, for correctness not speed.
//
// Hashing is pluggable via WithHasher; the default formats the key with
// fmt.Sprint and hashes the resulting bytes with xxhash.
package hashmap
