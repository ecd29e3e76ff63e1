package hashmap_test

import (
	"fmt"
	"testing"

	"github.com/jmcph4/enceladus/hashmap"
)

// BenchmarkInsert measures amortized insert cost including rehashes.
func BenchmarkInsert(b *testing.B) {
	m, _ := hashmap.New[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Insert(i, i)
	}
}

// BenchmarkGet measures lookup cost on a populated map.
func BenchmarkGet(b *testing.B) {
	const n = 1 << 14
	m, _ := hashmap.New[int, int]()
	for i := 0; i < n; i++ {
		_ = m.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(i & (n - 1))
	}
}

// BenchmarkGet_StringKeys measures the default fmt+xxhash hasher path.
func BenchmarkGet_StringKeys(b *testing.B) {
	const n = 1 << 12
	m, _ := hashmap.New[string, int]()
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("key-%d", i)
		_ = m.Insert(keys[i], i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i&(n-1)])
	}
}
