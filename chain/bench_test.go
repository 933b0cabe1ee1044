package chain_test

import (
	"testing"

	"github.com/hasbyte1/go-chain/chain"
)

// makeInts creates a slice of n ints with 50% duplicates.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = (i * 7919) % (n / 2)
	}
	return items
}

func BenchmarkSort(b *testing.B) {
	items := makeInts(10_000)
	cmp := chain.Ascending[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ints.Sort(items, cmp)
	}
}

func BenchmarkWhere(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ints.Where(items, func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkDistinct(b *testing.B) {
	items := makeInts(1_000)
	cmp := chain.Ascending[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ints.Distinct(items, cmp)
	}
}

func BenchmarkDistinctBy(b *testing.B) {
	items := makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.DistinctBy(items, identity)
	}
}

func BenchmarkUnion(b *testing.B) {
	a, other := makeInts(1_000), makeInts(500)
	cmp := chain.Ascending[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ints.Union(a, other, cmp)
	}
}

func BenchmarkUnionBy(b *testing.B) {
	a, other := makeInts(1_000), makeInts(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.UnionBy(a, other, identity)
	}
}

func BenchmarkSelect(b *testing.B) {
	c := chain.From(makeInts(10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Select(c, func(n int) int64 { return int64(n) * 2 })
	}
}
