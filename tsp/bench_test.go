package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/citytsp/citymap"
	"github.com/katalvlaran/citytsp/tsp"
)

func benchMap(b *testing.B, n int) *citymap.DistanceMatrix {
	b.Helper()

	m, err := citymap.Generate(n, citymap.WeightRange{Low: 1, High: 1000}, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkSolveExact8(b *testing.B) {
	m := benchMap(b, 8) // 8! = 40320 candidates per iteration
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveExact(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveHeuristic32(b *testing.B) {
	m := benchMap(b, 100)
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveHeuristic(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPathCost(b *testing.B) {
	m := benchMap(b, 100)
	path, err := tsp.RandomPath(m, rand.New(rand.NewSource(2)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tsp.PathCost(m, path); err != nil {
			b.Fatal(err)
		}
	}
}
