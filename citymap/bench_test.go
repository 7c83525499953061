package citymap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/citytsp/citymap"
)

func BenchmarkGenerate(b *testing.B) {
	var (
		wr  = citymap.WeightRange{Low: 1, High: 1000}
		rng = rand.New(rand.NewSource(1))
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := citymap.Generate(100, wr, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	m, err := citymap.Generate(100, citymap.WeightRange{Low: 1, High: 1000}, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Distance(i%100, (i+37)%100); err != nil {
			b.Fatal(err)
		}
	}
}
