package fibonacci_test

import (
	"testing"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibonacci"
	"github.com/katalvlaran/lvheap/workload"
)

// BenchmarkInsertExtract inserts N pseudo-random values and drains them,
// recording a trace for every operation.
func BenchmarkInsertExtract(b *testing.B) {
	const N = 1000
	rng := workload.NewRand(1)
	values := make([]int, N)
	for i := range values {
		values[i] = rng.Intn(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h := fibonacci.New(core.WithCapacity(core.Unbounded))
		for _, v := range values {
			_, _ = h.Insert(v)
		}
		for h.Size() > 0 {
			_, _, _ = h.ExtractMin()
		}
	}
}
