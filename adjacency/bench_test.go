package adjacency_test

import (
	"testing"

	"github.com/arealstats/besag/adjacency"
)

// benchmarkEncode encodes a w×h rook lattice once per iteration.
func benchmarkEncode(b *testing.B, w, h int) {
	neighbors, err := adjacency.Grid(w, h)
	if err != nil {
		b.Fatalf("Grid failed: %v", err)
	}

	b.ResetTimer() // ignore lattice construction
	for i := 0; i < b.N; i++ {
		if _, err = adjacency.Encode(neighbors); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

// BenchmarkEncode_Small encodes a 10×10 lattice (100 regions).
func BenchmarkEncode_Small(b *testing.B) { benchmarkEncode(b, 10, 10) }

// BenchmarkEncode_Medium encodes a 30×30 lattice (900 regions), roughly
// the size of a county-level study area.
func BenchmarkEncode_Medium(b *testing.B) { benchmarkEncode(b, 30, 30) }

// BenchmarkEncode_Large encodes a 60×60 lattice (3600 regions).
func BenchmarkEncode_Large(b *testing.B) { benchmarkEncode(b, 60, 60) }
