package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/swalign/align"
	"github.com/katalvlaran/swalign/scoring"
)

// benchmarkAlign is a helper that aligns random sequences of lengths n and
// m using opts. It resets the timer after setup and fails on unexpected
// errors.
func benchmarkAlign(b *testing.B, n, m int, opts align.Options) {
	const alphabet = "ACGT"
	rng := rand.New(rand.NewSource(1)) // fixed seed for reproducible inputs
	table := scoring.Uniform(alphabet, 3, -2)

	seq1 := make([]byte, n)
	seq2 := make([]byte, m)
	for i := range seq1 {
		seq1[i] = alphabet[rng.Intn(len(alphabet))]
	}
	for i := range seq2 {
		seq2[i] = alphabet[rng.Intn(len(alphabet))]
	}
	s1, s2 := string(seq1), string(seq2)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(s1, s2, table, opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_AllowSmall benchmarks the default policy on 100×100 sequences.
func BenchmarkAlign_AllowSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, align.DefaultOptions())
}

// BenchmarkAlign_AllowMedium benchmarks the default policy on 500×500 sequences.
func BenchmarkAlign_AllowMedium(b *testing.B) {
	benchmarkAlign(b, 500, 500, align.DefaultOptions())
}

// BenchmarkAlign_DisallowSmall benchmarks the restrictive policy on 100×100 sequences.
func BenchmarkAlign_DisallowSmall(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Policy = align.DisallowOrthogonalExtension
	benchmarkAlign(b, 100, 100, opts)
}

// BenchmarkAlign_DisallowMedium benchmarks the restrictive policy on 500×500 sequences.
func BenchmarkAlign_DisallowMedium(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Policy = align.DisallowOrthogonalExtension
	benchmarkAlign(b, 500, 500, opts)
}

// BenchmarkAlign_Rectangular benchmarks a short pattern against a long subject.
func BenchmarkAlign_Rectangular(b *testing.B) {
	benchmarkAlign(b, 50, 1000, align.DefaultOptions())
}
