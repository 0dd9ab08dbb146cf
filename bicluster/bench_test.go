// SPDX-License-Identifier: MIT
// Benchmarks for the engine on planted block matrices with deterministic noise.

package bicluster_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bicluster/bicluster"
	"github.com/katalvlaran/bicluster/sparse"
)

// sink defeats dead-code elimination.
var sink []bicluster.Candidate

// benchMatrix plants k diagonal blocks in an n×n matrix and adds n noise entries.
func benchMatrix(b *testing.B, n, k int, seed int64) *sparse.CSC {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	side := n / k
	var entries []sparse.Entry
	for blk := 0; blk < k; blk++ {
		for i := blk * side; i < (blk+1)*side; i++ {
			for j := blk * side; j < (blk+1)*side; j++ {
				entries = append(entries, sparse.Entry{Row: i, Col: j, Val: 1})
			}
		}
	}
	for e := 0; e < n; e++ {
		entries = append(entries, sparse.Entry{Row: rng.Intn(n), Col: rng.Intn(n), Val: 1})
	}
	m, err := sparse.NewCSC(n, n, entries)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkBicluster(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128} {
		a := benchMatrix(b, n, 4, 1337)
		for _, bc := range []struct {
			name string
			opts []bicluster.Option
		}{
			{"plain", nil},
			{"compressed", []bicluster.Option{bicluster.WithCompressionLevel(8)}},
			{"sampled", []bicluster.Option{bicluster.WithRowSampling(16)}},
		} {
			b.Run(fmt.Sprintf("n=%d/%s", n, bc.name), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					got, err := bicluster.Bicluster(a, bc.opts...)
					if err != nil {
						b.Fatal(err)
					}
					sink = got
				}
			})
		}
	}
}
