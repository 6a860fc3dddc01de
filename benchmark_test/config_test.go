package benchmark_test

import (
	"testing"

	"github.com/hupe1980/sortbench/internal/gen"
	"github.com/hupe1980/sortbench/model"
	"github.com/hupe1980/sortbench/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard collection sizes.
const (
	sizeSmall  = 10_000    // Quick iteration
	sizeMedium = 100_000   // Default CI
	sizeLarge  = 1_000_000 // Same as the command line
)

// Standard ranks for partial strategies.
const (
	rankSmall  = 10
	rankMedium = 1000
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// ============================================================================
// Benchmark Helpers
// ============================================================================

// benchSizes returns the collection sizes to run; the medium size is skipped
// under -short.
func benchSizes() []int {
	if testing.Short() {
		return []int{sizeSmall}
	}
	return []int{sizeSmall, sizeMedium}
}

// newRecords generates n full-width records from the benchmark seed.
func newRecords(b *testing.B, n int) []model.Record {
	b.Helper()
	return gen.Records(n, gen.NewRNG(benchSeed))
}

// keyPattern names a key distribution and produces it.
type keyPattern struct {
	name string
	keys func(n int) []model.Key
}

// keyPatterns covers random input plus the inputs that stress heap and
// partition based strategies.
func keyPatterns() []keyPattern {
	rng := testutil.NewRNG(benchSeed)
	return []keyPattern{
		{"random", func(n int) []model.Key { return model.Keys(rng.Records(n)) }},
		{"ascending", testutil.AscendingKeys},
		{"descending", testutil.DescendingKeys},
		{"few_distinct", func(n int) []model.Key { return rng.DuplicateKeys(n, 16) }},
	}
}
