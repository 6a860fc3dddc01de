// Package testutil provides testing utilities for sortbench.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, key fixtures with known order, and
// ground-truth helpers for checking ordering results.
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	recs := rng.Records(1000)
//
// # Ground Truth
//
//	want := testutil.SmallestKeys(recs, k)
//	ok := testutil.SameKeySet(want, got)
package testutil
