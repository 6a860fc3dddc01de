package benchmark_test

import (
	"runtime"
	"testing"
)

// ============================================================================
// BENCHMARK METHODOLOGY: Clean, Reproducible Measurements
// ============================================================================
//
// Ordering is destructive, so every measured iteration starts from a fresh
// copy of the pristine input. Key principles:
//
// 1. WARMUP PHASE: Run a few iterations before measurement to warm caches
//    and branch predictors.
//
// 2. GC CONTROL: Force GC before measurement to clear allocation pressure
//    from setup (record generation allocates hundreds of MB at 1M records).
//
// 3. ONE ORDERING PER ITERATION: Each b.N iteration = exactly 1 run of the
//    strategy over the full collection.
//
// 4. RESTORE UNTIMED: The input copy runs between StopTimer/StartTimer. Its
//    overhead is negligible against an ordering of 10k+ elements.
//
// 5. VALIDATION SEPARATE: Result checks run after the loop, never inside it.
//
// Usage:
//
//   func BenchmarkSort(b *testing.B) {
//       pristine := newRecords(b, n)
//       work := make([]model.Record, n)
//
//       BenchRestoreLoop(b,
//           func() { copy(work, pristine) },
//           func() { order.Sort(model.Values(work)) },
//       )
//   }

// WarmupIterations is the number of warmup iterations before measurement.
const WarmupIterations = 3

// BenchLoop runs a non-destructive benchmark with proper methodology:
// 1. Warmup phase (WarmupIterations)
// 2. GC to clear setup allocations
// 3. Reset timer
// 4. Run b.N iterations
func BenchLoop(b *testing.B, fn func(i int)) {
	b.Helper()

	// Phase 1: Warmup
	for i := 0; i < WarmupIterations; i++ {
		fn(i)
	}

	// Phase 2: GC to clear setup allocations
	runtime.GC()

	// Phase 3: Reset and run
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fn(i)
	}
}

// BenchRestoreLoop runs a destructive benchmark. restore resets the input
// outside the timer before every call of fn.
func BenchRestoreLoop(b *testing.B, restore, fn func()) {
	b.Helper()
	BenchRestoreLoopWithCallback(b, restore, fn, nil)
}

// BenchRestoreLoopWithCallback is BenchRestoreLoop with an optional
// post-measurement callback for validation.
func BenchRestoreLoopWithCallback(b *testing.B, restore, fn func(), postMeasure func()) {
	b.Helper()

	// Phase 1: Warmup
	for i := 0; i < WarmupIterations; i++ {
		restore()
		fn()
	}

	// Phase 2: GC
	restore()
	runtime.GC()

	// Phase 3: Measure
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if i > 0 {
			b.StopTimer()
			restore()
			b.StartTimer()
		}
		fn()
	}

	b.StopTimer()

	// Phase 4: Post-measurement validation (not timed)
	if postMeasure != nil {
		postMeasure()
	}
}
