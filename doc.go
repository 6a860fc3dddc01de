// Package sortbench measures how fast different strategies bring the smallest
// records of a large in-memory collection into ascending key order.
//
// Each run generates a fresh collection of wide records (a 64-bit key plus a
// float and string payload), orders it exactly once with the selected
// strategy, times only that step, and verifies the leading keys.
//
// # Quick Start
//
//	ctx := context.Background()
//	b, _ := sortbench.New(sortbench.WithSeed(42))
//	res, _ := b.Run(ctx, sortbench.ModePartialSort)
//	res.WriteTo(os.Stdout)
//
// # Strategies
//
// Six modes combine an ordering strategy with a way of reaching the records:
//
//	sort                  full sort of inline records
//	partial_sort          heap-based partial sort of inline records
//	quickselsort          quickselect of the k smallest, then sort of that prefix
//	sort_indexes          full sort of a position permutation
//	partial_sort_indexes  partial sort of a position permutation
//	partial_sort_ptr      partial sort of arena-allocated record handles
//
// Partial strategies guarantee only the first k positions (WithRank, default
// 1000). Everything past k is left in unspecified order.
//
// # Output
//
// A Result renders as two lines:
//
//	partial_sort: total_time=12ms
//	1847362 90472611 ...
//
// The time is whole milliseconds when at least one millisecond elapsed,
// otherwise whole microseconds.
//
// # Memory
//
// Pointer mode draws records from a slab arena charged against an optional
// budget (WithMemoryLimit). The arena is released in bulk at the end of the
// run; MemoryUsage and PeakMemoryUsage expose the accounting.
package sortbench
