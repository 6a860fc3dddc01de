// Package resource implements a memory budget for the record arena.
//
// The Controller tracks how many bytes the benchmark has reserved for
// heap-allocated records and, when configured with a limit, refuses
// reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(ctx, 64<<20); err != nil {
//	    // ErrMemoryLimitExceeded - nothing was reserved
//	}
//	defer rc.ReleaseMemory(64 << 20)
//
// Acquisition never blocks. A limit of 0 tracks usage without enforcing it.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
