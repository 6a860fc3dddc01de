// Package arena provides a slab allocator for individually addressed records.
//
// The pointer-indirection benchmark orders handles to heap-allocated records.
// Instead of allocating every record on its own, the arena carves them out of
// fixed-size slabs and releases all of them at once with Free.
//
// # Features
//
//   - Stable addresses: slabs never move, handles stay valid until Free
//   - Optional memory budget via MemoryAcquirer, charged per slab
//   - Generation tracking to detect use after Free
//
// # Safety
//
// An Arena is not safe for concurrent use. Handles must not be dereferenced
// after Free; Free zeroes every slab so stale reads observe zero values.
package arena
