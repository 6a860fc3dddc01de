package arena

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	"github.com/docker/go-units"
)

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrClosed is returned when allocating from an arena after Free.
	ErrClosed = errors.New("arena: closed")
	// ErrMaxSlabsExceeded is returned when the arena exceeds the maximum number of slabs.
	ErrMaxSlabsExceeded = errors.New("arena: max slabs exceeded")
)

const (
	// DefaultSlabSize is the default number of elements per slab.
	DefaultSlabSize = 4096
	// MaxSlabs limits the number of slabs to prevent runaway growth.
	MaxSlabs = 65536
)

// Stats tracks arena memory usage metrics.
//
//   - SlabsAllocated: total slabs ever created
//   - ActiveSlabs: slabs currently held
//   - BytesReserved: bytes currently charged for held slabs
//   - TotalAllocs: cumulative element allocations
type Stats struct {
	SlabsAllocated uint64
	ActiveSlabs    uint64
	BytesReserved  uint64
	TotalAllocs    uint64
}

type options struct {
	acquirer MemoryAcquirer
	elemSize int64
}

// Option is a configuration option for Arena.
type Option func(*options)

// WithMemoryAcquirer sets the memory acquirer charged for every slab.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// WithElemSize overrides the per-element footprint used for accounting.
// Use it when T references memory that unsafe.Sizeof does not see.
func WithElemSize(size int64) Option {
	return func(o *options) {
		if size > 0 {
			o.elemSize = size
		}
	}
}

// Arena hands out stable pointers to zero-valued T from fixed-size slabs.
type Arena[T any] struct {
	slabSize   int
	elemSize   int64
	slabs      [][]T
	next       int // next free slot in the last slab
	closed     bool
	generation uint32
	acquirer   MemoryAcquirer
	stats      Stats
}

// New creates an Arena whose slabs hold slabSize elements.
// A non-positive slabSize selects DefaultSlabSize.
func New[T any](slabSize int, opts ...Option) *Arena[T] {
	if slabSize <= 0 {
		slabSize = DefaultSlabSize
	}

	var zero T
	o := options{elemSize: int64(unsafe.Sizeof(zero))}
	for _, opt := range opts {
		opt(&o)
	}

	return &Arena[T]{
		slabSize:   slabSize,
		elemSize:   o.elemSize,
		acquirer:   o.acquirer,
		generation: 1,
	}
}

// Alloc returns a pointer to a fresh zero value of T.
func (a *Arena[T]) Alloc(ctx context.Context) (*T, error) {
	if a.closed {
		return nil, ErrClosed
	}

	if len(a.slabs) == 0 || a.next == a.slabSize {
		if err := a.grow(ctx); err != nil {
			return nil, err
		}
	}

	slab := a.slabs[len(a.slabs)-1]
	p := &slab[a.next]
	a.next++
	a.stats.TotalAllocs++

	return p, nil
}

func (a *Arena[T]) slabBytes() int64 {
	return int64(a.slabSize) * a.elemSize
}

func (a *Arena[T]) grow(ctx context.Context) error {
	if len(a.slabs) >= MaxSlabs {
		return ErrMaxSlabsExceeded
	}

	if a.acquirer != nil {
		if err := a.acquirer.AcquireMemory(ctx, a.slabBytes()); err != nil {
			return fmt.Errorf("arena: reserve slab %d: %w", len(a.slabs), err)
		}
	}

	a.slabs = append(a.slabs, make([]T, a.slabSize))
	a.next = 0

	a.stats.SlabsAllocated++
	a.stats.ActiveSlabs++
	a.stats.BytesReserved += uint64(a.slabBytes())

	return nil
}

// Len returns the number of live allocations.
func (a *Arena[T]) Len() int {
	if len(a.slabs) == 0 {
		return 0
	}
	return (len(a.slabs)-1)*a.slabSize + a.next
}

// Generation returns the current generation of the arena.
// It changes when Free releases the slabs.
func (a *Arena[T]) Generation() uint32 {
	return a.generation
}

// Closed reports whether Free has been called.
func (a *Arena[T]) Closed() bool {
	return a.closed
}

// Free releases every slab at once and returns the reserved memory to the
// acquirer. All pointers handed out by Alloc become invalid. Free is
// idempotent; the arena cannot be reused afterwards.
func (a *Arena[T]) Free() {
	if a.closed {
		return
	}

	if a.acquirer != nil && a.stats.BytesReserved > 0 {
		a.acquirer.ReleaseMemory(int64(a.stats.BytesReserved))
	}

	for _, slab := range a.slabs {
		clear(slab)
	}
	a.slabs = nil
	a.next = 0
	a.closed = true
	a.generation++

	a.stats.ActiveSlabs = 0
	a.stats.BytesReserved = 0
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	return a.stats
}

func (a *Arena[T]) String() string {
	return fmt.Sprintf(
		"Arena{slabs: %d, reserved: %s, allocs: %d, gen: %d}",
		a.stats.ActiveSlabs,
		units.BytesSize(float64(a.stats.BytesReserved)),
		a.stats.TotalAllocs,
		a.generation,
	)
}
