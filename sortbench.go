package sortbench

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/sortbench/internal/arena"
	"github.com/hupe1980/sortbench/internal/gen"
	"github.com/hupe1980/sortbench/internal/order"
	"github.com/hupe1980/sortbench/internal/resource"
	"github.com/hupe1980/sortbench/internal/timing"
	"github.com/hupe1980/sortbench/internal/verify"
	"github.com/hupe1980/sortbench/model"
)

// Bench runs one ordering strategy per call over a freshly generated
// collection. A Bench is not safe for concurrent use.
type Bench struct {
	opts options
	rc   *resource.Controller
}

// New creates a Bench configured by opts.
func New(opts ...Option) (*Bench, error) {
	o := applyOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Bench{
		opts: o,
		rc:   resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}),
	}, nil
}

// MemoryUsage returns the bytes currently reserved by record arenas.
func (b *Bench) MemoryUsage() int64 {
	return b.rc.MemoryUsage()
}

// PeakMemoryUsage returns the highest arena reservation seen so far.
func (b *Bench) PeakMemoryUsage() int64 {
	return b.rc.PeakMemoryUsage()
}

// collection is the generated data of one run together with the view the
// ordering step works on.
type collection struct {
	recs []model.Record
	ptrs []*model.Record
	view model.KeyView
	idx  *model.IndexView
}

// Run generates the collection for mode, orders it once under the wall
// clock, and verifies the reported prefix.
//
// Only the ordering step is timed. For index modes the identity permutation is
// built inside the timed section.
func (b *Bench) Run(ctx context.Context, mode Mode) (*Result, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := b.opts.seed
	if !b.opts.hasSeed {
		seed = gen.RandomSeed()
	}

	n := b.opts.size
	k := min(b.opts.rank, n)
	logger := b.opts.logger.WithMode(mode).WithCount(n)
	if mode.Partial() {
		logger = logger.WithRank(k)
	}

	var a *arena.Arena[model.Record]
	if mode.Indirection() == Pointer {
		slabSize := b.opts.slabSize
		if slabSize <= 0 {
			slabSize = min(arena.DefaultSlabSize, n)
		}
		a = arena.New[model.Record](slabSize,
			arena.WithMemoryAcquirer(b.rc),
			arena.WithElemSize(model.Size),
		)
		defer func() {
			reserved := int64(a.Stats().BytesReserved)
			logger.LogRelease(ctx, a.String(), reserved)
			a.Free()
			b.opts.metricsCollector.RecordRelease(reserved)
		}()
	}

	start := time.Now()
	c, err := b.generate(ctx, mode, a, n, gen.NewRNG(seed))
	genDur := time.Since(start)

	logger.LogGenerate(ctx, n, seed, genDur, err)
	b.opts.metricsCollector.RecordGenerate(mode, n, genDur, err)

	if err != nil {
		return nil, translateError(mode, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := timing.Run(string(mode), func() error {
		return b.order(mode, c, k)
	})

	logger.LogOrder(ctx, k, m.Elapsed, m.User, m.System, err)
	b.opts.metricsCollector.RecordOrder(mode, k, m.Elapsed, err)

	if err != nil {
		return nil, translateError(mode, err)
	}

	ordered := n
	if mode.Partial() {
		ordered = k
	}

	window := model.PrefixKeys(c.view, min(b.opts.preview+1, ordered))
	if err := verify.Ascending(window); err != nil {
		return nil, translateError(mode, err)
	}
	if c.idx != nil {
		if err := verify.Permutation(c.idx.Index, n); err != nil {
			return nil, translateError(mode, err)
		}
	}

	return &Result{
		Mode:    mode,
		Seed:    seed,
		Size:    n,
		Rank:    k,
		Ordered: ordered,
		Elapsed: m.Elapsed,
		User:    m.User,
		System:  m.System,
		Keys:    window[:min(b.opts.preview, len(window))],
	}, nil
}

func (b *Bench) generate(ctx context.Context, mode Mode, a *arena.Arena[model.Record], n int, src gen.Source) (*collection, error) {
	switch mode.Indirection() {
	case Pointer:
		ptrs, err := gen.Pointers(ctx, a, n, src)
		if err != nil {
			return nil, err
		}
		return &collection{ptrs: ptrs, view: model.Pointers(ptrs)}, nil
	case Index:
		// The view is attached by order once the permutation exists.
		return &collection{recs: gen.Records(n, src)}, nil
	default:
		recs := gen.Records(n, src)
		return &collection{recs: recs, view: model.Values(recs)}, nil
	}
}

func (b *Bench) order(mode Mode, c *collection, k int) error {
	var data sort.Interface
	switch mode.Indirection() {
	case Index:
		c.idx = model.NewIndexView(c.recs)
		c.view = c.idx
		data = c.idx
	case Pointer:
		data = model.Pointers(c.ptrs)
	default:
		data = model.Values(c.recs)
	}

	switch mode {
	case ModeSort, ModeSortIndexes:
		order.Sort(data)
	case ModePartialSort, ModePartialSortIndexes, ModePartialSortPtr:
		order.PartialSort(data, k)
	case ModeQuickSelSort:
		return order.SelectSort(data, k)
	}

	return nil
}
