package sortbench

import (
	"log/slog"
)

const (
	// DefaultSize is the number of records generated per run.
	DefaultSize = 1_000_000
	// DefaultRank is the rank k used by the partial strategies.
	DefaultRank = 1000
	// DefaultPreview is the number of leading keys reported after a run.
	DefaultPreview = 100
)

type options struct {
	size             int
	rank             int
	preview          int
	seed             uint64
	hasSeed          bool
	slabSize         int
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Bench.
type Option func(*options)

// WithSize sets the number of generated records.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithRank sets the rank k for partial strategies.
// Values above the collection size are clamped at run time.
func WithRank(k int) Option {
	return func(o *options) {
		o.rank = k
	}
}

// WithPreview sets how many leading keys a Result reports.
func WithPreview(n int) Option {
	return func(o *options) {
		o.preview = n
	}
}

// WithSeed fixes the generator seed, making runs reproducible.
// Without it every run draws a fresh seed from the OS entropy source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithArenaSlabSize sets how many records one arena slab holds in the
// pointer-indirection mode. Non-positive values select the arena default.
func WithArenaSlabSize(n int) Option {
	return func(o *options) {
		o.slabSize = n
	}
}

// WithMemoryLimit caps the bytes the record arena may reserve.
// 0 tracks usage without a limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sortbench.BasicMetricsCollector{}
//	b, _ := sortbench.New(sortbench.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg ordering: %dns\n", stats.OrderCount, stats.OrderAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := sortbench.NewJSONLogger(slog.LevelInfo)
//	b, _ := sortbench.New(sortbench.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		size:             DefaultSize,
		rank:             DefaultRank,
		preview:          DefaultPreview,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

func (o *options) validate() error {
	if o.size <= 0 {
		return ErrInvalidSize
	}
	if o.rank <= 0 {
		return ErrInvalidRank
	}
	if o.preview < 0 {
		return ErrInvalidPreview
	}
	return nil
}
