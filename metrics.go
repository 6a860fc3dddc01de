package sortbench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting run metrics.
// Implement this interface to feed benchmark timings into a monitoring system.
type MetricsCollector interface {
	// RecordGenerate is called after the generation phase.
	// count is the number of records requested.
	RecordGenerate(mode Mode, count int, duration time.Duration, err error)

	// RecordOrder is called after the timed ordering phase.
	// k is the length of the ordered prefix.
	RecordOrder(mode Mode, k int, duration time.Duration, err error)

	// RecordRelease is called after arena-allocated records are released.
	RecordRelease(bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(Mode, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordOrder(Mode, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordRelease(int64)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GenerateRecords    atomic.Int64
	GenerateTotalNanos atomic.Int64
	OrderCount         atomic.Int64
	OrderErrors        atomic.Int64
	OrderTotalNanos    atomic.Int64
	ReleaseCount       atomic.Int64
	ReleasedBytes      atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(_ Mode, count int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateRecords.Add(int64(count))
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
	}
}

// RecordOrder implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOrder(_ Mode, _ int, duration time.Duration, err error) {
	b.OrderCount.Add(1)
	b.OrderTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OrderErrors.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int64) {
	b.ReleaseCount.Add(1)
	b.ReleasedBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:    b.GenerateCount.Load(),
		GenerateErrors:   b.GenerateErrors.Load(),
		GenerateRecords:  b.GenerateRecords.Load(),
		GenerateAvgNanos: avg(b.GenerateTotalNanos.Load(), b.GenerateCount.Load()),
		OrderCount:       b.OrderCount.Load(),
		OrderErrors:      b.OrderErrors.Load(),
		OrderAvgNanos:    avg(b.OrderTotalNanos.Load(), b.OrderCount.Load()),
		ReleaseCount:     b.ReleaseCount.Load(),
		ReleasedBytes:    b.ReleasedBytes.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateCount    int64
	GenerateErrors   int64
	GenerateRecords  int64
	GenerateAvgNanos int64
	OrderCount       int64
	OrderErrors      int64
	OrderAvgNanos    int64
	ReleaseCount     int64
	ReleasedBytes    int64
}
