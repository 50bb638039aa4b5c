package hardfloat

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting batch evaluation
// metrics. Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBatch is called after each batch evaluation.
	// op names the operation, count is the number of elements evaluated,
	// sticky is the OR of every element's flags, duration is the total time
	// taken and err is nil if successful.
	RecordBatch(op string, count int, sticky Flags, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(string, int, Flags, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount   atomic.Int64
	BatchErrors  atomic.Int64
	Elements     atomic.Int64
	TotalNanos   atomic.Int64
	InvalidCount atomic.Int64
	DivByZero    atomic.Int64
	Overflows    atomic.Int64
	Underflows   atomic.Int64
	InexactCount atomic.Int64
}

// RecordBatch implements MetricsCollector. Flag counters count batches that
// raised the flag, not elements.
func (b *BasicMetricsCollector) RecordBatch(op string, count int, sticky Flags, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
		return
	}
	b.Elements.Add(int64(count))
	for _, c := range []struct {
		flag    Flags
		counter *atomic.Int64
	}{
		{Invalid, &b.InvalidCount},
		{DivideByZero, &b.DivByZero},
		{Overflow, &b.Overflows},
		{Underflow, &b.Underflows},
		{Inexact, &b.InexactCount},
	} {
		if sticky.Has(c.flag) {
			c.counter.Add(1)
		}
	}
}

// Stats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) Stats() MetricsStats {
	batches := b.BatchCount.Load()
	var avg int64
	if batches > 0 {
		avg = b.TotalNanos.Load() / batches
	}
	return MetricsStats{
		BatchCount:       batches,
		BatchErrors:      b.BatchErrors.Load(),
		Elements:         b.Elements.Load(),
		AvgBatchNanos:    avg,
		InvalidBatches:   b.InvalidCount.Load(),
		DivByZeroBatches: b.DivByZero.Load(),
		OverflowBatches:  b.Overflows.Load(),
		UnderflowBatches: b.Underflows.Load(),
		InexactBatches:   b.InexactCount.Load(),
	}
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	BatchCount       int64
	BatchErrors      int64
	Elements         int64
	AvgBatchNanos    int64
	InvalidBatches   int64
	DivByZeroBatches int64
	OverflowBatches  int64
	UnderflowBatches int64
	InexactBatches   int64
}
