package funi

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordUnique is called after each deduplication call.
	// rows is the input height, unique the number of unique rows found
	// (0 on error).
	RecordUnique(method Method, rows, unique int, duration time.Duration, err error)

	// RecordBatch is called after each batch run.
	// tables is the number of tables attempted, failed is the number that
	// failed or were canceled.
	RecordBatch(tables, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordUnique(Method, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	UniqueCount        atomic.Int64
	UniqueErrors       atomic.Int64
	UniqueTotalNanos   atomic.Int64
	RowsProcessed      atomic.Int64
	RowsUnique         atomic.Int64
	LexicographicCount atomic.Int64
	ProjectionCount    atomic.Int64
	BatchCount         atomic.Int64
	BatchTables        atomic.Int64
	BatchFailed        atomic.Int64
	BatchTotalNanos    atomic.Int64
}

// RecordUnique implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnique(method Method, rows, unique int, duration time.Duration, err error) {
	b.UniqueCount.Add(1)
	b.UniqueTotalNanos.Add(duration.Nanoseconds())
	if method == MethodProjection {
		b.ProjectionCount.Add(1)
	} else {
		b.LexicographicCount.Add(1)
	}
	if err != nil {
		b.UniqueErrors.Add(1)
		return
	}
	b.RowsProcessed.Add(int64(rows))
	b.RowsUnique.Add(int64(unique))
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(tables, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchTables.Add(int64(tables))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		UniqueCount:        b.UniqueCount.Load(),
		UniqueErrors:       b.UniqueErrors.Load(),
		UniqueAvgNanos:     avg(b.UniqueTotalNanos.Load(), b.UniqueCount.Load()),
		RowsProcessed:      b.RowsProcessed.Load(),
		RowsUnique:         b.RowsUnique.Load(),
		LexicographicCount: b.LexicographicCount.Load(),
		ProjectionCount:    b.ProjectionCount.Load(),
		BatchCount:         b.BatchCount.Load(),
		BatchTables:        b.BatchTables.Load(),
		BatchFailed:        b.BatchFailed.Load(),
		BatchAvgNanos:      avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
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
	UniqueCount        int64
	UniqueErrors       int64
	UniqueAvgNanos     int64
	RowsProcessed      int64
	RowsUnique         int64
	LexicographicCount int64
	ProjectionCount    int64
	BatchCount         int64
	BatchTables        int64
	BatchFailed        int64
	BatchAvgNanos      int64
}
