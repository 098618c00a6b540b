package gridcore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    ingestCounter    prometheus.Counter
//	    rebuildHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordIngest(rows int, duration time.Duration, err error) {
//	    p.ingestCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordIngest is called after each ingestion.
	// rows is the number of rows ingested, duration is the total time taken,
	// err is nil if successful.
	RecordIngest(rows int, duration time.Duration, err error)

	// RecordRebuild is called after each view rebuild that actually ran
	// the pipeline (not after memoized no-ops).
	// total is the raw row count, filtered is the surviving row count.
	RecordRebuild(total, filtered int, duration time.Duration)

	// RecordQuery is called after each window query.
	RecordQuery(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIngest(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRebuild(int, int, time.Duration)  {}
func (NoopMetricsCollector) RecordQuery(time.Duration)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IngestCount       atomic.Int64
	IngestErrors      atomic.Int64
	IngestRows        atomic.Int64
	IngestTotalNanos  atomic.Int64
	RebuildCount      atomic.Int64
	RebuildTotalNanos atomic.Int64
	QueryCount        atomic.Int64
	QueryTotalNanos   atomic.Int64
}

// RecordIngest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIngest(rows int, duration time.Duration, err error) {
	b.IngestCount.Add(1)
	b.IngestRows.Add(int64(rows))
	b.IngestTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IngestErrors.Add(1)
	}
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(total, filtered int, duration time.Duration) {
	b.RebuildCount.Add(1)
	b.RebuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IngestCount:     b.IngestCount.Load(),
		IngestErrors:    b.IngestErrors.Load(),
		IngestRows:      b.IngestRows.Load(),
		IngestAvgNanos:  b.getAvgNanos(&b.IngestTotalNanos, &b.IngestCount),
		RebuildCount:    b.RebuildCount.Load(),
		RebuildAvgNanos: b.getAvgNanos(&b.RebuildTotalNanos, &b.RebuildCount),
		QueryCount:      b.QueryCount.Load(),
		QueryAvgNanos:   b.getAvgNanos(&b.QueryTotalNanos, &b.QueryCount),
	}
}

func (b *BasicMetricsCollector) getAvgNanos(total, count *atomic.Int64) int64 {
	c := count.Load()
	if c == 0 {
		return 0
	}
	return total.Load() / c
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IngestCount     int64
	IngestErrors    int64
	IngestRows      int64
	IngestAvgNanos  int64
	RebuildCount    int64
	RebuildAvgNanos int64
	QueryCount      int64
	QueryAvgNanos   int64
}
