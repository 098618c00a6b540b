package gridcore

import (
	"log/slog"

	"github.com/hupe1980/gridcore/filter"
)

type options struct {
	rowHeight        float64
	viewportHeight   float64
	overscan         int
	pinnedTop        int
	pinnedBottom     int
	epsilon          float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Table constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. scroll-geometry constructor variants).
type Option func(*options)

// WithScrollConfig configures the scroll geometry used by window queries:
// the fixed pixel height of a row, the pixel height of the viewport, and
// the number of extra rows rendered above and below the visible range.
//
// Non-positive rowHeight or viewportHeight values fall back to the
// defaults (36 and 600); a negative overscan falls back to 5. The same
// values can be changed later with Table.SetScrollConfig.
func WithScrollConfig(rowHeight, viewportHeight float64, overscan int) Option {
	return func(o *options) {
		if rowHeight > 0 {
			o.rowHeight = rowHeight
		}
		if viewportHeight > 0 {
			o.viewportHeight = viewportHeight
		}
		if overscan >= 0 {
			o.overscan = overscan
		}
	}
}

// WithPinnedRows configures rows rendered unconditionally at the grid edges.
// The first top rows and last bottom rows of the view are excluded from
// scrolling; only the middle segment scrolls.
func WithPinnedRows(top, bottom int) Option {
	return func(o *options) {
		if top >= 0 {
			o.pinnedTop = top
		}
		if bottom >= 0 {
			o.pinnedBottom = bottom
		}
	}
}

// WithEpsilon configures the tolerance used by numeric filter comparisons.
// Pass 0 or a negative value to keep the default (1e-9).
//
// Equality and the non-strict orderings are relaxed by epsilon; strict
// comparisons are not.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		if epsilon > 0 {
			o.epsilon = epsilon
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &gridcore.BasicMetricsCollector{}
//	tbl := gridcore.New(gridcore.WithMetricsCollector(metrics))
//	// ... use tbl ...
//	stats := metrics.GetStats()
//	fmt.Printf("Ingests: %d, Avg latency: %dns\n", stats.IngestCount, stats.IngestAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := gridcore.NewJSONLogger(slog.LevelInfo)
//	tbl := gridcore.New(gridcore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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
		rowHeight:        DefaultRowHeight,
		viewportHeight:   DefaultViewportHeight,
		overscan:         DefaultOverscan,
		epsilon:          filter.DefaultEpsilon,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
