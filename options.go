package funi

import (
	"log/slog"

	"github.com/hupe1980/funi/resource"
)

type options struct {
	method           Method
	stable           bool
	sortedIndex      bool
	returnUnique     bool
	returnIndex      bool
	returnInverse    bool
	metric           []float64
	metricsCollector MetricsCollector
	logger           *Logger
	concurrency      int
	controller       *resource.Controller
}

// Option configures a Unique or UniqueBatch call.
type Option func(*options)

// WithMethod selects the deduplication engine. The default is
// MethodLexicographic.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithMethodName selects the engine by name, see ParseMethod.
func WithMethodName(name string) Option {
	return func(o *options) {
		o.method = ParseMethod(name)
	}
}

// WithStable controls representative choice. When stable (the default),
// every group is represented by its lowest original row index; otherwise
// by whichever row the engine visits first.
func WithStable(stable bool) Option {
	return func(o *options) {
		o.stable = stable
	}
}

// WithSortedIndex reorders the result so that Indices is ascending. Inverse
// is relabeled to match. It applies whenever unique rows or indices are
// returned, not only when indices are.
func WithSortedIndex(sorted bool) Option {
	return func(o *options) {
		o.sortedIndex = sorted
	}
}

// WithReturnUnique selects whether the unique rows are materialized.
func WithReturnUnique(v bool) Option {
	return func(o *options) {
		o.returnUnique = v
	}
}

// WithReturnIndex selects whether the original indices of the unique rows
// are returned.
func WithReturnIndex(v bool) Option {
	return func(o *options) {
		o.returnIndex = v
	}
}

// WithReturnInverse selects whether the inverse map is returned.
func WithReturnInverse(v bool) Option {
	return func(o *options) {
		o.returnInverse = v
	}
}

// WithMetric sets the projection weights, one per column. Ignored by the
// lexicographic engine. The default is all ones.
//
// Example:
//
//	res, _ := funi.Unique(tbl, 0.01,
//	    funi.WithMethod(funi.MethodProjection),
//	    funi.WithMetric(1, 0.5, 0.25))
func WithMetric(weights ...float64) Option {
	return func(o *options) {
		o.metric = weights
	}
}

// WithMetricsCollector configures a metrics collector for monitoring calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &funi.BasicMetricsCollector{}
//	res, _ := funi.Unique(tbl, 1e-6, funi.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Calls: %d, Avg latency: %dns\n", stats.UniqueCount, stats.UniqueAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for calls.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := funi.NewJSONLogger(slog.LevelDebug)
//	res, _ := funi.Unique(tbl, 1e-6, funi.WithLogger(logger))
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

// WithConcurrency bounds how many tables UniqueBatch processes at once.
// Values <= 0 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithResourceController makes UniqueBatch reserve working memory and a
// worker slot per table from rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		method:           MethodLexicographic,
		stable:           true,
		returnUnique:     true,
		returnIndex:      true,
		returnInverse:    true,
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
