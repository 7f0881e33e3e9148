package fusedl2

const (
	// DefaultBlockRows is the default number of query rows per tile.
	DefaultBlockRows = 64

	// DefaultBlockCols is the default number of reference rows per tile.
	// 64 float32 dot products per tile keep the scratch buffer well inside
	// L1 alongside a query row of typical embedding dimension.
	DefaultBlockCols = 64
)

type options struct {
	blockRows int
	blockCols int
	workers   int
	squared   bool
	logger    *Logger
	metrics   MetricsCollector
}

func defaultOptions() options {
	return options{
		blockRows: DefaultBlockRows,
		blockCols: DefaultBlockCols,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures assignment behavior.
//
// Tile-shape and worker options are tuning only: any valid combination
// produces the same indices and distances.
type Option func(*options)

// WithBlockRows sets the number of query rows processed per tile.
// Values < 1 keep the default.
func WithBlockRows(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.blockRows = n
		}
	}
}

// WithBlockCols sets the number of reference rows processed per tile.
// Values < 1 keep the default.
func WithBlockCols(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.blockCols = n
		}
	}
}

// WithWorkers caps the number of goroutines used for one assignment.
// 0 (the default) uses runtime.GOMAXPROCS(0); 1 forces serial execution.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.workers = n
		}
	}
}

// WithSquaredDistances reports squared Euclidean distances in the
// optional distance output buffer instead of true (square-rooted)
// distances. The returned indices are unaffected.
func WithSquaredDistances() Option {
	return func(o *options) {
		o.squared = true
	}
}

// WithLogger configures structured logging for assignment operations.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures operational metrics collection.
// If nil is passed, metrics stay disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
