package fusedl2

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
//	    assignCounter   prometheus.Counter
//	    assignHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAssign(rows, refs, dim int, duration time.Duration, err error) {
//	    p.assignCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAssign is called after each assignment operation.
	// rows, refs and dim describe the problem size, duration is the total
	// time taken, err is nil if successful.
	RecordAssign(rows, refs, dim int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAssign(int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AssignCount      atomic.Int64
	AssignErrors     atomic.Int64
	AssignTotalNanos atomic.Int64
	RowsAssigned     atomic.Int64
}

// RecordAssign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssign(rows, refs, dim int, duration time.Duration, err error) {
	b.AssignCount.Add(1)
	b.AssignTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AssignErrors.Add(1)
		return
	}
	b.RowsAssigned.Add(int64(rows))
}
