package flattree

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/flattree/core"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    encodeCounter  *prometheus.CounterVec
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordEncode(v core.Variant, nodes int, duration time.Duration, err error) {
//	    p.encodeCounter.WithLabelValues(v.String()).Inc()
//	}
type MetricsCollector interface {
	// RecordEncode is called after each encode.
	// nodes is the number of encoded nodes, err is nil if successful.
	RecordEncode(v core.Variant, nodes int, duration time.Duration, err error)

	// RecordDecode is called after each decode through Decode.
	RecordDecode(v core.Variant, duration time.Duration)

	// RecordQuery is called after each path query through Query.
	RecordQuery(found bool, duration time.Duration)

	// RecordSave is called after each Save with the blob size in bytes.
	RecordSave(bytes int, duration time.Duration, err error)

	// RecordLoad is called after each Load.
	RecordLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(core.Variant, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(core.Variant, time.Duration)            {}
func (NoopMetricsCollector) RecordQuery(bool, time.Duration)                     {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)                {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeNodes      atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	QueryCount       atomic.Int64
	QueryMisses      atomic.Int64
	QueryTotalNanos  atomic.Int64
	SaveCount        atomic.Int64
	SaveErrors       atomic.Int64
	SaveBytes        atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(_ core.Variant, nodes int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeNodes.Add(int64(nodes))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(core.Variant, time.Duration) {
	b.DecodeCount.Add(1)
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(found bool, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.QueryMisses.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(int64(bytes))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeNodes:    b.EncodeNodes.Load(),
		EncodeAvgNanos: avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:    b.DecodeCount.Load(),
		QueryCount:     b.QueryCount.Load(),
		QueryMisses:    b.QueryMisses.Load(),
		QueryAvgNanos:  avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		SaveBytes:      b.SaveBytes.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
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
	EncodeCount    int64
	EncodeErrors   int64
	EncodeNodes    int64
	EncodeAvgNanos int64
	DecodeCount    int64
	QueryCount     int64
	QueryMisses    int64
	QueryAvgNanos  int64
	SaveCount      int64
	SaveErrors     int64
	SaveBytes      int64
	LoadCount      int64
	LoadErrors     int64
}
