package flattree

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/flattree/codec"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/persistence"
)

// DefaultBitmapThreshold is the fan-out from which VariantAuto picks the
// bitmap encoding.
const DefaultBitmapThreshold = 10

type options struct {
	variant          core.Variant
	bitmapThreshold  uint64
	concurrency      int
	compression      persistence.Compression
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures encoding, persistence and instrumentation.
type Option func(*options)

// WithVariant selects the flat layout. core.VariantAuto is the default.
func WithVariant(v core.Variant) Option {
	return func(o *options) {
		o.variant = v
	}
}

// WithBitmapThreshold sets the maximum fan-out from which VariantAuto
// switches from fixed-slot to bitmap.
func WithBitmapThreshold(n uint64) Option {
	return func(o *options) {
		o.bitmapThreshold = n
	}
}

// WithConcurrency bounds the number of trees EncodeAll encodes at once.
// Values below 1 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithCompression compresses saved bodies.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec configures the codec for element types without a fixed binary size.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &flattree.BasicMetricsCollector{}
//	enc, _ := flattree.Encode(src, -1, kind, flattree.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Encodes: %d, Avg latency: %dns\n", stats.EncodeCount, stats.EncodeAvgNanos)
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
//	logger := flattree.NewJSONLogger(slog.LevelInfo)
//	enc, _ := flattree.Encode(src, -1, kind, flattree.WithLogger(logger))
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
		variant:          core.VariantAuto,
		bitmapThreshold:  DefaultBitmapThreshold,
		concurrency:      runtime.GOMAXPROCS(0),
		compression:      persistence.CompressionNone,
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           discardLogger,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}

func (o options) persistenceOptions() []persistence.Option {
	return []persistence.Option{
		persistence.WithCompression(o.compression),
		persistence.WithCodec(o.codec),
	}
}
