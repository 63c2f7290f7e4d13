package persistence

import "github.com/hupe1980/flattree/codec"

// Option configures writing and reading blobs.
type Option func(*options)

type options struct {
	compression Compression
	codec       codec.Codec
}

func applyOptions(opts []Option) options {
	o := options{
		compression: CompressionNone,
		codec:       codec.Default,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCompression compresses written bodies with c. Bodies that do not
// shrink by at least 10% are stored uncompressed.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec sets the codec for element types without a fixed binary size.
// On read, it resolves codec names that codec.ByName does not know.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}
