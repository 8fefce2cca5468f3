// Package basecodec offers functional options applicable at component
// construction. Codec components are immutable once built, so options are the
// only configuration point; attaching loggers is the one concern they cover.
package basecodec

import (
	"github.com/joeydtaylor/switchboard/pkg/internal/types"
)

// EncoderWithLogger attaches loggers to an encoder at construction.
func EncoderWithLogger(loggers ...types.Logger) types.Option[types.BaseEncoder] {
	return func(e types.BaseEncoder) {
		e.ConnectLogger(loggers...)
	}
}

// DecoderWithLogger attaches loggers to a single-prefix decoder at construction.
func DecoderWithLogger(loggers ...types.Logger) types.Option[types.UnibaseDecoder] {
	return func(d types.UnibaseDecoder) {
		d.ConnectLogger(loggers...)
	}
}

// ComposedWithLogger attaches loggers to a composed decoder at construction.
func ComposedWithLogger(loggers ...types.Logger) types.Option[types.ComposedDecoder] {
	return func(c types.ComposedDecoder) {
		c.ConnectLogger(loggers...)
	}
}

// CodecWithLogger attaches loggers to both of a codec's sub-components at construction.
func CodecWithLogger(loggers ...types.Logger) types.Option[types.MultibaseCodec] {
	return func(c types.MultibaseCodec) {
		c.ConnectLogger(loggers...)
	}
}
