// Package builder is the public facade of the Switchboard library. It
// re-exports the internal constructors, configuration records, and options so
// calling code imports a single package.
package builder

import (
	"github.com/joeydtaylor/switchboard/pkg/internal/basecodec"
	"github.com/joeydtaylor/switchboard/pkg/internal/types"
)

type RawEncode = types.RawEncode

type RawDecode = types.RawDecode

type BaseEncoder = types.BaseEncoder

type BaseDecoder = types.BaseDecoder

type UnibaseDecoder = types.UnibaseDecoder

type ComposedDecoder = types.ComposedDecoder

type MultibaseCodec = types.MultibaseCodec

type CodecConfig = basecodec.Config

type PrefixMismatchError = basecodec.PrefixMismatchError

type UnsupportedPrefixError = basecodec.UnsupportedPrefixError

type AlphabetError = basecodec.AlphabetError

// ErrEmptyText is returned by every decoder for empty input.
var ErrEmptyText = basecodec.ErrEmptyText

type AlphabetCodecConfig = basecodec.AlphabetConfig

// SettingsCodecConfig mirrors basecodec.SettingsConfig at the facade so
// example and consumer code never has to import the internal packages.
type SettingsCodecConfig[S any] struct {
	Name     string
	Prefix   rune
	Settings S
	Encode   func(data []byte, settings S) string
	Decode   func(text string, settings S) ([]byte, error)
}

// NewEncoder creates a prefix-emitting encoder around a raw encode function.
func NewEncoder(name string, prefix rune, raw RawEncode, options ...types.Option[types.BaseEncoder]) BaseEncoder {
	return basecodec.NewEncoder(name, prefix, raw, options...)
}

// NewDecoder creates a prefix-validating decoder around a raw decode function.
func NewDecoder(name string, prefix rune, raw RawDecode, options ...types.Option[types.UnibaseDecoder]) UnibaseDecoder {
	return basecodec.NewDecoder(name, prefix, raw, options...)
}

// ComposedDecoderFrom lifts a decoder into a composed decoder, the entry
// point for building multi-base decoders without an initial Or chain.
func ComposedDecoderFrom(decoder BaseDecoder, options ...types.Option[types.ComposedDecoder]) ComposedDecoder {
	return basecodec.ComposedFrom(decoder, options...)
}

// CodecFrom constructs a codec from an already-bound raw encode/decode pair.
func CodecFrom(cfg CodecConfig, options ...types.Option[types.MultibaseCodec]) MultibaseCodec {
	return basecodec.From(cfg, options...)
}

// CodecWithSettings constructs a codec whose raw functions receive a fixed
// settings value on every call.
func CodecWithSettings[S any](cfg SettingsCodecConfig[S], options ...types.Option[types.MultibaseCodec]) MultibaseCodec {
	return basecodec.WithSettings(basecodec.SettingsConfig[S]{
		Name:     cfg.Name,
		Prefix:   cfg.Prefix,
		Settings: cfg.Settings,
		Encode:   cfg.Encode,
		Decode:   cfg.Decode,
	}, options...)
}

// CodecWithAlphabet constructs a codec whose raw functions receive a fixed
// alphabet string, with decode-side alphabet pre-validation.
func CodecWithAlphabet(cfg AlphabetCodecConfig, options ...types.Option[types.MultibaseCodec]) MultibaseCodec {
	return basecodec.WithAlphabet(cfg, options...)
}

// EncoderWithLogger attaches loggers to an encoder at construction.
func EncoderWithLogger(loggers ...types.Logger) types.Option[types.BaseEncoder] {
	return basecodec.EncoderWithLogger(loggers...)
}

// DecoderWithLogger attaches loggers to a single-prefix decoder at construction.
func DecoderWithLogger(loggers ...types.Logger) types.Option[types.UnibaseDecoder] {
	return basecodec.DecoderWithLogger(loggers...)
}

// ComposedWithLogger attaches loggers to a composed decoder at construction.
func ComposedWithLogger(loggers ...types.Logger) types.Option[types.ComposedDecoder] {
	return basecodec.ComposedWithLogger(loggers...)
}

// CodecWithLogger attaches loggers to both of a codec's sub-components at construction.
func CodecWithLogger(loggers ...types.Logger) types.Option[types.MultibaseCodec] {
	return basecodec.CodecWithLogger(loggers...)
}
