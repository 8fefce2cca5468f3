// Package basecodec implements the dispatch and composition core for
// self-describing multibase text encodings within the Switchboard toolkit.
// A multibase string carries a one-rune prefix identifying the base encoding
// that produced the rest of the text, so a consumer can decode it without
// knowing in advance which encoding was used.
//
// The package supplies three composable layers. An Encoder pairs a raw
// base-encoding function with a fixed prefix and emits prefixed text. A
// Decoder validates and strips that prefix before delegating to a raw
// base-decoding function, and composes with other decoders via Or. A
// Composed decoder keeps a prefix-keyed table of single-prefix decoders and
// dispatches on the first rune of its input. A MultibaseCodec bundles one
// encoder/decoder pair under a single name and prefix; the From,
// WithSettings, and WithAlphabet factories are the usual way to build one.
//
// The raw base algorithms themselves (hex, base32, base58, base64 digit
// arithmetic) are external collaborators supplied by the caller; this
// package treats them as opaque pure functions and ships no alphabet
// registry of its own. All values are immutable after construction, so every
// component is safe to share across goroutines without synchronization.
package basecodec

import (
	"github.com/joeydtaylor/switchboard/pkg/internal/types"
	"github.com/joeydtaylor/switchboard/pkg/internal/utils"
)

// Config describes a codec built from an already-bound raw encode/decode
// pair. It is the canonical factory input.
type Config struct {
	Name   string          // Human-readable base encoding name, e.g. "base58btc".
	Prefix rune            // Multibase prefix rune, e.g. 'z'.
	Encode types.RawEncode // Raw encode function.
	Decode types.RawDecode // Raw decode function.
}

// SettingsConfig describes a codec whose raw functions take a fixed settings
// value (a padding flag, a case mode, a version byte) on every call. The
// settings are captured at construction time, so the codec's behavior is
// fully determined by its configuration.
type SettingsConfig[S any] struct {
	Name     string
	Prefix   rune
	Settings S
	Encode   func(data []byte, settings S) string
	Decode   func(text string, settings S) ([]byte, error)
}

// AlphabetConfig describes a codec whose raw functions take a fixed alphabet
// string. Decoding additionally pre-validates every rune of the input against
// the alphabet before the raw decoder runs, because raw decoders for some
// bases wrap or truncate on out-of-alphabet input instead of failing cleanly.
type AlphabetConfig struct {
	Name     string
	Prefix   rune
	Alphabet string
	Encode   func(data []byte, alphabet string) string
	Decode   func(text string, alphabet string) ([]byte, error)
}

// Codec bundles the encoder and decoder for one base encoding. Its Encode and
// Decode methods are thin pass-throughs; the sub-components are reachable via
// Encoder and Decoder and are never shared with another Codec.
type Codec struct {
	componentMetadata types.ComponentMetadata
	encoder           types.BaseEncoder
	decoder           types.UnibaseDecoder
}

// From constructs a MultibaseCodec from a Config.
func From(cfg Config, options ...types.Option[types.MultibaseCodec]) types.MultibaseCodec {
	c := &Codec{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MULTIBASE_CODEC",
			Name: cfg.Name,
		},
		encoder: NewEncoder(cfg.Name, cfg.Prefix, cfg.Encode),
		decoder: NewDecoder(cfg.Name, cfg.Prefix, cfg.Decode),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithSettings constructs a MultibaseCodec whose raw functions receive
// cfg.Settings on every call.
func WithSettings[S any](cfg SettingsConfig[S], options ...types.Option[types.MultibaseCodec]) types.MultibaseCodec {
	settings := cfg.Settings
	encode := cfg.Encode
	decode := cfg.Decode
	return From(Config{
		Name:   cfg.Name,
		Prefix: cfg.Prefix,
		Encode: func(data []byte) string { return encode(data, settings) },
		Decode: func(text string) ([]byte, error) { return decode(text, settings) },
	}, options...)
}

// WithAlphabet constructs a MultibaseCodec whose raw functions receive
// cfg.Alphabet on every call, and whose decoder rejects any input rune
// outside the alphabet with an AlphabetError before the raw decoder is
// invoked. An empty remainder decodes to empty bytes without consulting the
// raw decoder. The alphabet membership set is built once here.
func WithAlphabet(cfg AlphabetConfig, options ...types.Option[types.MultibaseCodec]) types.MultibaseCodec {
	name := cfg.Name
	alphabet := cfg.Alphabet
	encode := cfg.Encode
	decode := cfg.Decode

	member := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		member[r] = struct{}{}
	}

	return From(Config{
		Name:   name,
		Prefix: cfg.Prefix,
		Encode: func(data []byte) string { return encode(data, alphabet) },
		Decode: func(text string) ([]byte, error) {
			if text == "" {
				// Encoding empty bytes yields an empty payload, so an
				// empty remainder decodes to empty bytes; raw decoders
				// for some bases reject a zero-length string instead.
				return []byte{}, nil
			}
			position := 0
			for _, r := range text {
				if _, ok := member[r]; !ok {
					return nil, &AlphabetError{Encoding: name, Char: r, Position: position}
				}
				position++
			}
			return decode(text, alphabet)
		},
	}, options...)
}

// Name returns the codec's base encoding name.
func (c *Codec) Name() string {
	return c.componentMetadata.Name
}

// Prefix returns the codec's multibase prefix rune.
func (c *Codec) Prefix() rune {
	return c.encoder.Prefix()
}

// Encode delegates to the codec's encoder.
func (c *Codec) Encode(data []byte) string {
	return c.encoder.Encode(data)
}

// Decode delegates to the codec's decoder.
func (c *Codec) Decode(text string) ([]byte, error) {
	return c.decoder.Decode(text)
}

// Encoder returns the codec's encoder component.
func (c *Codec) Encoder() types.BaseEncoder {
	return c.encoder
}

// Decoder returns the codec's decoder component.
func (c *Codec) Decoder() types.UnibaseDecoder {
	return c.decoder
}

// ConnectLogger attaches loggers to both sub-components.
func (c *Codec) ConnectLogger(loggers ...types.Logger) {
	c.encoder.ConnectLogger(loggers...)
	c.decoder.ConnectLogger(loggers...)
}

// GetComponentMetadata returns the codec's identifying metadata.
func (c *Codec) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}
