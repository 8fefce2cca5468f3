// pkg/internal/types/codec.go
package types

// RawEncode converts binary data into base-encoded text. Implementations are
// supplied by the caller (stdlib hex/base32/base64, mr-tron/base58, and so on)
// and are assumed to be pure and total over their input.
type RawEncode func(data []byte) string

// RawDecode converts base-encoded text (without the multibase prefix) back
// into binary data. Any error it returns is surfaced to the caller unchanged.
type RawDecode func(text string) ([]byte, error)

// BaseEncoder emits self-describing multibase text: the configured prefix rune
// followed by the raw encoding of the input bytes.
type BaseEncoder interface {
	Name() string
	Prefix() rune
	Encode(data []byte) string
	ConnectLogger(loggers ...Logger)
	GetComponentMetadata() ComponentMetadata
}

// BaseDecoder is the decode-and-compose surface shared by single-prefix and
// composed decoders. Every decoder produced by this library satisfies exactly
// one of the two variants, UnibaseDecoder or ComposedDecoder, in addition to
// BaseDecoder; composition distinguishes the variants by type, never by a
// sentinel prefix value.
type BaseDecoder interface {
	Decode(text string) ([]byte, error)

	// Or combines this decoder with another into a composed decoder able to
	// dispatch on either operand's prefixes. Both operands are left
	// untouched. On a duplicate prefix the right operand wins.
	Or(other BaseDecoder) ComposedDecoder
}

// UnibaseDecoder decodes multibase text carrying one specific prefix.
type UnibaseDecoder interface {
	BaseDecoder
	Name() string
	Prefix() rune
	ConnectLogger(loggers ...Logger)
	GetComponentMetadata() ComponentMetadata
}

// ComposedDecoder decodes multibase text for any of a set of registered
// prefixes, dispatching on the first rune of the input.
type ComposedDecoder interface {
	BaseDecoder

	// Prefixes returns the registered prefix runes in ascending order.
	Prefixes() []rune

	// Decoders returns the registered single-prefix decoders ordered by
	// prefix. The returned slice is a copy.
	Decoders() []UnibaseDecoder

	ConnectLogger(loggers ...Logger)
	GetComponentMetadata() ComponentMetadata
}

// MultibaseCodec bundles the encoder and decoder for one base encoding under
// a single name/prefix pair. Encode and Decode are thin pass-throughs to the
// underlying components, which are also reachable directly via Encoder and
// Decoder.
type MultibaseCodec interface {
	Name() string
	Prefix() rune
	Encode(data []byte) string
	Decode(text string) ([]byte, error)
	Encoder() BaseEncoder
	Decoder() UnibaseDecoder
	ConnectLogger(loggers ...Logger)
	GetComponentMetadata() ComponentMetadata
}
