package basecodec

import (
	"github.com/joeydtaylor/switchboard/pkg/internal/types"
	"github.com/joeydtaylor/switchboard/pkg/internal/utils"
)

// Encoder wraps a raw base-encoding function with a fixed one-rune multibase
// prefix. It is immutable after construction and safe for concurrent use; the
// raw function is the only behavior it delegates to.
type Encoder struct {
	loggerHub
	componentMetadata types.ComponentMetadata
	name              string
	prefix            rune
	raw               types.RawEncode
}

// NewEncoder creates an Encoder for the given base encoding name, multibase
// prefix, and raw encode function.
func NewEncoder(name string, prefix rune, raw types.RawEncode, options ...types.Option[types.BaseEncoder]) types.BaseEncoder {
	e := &Encoder{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "BASE_ENCODER",
			Name: name,
		},
		name:   name,
		prefix: prefix,
		raw:    raw,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Name returns the human-readable name of the base encoding.
func (e *Encoder) Name() string {
	return e.name
}

// Prefix returns the multibase prefix rune emitted ahead of encoded text.
func (e *Encoder) Prefix() rune {
	return e.prefix
}

// Encode returns the prefix followed by the raw encoding of data. No
// normalization or chunking takes place; everything after the prefix is the
// raw function's output verbatim.
func (e *Encoder) Encode(data []byte) string {
	out := string(e.prefix) + e.raw(data)
	if e.hasLoggers() {
		e.NotifyLoggers(types.DebugLevel, "Encoded multibase text",
			"component", e.componentMetadata, "event", "Encode", "bytes_in", len(data), "runes_out", len(out))
	}
	return out
}

// GetComponentMetadata returns the encoder's identifying metadata.
func (e *Encoder) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}
