package basecodec

import (
	"unicode/utf8"

	"github.com/joeydtaylor/switchboard/pkg/internal/types"
	"github.com/joeydtaylor/switchboard/pkg/internal/utils"
)

// Decoder validates and strips a fixed one-rune multibase prefix before
// handing the remainder of the text to a raw base-decoding function. It is
// immutable after construction and safe for concurrent use; Or never mutates
// the receiver.
type Decoder struct {
	loggerHub
	componentMetadata types.ComponentMetadata
	name              string
	prefix            rune
	raw               types.RawDecode
}

// NewDecoder creates a Decoder for the given base encoding name, multibase
// prefix, and raw decode function.
func NewDecoder(name string, prefix rune, raw types.RawDecode, options ...types.Option[types.UnibaseDecoder]) types.UnibaseDecoder {
	d := &Decoder{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "BASE_DECODER",
			Name: name,
		},
		name:   name,
		prefix: prefix,
		raw:    raw,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Name returns the human-readable name of the base encoding.
func (d *Decoder) Name() string {
	return d.name
}

// Prefix returns the multibase prefix rune this decoder accepts.
func (d *Decoder) Prefix() rune {
	return d.prefix
}

// Decode checks that text begins with the decoder's prefix, strips it, and
// returns the raw decoder's result for the remainder. An empty input fails
// with ErrEmptyText, a wrong leading rune with PrefixMismatchError, and any
// raw decode failure propagates to the caller unchanged.
func (d *Decoder) Decode(text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	first, size := utf8.DecodeRuneInString(text)
	if first != d.prefix {
		err := &PrefixMismatchError{Encoding: d.name, Prefix: d.prefix, Input: text}
		if d.hasLoggers() {
			d.NotifyLoggers(types.WarnLevel, "Prefix mismatch",
				"component", d.componentMetadata, "event", "Decode", "error", err)
		}
		return nil, err
	}
	out, err := d.raw(text[size:])
	if err != nil {
		if d.hasLoggers() {
			d.NotifyLoggers(types.WarnLevel, "Raw decode failed",
				"component", d.componentMetadata, "event", "Decode", "error", err)
		}
		return nil, err
	}
	return out, nil
}

// Or combines this decoder with other into a composed decoder covering both
// prefix sets. Entries are inserted left to right, so on a duplicate prefix
// other's decoder wins. The receiver and other are left untouched.
func (d *Decoder) Or(other types.BaseDecoder) types.ComposedDecoder {
	return compose(d, other)
}

// GetComponentMetadata returns the decoder's identifying metadata.
func (d *Decoder) GetComponentMetadata() types.ComponentMetadata {
	return d.componentMetadata
}
