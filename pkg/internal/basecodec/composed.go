package basecodec

import (
	"sort"
	"unicode/utf8"

	"github.com/joeydtaylor/switchboard/pkg/internal/types"
	"github.com/joeydtaylor/switchboard/pkg/internal/utils"
)

// Composed dispatches decoding across a prefix-keyed table of single-prefix
// decoders. The table is fixed at construction; Or always allocates a new
// Composed rather than mutating the receiver, so a composed decoder built
// once may be shared freely across goroutines and later compositions.
type Composed struct {
	loggerHub
	componentMetadata types.ComponentMetadata
	table             map[rune]types.UnibaseDecoder
}

// ComposedFrom lifts a decoder into a composed decoder. A single-prefix
// decoder becomes a one-entry table; an already-composed decoder is copied.
// This is the entry point for building multi-base decoders without an
// initial Or chain.
func ComposedFrom(decoder types.BaseDecoder, options ...types.Option[types.ComposedDecoder]) types.ComposedDecoder {
	return compose(decoder, nil, options...)
}

// compose flattens the operands left to right into a fresh prefix table.
// Later insertions win on duplicate prefixes, which gives Or its
// right-operand-wins collision policy. Nil operands are skipped. Operands
// must originate from this package's constructors; a foreign BaseDecoder
// implementation satisfying neither variant has no prefix table to merge
// and is ignored.
func compose(left, right types.BaseDecoder, options ...types.Option[types.ComposedDecoder]) types.ComposedDecoder {
	table := make(map[rune]types.UnibaseDecoder)
	operands := utils.Filter([]types.BaseDecoder{left, right}, func(d types.BaseDecoder) bool {
		return d != nil
	})
	for _, operand := range operands {
		switch v := operand.(type) {
		case types.UnibaseDecoder:
			table[v.Prefix()] = v
		case types.ComposedDecoder:
			for _, sub := range v.Decoders() {
				table[sub.Prefix()] = sub
			}
		}
	}

	c := &Composed{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "COMPOSED_DECODER",
		},
		table: table,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Decode reads the first rune of text as the dispatch key and delegates to
// the decoder registered for it, including that decoder's own prefix
// validation and raw decoding. An empty input fails with ErrEmptyText and an
// unregistered leading rune with UnsupportedPrefixError.
func (c *Composed) Decode(text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	first, _ := utf8.DecodeRuneInString(text)
	decoder, ok := c.table[first]
	if !ok {
		err := &UnsupportedPrefixError{Input: text, Prefixes: c.Prefixes()}
		if c.hasLoggers() {
			c.NotifyLoggers(types.WarnLevel, "Unsupported multibase prefix",
				"component", c.componentMetadata, "event", "Decode", "error", err)
		}
		return nil, err
	}
	if c.hasLoggers() {
		c.NotifyLoggers(types.DebugLevel, "Dispatching multibase decode",
			"component", c.componentMetadata, "event", "Decode",
			"prefix", string(first), "decoder", decoder.Name())
	}
	return decoder.Decode(text)
}

// Or merges this composed decoder's table with other's entries into a new
// composed decoder. Entries are inserted left to right, so on a duplicate
// prefix other's decoder wins. Neither operand is modified.
func (c *Composed) Or(other types.BaseDecoder) types.ComposedDecoder {
	return compose(c, other)
}

// Prefixes returns the registered prefix runes in ascending order.
func (c *Composed) Prefixes() []rune {
	prefixes := make([]rune, 0, len(c.table))
	for p := range c.table {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool { return prefixes[i] < prefixes[j] })
	return prefixes
}

// Decoders returns the registered single-prefix decoders ordered by prefix.
func (c *Composed) Decoders() []types.UnibaseDecoder {
	decoders := make([]types.UnibaseDecoder, 0, len(c.table))
	for _, p := range c.Prefixes() {
		decoders = append(decoders, c.table[p])
	}
	return decoders
}

// GetComponentMetadata returns the composed decoder's identifying metadata.
func (c *Composed) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}
