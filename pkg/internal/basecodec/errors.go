package basecodec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyText rejects decode input before any rune indexing happens. An
// empty string carries no prefix and therefore cannot name its own encoding.
var ErrEmptyText = errors.New("cannot multibase decode an empty string")

// PrefixMismatchError reports text handed to a single-prefix decoder whose
// first rune is not that decoder's prefix.
type PrefixMismatchError struct {
	Encoding string // Name of the decoder's base encoding.
	Prefix   rune   // The prefix the decoder expects.
	Input    string // The offending input text.
}

func (e *PrefixMismatchError) Error() string {
	return fmt.Sprintf("unable to decode multibase string %q, %s decoder only supports inputs prefixed with %q",
		e.Input, e.Encoding, e.Prefix)
}

// UnsupportedPrefixError reports text whose leading rune matches none of the
// decoders registered in a composed decoder. Prefixes holds the registered
// prefix runes in ascending order so the message is deterministic.
type UnsupportedPrefixError struct {
	Input    string
	Prefixes []rune
}

func (e *UnsupportedPrefixError) Error() string {
	return fmt.Sprintf("unable to decode multibase string %q, only inputs prefixed with %s are supported",
		e.Input, formatPrefixes(e.Prefixes))
}

// AlphabetError reports an input character outside the alphabet bound to a
// codec built with WithAlphabet. It is raised before the raw decoder runs.
type AlphabetError struct {
	Encoding string
	Char     rune
	Position int // Rune offset within the prefix-stripped text.
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("invalid %s character %q at position %d", e.Encoding, e.Char, e.Position)
}

func formatPrefixes(prefixes []rune) string {
	sorted := make([]rune, len(prefixes))
	copy(sorted, prefixes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, ", ")
}
