package basecodec_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/joeydtaylor/switchboard/pkg/internal/basecodec"
	"github.com/joeydtaylor/switchboard/pkg/internal/types"
	"github.com/joeydtaylor/switchboard/pkg/internal/utils"
)

func rawHexEncode(data []byte) string {
	return hex.EncodeToString(data)
}

func rawHexDecode(text string) ([]byte, error) {
	return hex.DecodeString(text)
}

// recordingDecoder builds a decoder whose raw function records whether it ran
// and what text it received.
func recordingDecoder(name string, prefix rune, called *bool, got *string) types.UnibaseDecoder {
	return basecodec.NewDecoder(name, prefix, func(text string) ([]byte, error) {
		*called = true
		*got = text
		return []byte(text), nil
	})
}

func TestEncoderEmitsPrefix(t *testing.T) {
	encoder := basecodec.NewEncoder("base16", 'f', rawHexEncode)

	if got := encoder.Encode([]byte{0, 1, 2}); got != "f000102" {
		t.Fatalf("expected %q, got %q", "f000102", got)
	}
	if encoder.Name() != "base16" {
		t.Errorf("expected name base16, got %s", encoder.Name())
	}
	if encoder.Prefix() != 'f' {
		t.Errorf("expected prefix 'f', got %q", encoder.Prefix())
	}
}

func TestEncoderPrefixDeterminism(t *testing.T) {
	encoder := basecodec.NewEncoder("base16", 'f', rawHexEncode)

	inputs := [][]byte{nil, {}, {0}, {255}, []byte("switchboard"), bytes.Repeat([]byte{7}, 64)}
	for _, input := range inputs {
		out := encoder.Encode(input)
		if len(out) == 0 || []rune(out)[0] != 'f' {
			t.Errorf("encode(%v) = %q does not start with prefix 'f'", input, out)
		}
	}
}

func TestDecoderRoundTrip(t *testing.T) {
	encoder := basecodec.NewEncoder("base16", 'f', rawHexEncode)
	decoder := basecodec.NewDecoder("base16", 'f', rawHexDecode)

	inputs := [][]byte{{}, {0}, {0, 1, 2}, []byte("the quick brown fox"), bytes.Repeat([]byte{0xAB}, 33)}
	for _, input := range inputs {
		decoded, err := decoder.Decode(encoder.Encode(input))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", input, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("round trip of %v returned %v", input, decoded)
		}
	}
}

func TestDecoderPrefixMismatch(t *testing.T) {
	decoder := basecodec.NewDecoder("base16", 'f', rawHexDecode)

	_, err := decoder.Decode("z000102")
	if err == nil {
		t.Fatal("expected error for mismatched prefix")
	}
	var mismatch *basecodec.PrefixMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected PrefixMismatchError, got %T: %v", err, err)
	}
	if mismatch.Encoding != "base16" || mismatch.Prefix != 'f' || mismatch.Input != "z000102" {
		t.Errorf("unexpected error fields: %+v", mismatch)
	}
	for _, want := range []string{"base16", `"z000102"`, `'f'`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error message %q missing %s", err.Error(), want)
		}
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	decoder := basecodec.NewDecoder("base16", 'f', rawHexDecode)
	if _, err := decoder.Decode(""); !errors.Is(err, basecodec.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}

	composed := basecodec.ComposedFrom(decoder)
	if _, err := composed.Decode(""); !errors.Is(err, basecodec.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText from composed decoder, got %v", err)
	}
}

func TestDecoderRawErrorPropagatesUnchanged(t *testing.T) {
	rawErr := errors.New("checksum failure")
	decoder := basecodec.NewDecoder("base58check", 'z', func(string) ([]byte, error) {
		return nil, rawErr
	})

	_, err := decoder.Decode("zWhatever")
	if err != rawErr {
		t.Fatalf("expected the raw error unchanged, got %v", err)
	}
}

func TestComposedDispatch(t *testing.T) {
	var hexCalled, b58Called bool
	var hexGot, b58Got string
	hexDec := recordingDecoder("base16", 'f', &hexCalled, &hexGot)
	b58Dec := recordingDecoder("base58btc", 'z', &b58Called, &b58Got)

	// Dispatch must land on the decoder registered for the leading rune
	// regardless of composition order.
	compositions := []types.ComposedDecoder{
		hexDec.Or(b58Dec),
		b58Dec.Or(hexDec),
		basecodec.ComposedFrom(hexDec).Or(b58Dec),
		basecodec.ComposedFrom(b58Dec).Or(basecodec.ComposedFrom(hexDec)),
	}

	for i, composed := range compositions {
		hexCalled, b58Called = false, false

		if _, err := composed.Decode("f000102"); err != nil {
			t.Fatalf("composition %d: decode hex text failed: %v", i, err)
		}
		if !hexCalled || b58Called {
			t.Errorf("composition %d: expected only the base16 decoder to run", i)
		}
		if hexGot != "000102" {
			t.Errorf("composition %d: raw decoder received %q, want prefix-stripped text", i, hexGot)
		}

		hexCalled, b58Called = false, false
		if _, err := composed.Decode("zXYZ"); err != nil {
			t.Fatalf("composition %d: decode base58 text failed: %v", i, err)
		}
		if !b58Called || hexCalled {
			t.Errorf("composition %d: expected only the base58btc decoder to run", i)
		}
	}
}

func TestComposedUnknownPrefix(t *testing.T) {
	hexDec := basecodec.NewDecoder("base16", 'f', rawHexDecode)
	b58Dec := basecodec.NewDecoder("base58btc", 'z', func(text string) ([]byte, error) {
		return []byte(text), nil
	})
	composed := basecodec.ComposedFrom(hexDec).Or(b58Dec)

	_, err := composed.Decode("q123")
	if err == nil {
		t.Fatal("expected error for unregistered prefix")
	}
	var unsupported *basecodec.UnsupportedPrefixError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedPrefixError, got %T: %v", err, err)
	}
	if len(unsupported.Prefixes) != 2 || unsupported.Prefixes[0] != 'f' || unsupported.Prefixes[1] != 'z' {
		t.Errorf("expected sorted prefixes [f z], got %q", string(unsupported.Prefixes))
	}
	for _, want := range []string{`"q123"`, `'f'`, `'z'`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error message %q missing %s", err.Error(), want)
		}
	}
}

func TestComposedFromSingle(t *testing.T) {
	hexDec := basecodec.NewDecoder("base16", 'f', rawHexDecode)
	composed := basecodec.ComposedFrom(hexDec)

	prefixes := composed.Prefixes()
	if len(prefixes) != 1 || prefixes[0] != 'f' {
		t.Fatalf("expected single prefix 'f', got %q", string(prefixes))
	}
	decoded, err := composed.Decode("f000102")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(decoded, []byte{0, 1, 2}) {
		t.Errorf("expected [0 1 2], got %v", decoded)
	}
}

func TestImmutabilityUnderComposition(t *testing.T) {
	hexDec := basecodec.NewDecoder("base16", 'f', rawHexDecode)
	b58Dec := basecodec.NewDecoder("base58btc", 'z', func(text string) ([]byte, error) {
		return []byte(text), nil
	})

	c1 := basecodec.ComposedFrom(hexDec)
	c2 := basecodec.ComposedFrom(b58Dec)
	c3 := c1.Or(c2)

	// The originals keep behaving exactly as before the Or call.
	if _, err := c1.Decode("zXYZ"); err == nil {
		t.Error("c1 gained a prefix it was never composed with")
	}
	if _, err := c2.Decode("f000102"); err == nil {
		t.Error("c2 gained a prefix it was never composed with")
	}
	if len(c1.Prefixes()) != 1 || len(c2.Prefixes()) != 1 {
		t.Errorf("operand prefix sets changed: c1=%q c2=%q", string(c1.Prefixes()), string(c2.Prefixes()))
	}
	if len(c3.Prefixes()) != 2 {
		t.Errorf("expected composed prefix set of 2, got %q", string(c3.Prefixes()))
	}

	// Single-prefix operands are untouched too.
	if _, err := hexDec.Decode("zXYZ"); err == nil {
		t.Error("single decoder gained a prefix after composition")
	}

	// Mutating the returned slices must not leak into the decoder.
	prefixes := c3.Prefixes()
	prefixes[0] = 'q'
	if !utils.Contains(c3.Prefixes(), 'f') {
		t.Error("Prefixes() exposed internal state")
	}
}

func TestCompositionCollisionLastWins(t *testing.T) {
	first := basecodec.NewDecoder("first", 'x', func(string) ([]byte, error) {
		return []byte("first"), nil
	})
	second := basecodec.NewDecoder("second", 'x', func(string) ([]byte, error) {
		return []byte("second"), nil
	})

	out, err := first.Or(second).Decode("xanything")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(out) != "second" {
		t.Errorf("expected the right operand to win the collision, got %q", out)
	}

	out, err = second.Or(first).Decode("xanything")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(out) != "first" {
		t.Errorf("expected the right operand to win the collision, got %q", out)
	}

	out, err = basecodec.ComposedFrom(first).Or(second).Decode("xanything")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(out) != "second" {
		t.Errorf("expected the right operand to win against a composed left, got %q", out)
	}
}

func TestNonASCIIPrefixDispatch(t *testing.T) {
	encoder := basecodec.NewEncoder("base256emoji", '🚀', rawHexEncode)
	decoder := basecodec.NewDecoder("base256emoji", '🚀', rawHexDecode)
	hexDec := basecodec.NewDecoder("base16", 'f', rawHexDecode)

	composed := hexDec.Or(decoder)
	text := encoder.Encode([]byte{1, 2, 3})
	decoded, err := composed.Decode(text)
	if err != nil {
		t.Fatalf("decode of %q failed: %v", text, err)
	}
	if !bytes.Equal(decoded, []byte{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", decoded)
	}
}

func TestComposedDecodersOrderedByPrefix(t *testing.T) {
	zDec := basecodec.NewDecoder("base58btc", 'z', rawHexDecode)
	fDec := basecodec.NewDecoder("base16", 'f', rawHexDecode)
	bDec := basecodec.NewDecoder("base32", 'b', rawHexDecode)

	composed := zDec.Or(fDec).Or(bDec)
	decoders := composed.Decoders()
	if len(decoders) != 3 {
		t.Fatalf("expected 3 decoders, got %d", len(decoders))
	}
	wantNames := []string{"base32", "base16", "base58btc"}
	for i, want := range wantNames {
		if decoders[i].Name() != want {
			t.Errorf("decoder %d: expected %s, got %s", i, want, decoders[i].Name())
		}
	}
}
