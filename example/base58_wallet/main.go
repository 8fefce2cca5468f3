package main

import (
	"fmt"

	btcbase58 "github.com/btcsuite/btcutil/base58"
	"github.com/mr-tron/base58"

	"github.com/joeydtaylor/switchboard/pkg/builder"
)

const (
	btcAlphabet    = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	flickrAlphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
)

func alphabetCodec(name string, prefix rune, alphabet string) builder.MultibaseCodec {
	return builder.CodecWithAlphabet(builder.AlphabetCodecConfig{
		Name:     name,
		Prefix:   prefix,
		Alphabet: alphabet,
		Encode: func(data []byte, alphabet string) string {
			return base58.FastBase58EncodingAlphabet(data, base58.NewAlphabet(alphabet))
		},
		Decode: func(text string, alphabet string) ([]byte, error) {
			return base58.FastBase58DecodingAlphabet(text, base58.NewAlphabet(alphabet))
		},
	})
}

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	b58btc := alphabetCodec("base58btc", 'z', btcAlphabet)
	b58flickr := alphabetCodec("base58flickr", 'Z', flickrAlphabet)

	// Base58Check with a fixed version byte, bound as codec settings.
	b58check := builder.CodecWithSettings(builder.SettingsCodecConfig[byte]{
		Name:     "base58check",
		Prefix:   'c',
		Settings: 0x00,
		Encode: func(data []byte, version byte) string {
			return btcbase58.CheckEncode(data, version)
		},
		Decode: func(text string, version byte) ([]byte, error) {
			payload, got, err := btcbase58.CheckDecode(text)
			if err != nil {
				return nil, err
			}
			if got != version {
				return nil, fmt.Errorf("unexpected version byte %#x", got)
			}
			return payload, nil
		},
	}, builder.CodecWithLogger(logger))

	composed := builder.ComposedDecoderFrom(b58btc.Decoder()).
		Or(b58flickr.Decoder()).
		Or(b58check.Decoder())

	pubKeyHash := []byte{0x62, 0xe9, 0x07, 0xb1, 0x5c, 0xbf, 0x27, 0xd5, 0x42, 0x53,
		0x99, 0xeb, 0xf6, 0xf0, 0xfb, 0x50, 0xeb, 0xb8, 0x8f, 0x18}

	for _, codec := range []builder.MultibaseCodec{b58btc, b58flickr, b58check} {
		text := codec.Encode(pubKeyHash)
		fmt.Printf("%-12s %s\n", codec.Name(), text)

		decoded, err := composed.Decode(text)
		if err != nil {
			fmt.Printf("decode error: %v\n", err)
			continue
		}
		fmt.Printf("%-12s round trip ok (%d bytes)\n", codec.Name(), len(decoded))
	}

	// Out-of-alphabet characters are rejected before base58 digit math runs.
	if _, err := b58btc.Decode("z0OIl"); err != nil {
		fmt.Printf("alphabet guard: %v\n", err)
	}
}
