package main

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/joeydtaylor/switchboard/pkg/builder"
)

type base32Settings struct {
	Padding bool
}

func base32Encoding(s base32Settings) *base32.Encoding {
	if s.Padding {
		return base32.StdEncoding
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding)
}

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))

	hexCodec := builder.CodecFrom(builder.CodecConfig{
		Name:   "base16",
		Prefix: 'f',
		Encode: hex.EncodeToString,
		Decode: hex.DecodeString,
	})

	b32Codec := builder.CodecWithSettings(builder.SettingsCodecConfig[base32Settings]{
		Name:     "base32upper",
		Prefix:   'B',
		Settings: base32Settings{Padding: false},
		Encode: func(data []byte, s base32Settings) string {
			return base32Encoding(s).EncodeToString(data)
		},
		Decode: func(text string, s base32Settings) ([]byte, error) {
			return base32Encoding(s).DecodeString(text)
		},
	})

	b64Codec := builder.CodecFrom(builder.CodecConfig{
		Name:   "base64url",
		Prefix: 'u',
		Encode: base64.RawURLEncoding.EncodeToString,
		Decode: base64.RawURLEncoding.DecodeString,
	})

	composed := builder.ComposedDecoderFrom(hexCodec.Decoder()).
		Or(b32Codec.Decoder()).
		Or(b64Codec.Decoder())
	composed.ConnectLogger(logger)

	payload := []byte("multibase makes encodings self-describing")
	samples := []string{
		hexCodec.Encode(payload),
		b32Codec.Encode(payload),
		b64Codec.Encode(payload),
		"qNotARegisteredPrefix",
	}

	for _, text := range samples {
		decoded, err := composed.Decode(text)
		if err != nil {
			fmt.Printf("decode %q: %v\n", text, err)
			continue
		}
		fmt.Printf("decode %q -> %s\n", text, decoded)
	}
}
