package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"

	"github.com/joeydtaylor/switchboard/pkg/builder"
)

type compressionSettings struct {
	Algorithm string // "snappy", "zstd", "brotli", "lz4"
}

func compress(data []byte, algorithm string) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case "snappy":
		return snappy.Encode(nil, data), nil
	case "zstd":
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case "brotli":
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case "lz4":
		w = lz4.NewWriter(&b)
	default:
		return data, nil
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decompress(data []byte, algorithm string) ([]byte, error) {
	switch algorithm {
	case "snappy":
		return snappy.Decode(nil, data)
	case "zstd":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case "brotli":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	case "lz4":
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return data, nil
	}
}

// compressedCodec base64url-encodes a compressed payload; the compression
// algorithm is bound as codec settings so each codec's behavior is fixed at
// construction.
func compressedCodec(name string, prefix rune, algorithm string) builder.MultibaseCodec {
	return builder.CodecWithSettings(builder.SettingsCodecConfig[compressionSettings]{
		Name:     name,
		Prefix:   prefix,
		Settings: compressionSettings{Algorithm: algorithm},
		Encode: func(data []byte, s compressionSettings) string {
			compressed, err := compress(data, s.Algorithm)
			if err != nil {
				// Compression into a buffer cannot fail for these writers;
				// fall back to the uncompressed payload if it ever does.
				compressed = data
			}
			return base64.RawURLEncoding.EncodeToString(compressed)
		},
		Decode: func(text string, s compressionSettings) ([]byte, error) {
			compressed, err := base64.RawURLEncoding.DecodeString(text)
			if err != nil {
				return nil, err
			}
			return decompress(compressed, s.Algorithm)
		},
	})
}

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel(builder.EnvOr("LOG_LEVEL", "info")))

	codecs := []builder.MultibaseCodec{
		compressedCodec("snappy+base64url", 's', "snappy"),
		compressedCodec("zstd+base64url", 'x', "zstd"),
		compressedCodec("brotli+base64url", 'r', "brotli"),
		compressedCodec("lz4+base64url", 'l', "lz4"),
	}

	composed := builder.ComposedDecoderFrom(codecs[0].Decoder()).
		Or(codecs[1].Decoder()).
		Or(codecs[2].Decoder()).
		Or(codecs[3].Decoder())
	composed.ConnectLogger(logger)

	payload := []byte(strings.Repeat("multibase dispatch with compressed payloads ", 20))

	for _, codec := range codecs {
		text := codec.Encode(payload)
		decoded, err := composed.Decode(text)
		if err != nil {
			fmt.Printf("%-18s decode error: %v\n", codec.Name(), err)
			continue
		}
		fmt.Printf("%-18s %5d runes, round trip ok: %t\n", codec.Name(), len(text), bytes.Equal(decoded, payload))
	}
}
