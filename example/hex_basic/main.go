package main

import (
	"encoding/hex"
	"fmt"

	"github.com/joeydtaylor/switchboard/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel(builder.EnvOr("LOG_LEVEL", "info")))

	codec := builder.CodecFrom(builder.CodecConfig{
		Name:   "base16",
		Prefix: 'f',
		Encode: hex.EncodeToString,
		Decode: hex.DecodeString,
	}, builder.CodecWithLogger(logger))

	payload := []byte{0, 1, 2}
	text := codec.Encode(payload)
	fmt.Printf("encoded: %s\n", text)

	decoded, err := codec.Decode(text)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}
	fmt.Printf("decoded: %v\n", decoded)
}
