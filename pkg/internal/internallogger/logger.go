package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap. The base core
// writes JSON to stdout; additional sinks can be attached and detached at
// runtime by identifier.
type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	mu          sync.Mutex
	sinks       map[string]sinkEntry
	baseCore    zapcore.Core
	baseFields  []zap.Field
	encConfig   zapcore.EncoderConfig
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3 // Default caller depth

	// Apply each provided option to the configuration
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(level)
	baseCore := zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), atomicLevel)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
		callerOn:    true,
		sinks:       make(map[string]sinkEntry),
		baseCore:    baseCore,
		baseFields:  fieldsFromMap(config.InitialFields),
		encConfig:   encConfig,
	}
	z.rebuildLoggerLocked()
	return z
}
