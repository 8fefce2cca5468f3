package basecodec

import (
	"sync"
	"sync/atomic"

	"github.com/joeydtaylor/switchboard/pkg/internal/types"
)

// loggerHub carries the optional observers attached to a codec component.
// The hot decode/encode path must stay zero-alloc when nobody is listening,
// so every notification is gated behind an atomic counter before any
// key/value args are built.
type loggerHub struct {
	loggersLock sync.Mutex
	loggers     []types.Logger
	loggerCount int32
}

// ConnectLogger attaches one or more loggers to the component.
func (h *loggerHub) ConnectLogger(loggers ...types.Logger) {
	h.loggersLock.Lock()
	defer h.loggersLock.Unlock()
	for _, l := range loggers {
		if l == nil {
			continue
		}
		h.loggers = append(h.loggers, l)
		atomic.AddInt32(&h.loggerCount, 1)
	}
}

// hasLoggers returns true if any logger is attached (atomic, no locks, no alloc).
func (h *loggerHub) hasLoggers() bool {
	return atomic.LoadInt32(&h.loggerCount) != 0
}

// snapshotLoggers returns a stable snapshot of the logger slice.
// Never hold h.loggersLock while invoking logger methods.
func (h *loggerHub) snapshotLoggers() []types.Logger {
	if !h.hasLoggers() {
		return nil
	}

	h.loggersLock.Lock()
	defer h.loggersLock.Unlock()

	if len(h.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(h.loggers))
	copy(out, h.loggers)
	return out
}

// NotifyLoggers sends a log message to all attached loggers at the given level.
func (h *loggerHub) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range h.snapshotLoggers() {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
