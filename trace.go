package erased

import (
	"log/slog"
	"sync/atomic"
)

var traceLogger atomic.Pointer[slog.Logger]

// SetTraceLogger enables debug records for every copy, move and release of a
// non-empty cursor. Passing nil disables tracing, which is the default.
func SetTraceLogger(logger *slog.Logger) {
	traceLogger.Store(logger)
}

func trace[T any](op string, mode StorageMode, ty *cursorType[T]) {
	logger := traceLogger.Load()
	if logger == nil || ty == nil {
		return
	}

	logger.Debug("Cursor "+op,
		slog.String("storage", mode.String()),
		slog.String("type", ty.Name),
	)
}
