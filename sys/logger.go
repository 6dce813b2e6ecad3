package sys

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the sys package's logger instance.
// It uses a no-op logger by default, so the adapter stays silent unless a
// caller opts in.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the sys package's logger.
// This must be called before any adapter operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
