// Package codeclog provides the package-level logger used by
// internal/wasm/binary to trace section-framing and element-segment-variant
// decisions. It is never consulted on the per-instruction hot path.
package codeclog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the current package-level logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the package-level logger, e.g. with a development
// logger or zap.NewNop() in tests that don't want log output.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}
