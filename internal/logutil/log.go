// Package logutil holds the logger shared by the karatsuba package.
package logutil

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var bgLogger atomic.Pointer[zap.Logger]

func init() {
	bgLogger.Store(zap.NewNop())
}

// BgLogger returns the default global logger. It discards everything
// until SetLogger is called.
func BgLogger() *zap.Logger {
	return bgLogger.Load()
}

// SetLogger replaces the global logger. A nil logger restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	bgLogger.Store(l)
}
