package console

import (
	"os"
	"sync/atomic"
)

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(os.Stdout))
}

// Default returns the Logger used by the package-level functions. It writes
// to standard output unless replaced with [SetDefault].
func Default() *Logger { return std.Load() }

// SetDefault replaces the Logger used by the package-level functions. A nil
// l restores a standard output Logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = New(os.Stdout)
	}
	std.Store(l)
}

// Log calls [Logger.Log] on the default Logger.
func Log(v any) { Default().Log(v) }

// Logf calls [Logger.Logf] on the default Logger.
func Logf(format string, args ...any) { Default().Logf(format, args...) }

// LogLine calls [Logger.LogLine] on the default Logger.
func LogLine(v ...any) { Default().LogLine(v...) }

// LogLinef calls [Logger.LogLinef] on the default Logger.
func LogLinef(format string, args ...any) { Default().LogLinef(format, args...) }
