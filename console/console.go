// Package console writes formatted debug lines that can be switched off for
// the whole process.
//
// Output is enabled by default only in binaries built with the "debug" build
// tag:
//
//	go build -tags debug ./...
//
// [SetEnabled] overrides the switch at runtime, typically from tests. Every
// value passed to a [Logger] goes through [easylife.Format], so maps, slices
// and lazily computed strings print in their structural form:
//
//	console.LogLine(map[string]int{"a": 1}) // {a:1}
//	console.LogLinef("ids=%v", ids)          // ids=[1,2,3]
package console

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/bjaus/easylife"
	"github.com/mattn/go-runewidth"
)

var enabled atomic.Bool

func init() {
	enabled.Store(defaultEnabled)
}

// Enabled reports whether loggers currently write anything.
func Enabled() bool { return enabled.Load() }

// SetEnabled turns output on or off for every [Logger] in the process.
func SetEnabled(on bool) { enabled.Store(on) }

// Logger writes formatted values to an [io.Writer] while output is enabled.
// Write errors are ignored.
type Logger struct {
	w        io.Writer
	maxWidth int
}

// Option configures a [Logger].
type Option func(*Logger)

// WithMaxWidth truncates every written line to n display columns, replacing
// the cut-off tail with "...". Wide characters count as two columns. Zero or
// less means no limit.
func WithMaxWidth(n int) Option {
	return func(l *Logger) {
		l.maxWidth = n
	}
}

// New returns a Logger writing to w. A nil w writes to [os.Stdout].
func New(w io.Writer, opts ...Option) *Logger {
	if w == nil {
		w = os.Stdout
	}
	l := &Logger{w: w}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log writes the formatted form of v without a trailing newline.
func (l *Logger) Log(v any) {
	if !l.active() {
		return
	}
	l.write(easylife.Format(v))
}

// Logf writes a template filled in by [easylife.Sprintf], without a trailing
// newline.
func (l *Logger) Logf(format string, args ...any) {
	if !l.active() {
		return
	}
	l.write(easylife.Sprintf(format, args...))
}

// LogLine writes the formatted values separated by spaces and followed by a
// newline. With no values it writes a blank line.
func (l *Logger) LogLine(v ...any) {
	if !l.active() {
		return
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = easylife.Format(x)
	}
	l.write(strings.Join(parts, " ") + "\n")
}

// LogLinef writes a template filled in by [easylife.Sprintf], followed by a
// newline.
func (l *Logger) LogLinef(format string, args ...any) {
	if !l.active() {
		return
	}
	l.write(easylife.Sprintf(format, args...) + "\n")
}

func (l *Logger) active() bool {
	return l != nil && Enabled()
}

func (l *Logger) write(s string) {
	if l.maxWidth > 0 {
		s = truncateLines(s, l.maxWidth)
	}
	_, _ = io.WriteString(l.w, s)
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, width, "...")
	}
	return strings.Join(lines, "\n")
}
