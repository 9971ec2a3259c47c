package easylife

import (
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
)

// Attr returns a string attribute holding the formatted form of v.
func Attr(key string, v any) slog.Attr {
	return slogx.String(key, Format(v))
}

// Value defers formatting v until a slog handler resolves it, so nothing is
// rendered for records below the logger's level.
func Value(v any) slog.LogValuer {
	return lazyValue{v: v}
}

type lazyValue struct {
	v any
}

func (l lazyValue) LogValue() slog.Value {
	return slog.StringValue(Format(l.v))
}
