package easylife

import (
	"fmt"
)

// plain is the default textual representation.
func plain(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// describe returns the text a value declares for itself through an Error or
// String method.
func describe(v any) (string, bool) {
	switch x := v.(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
