package easylife

import (
	"fmt"
	"io"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// --- Capability Interfaces ---

// Mappable provides ordered key-value pairs. A type implementing it is
// rendered as a mapping in the order Pairs reports, without sorting.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair. Both sides are formatted recursively.
type KeyValue struct {
	Key   any
	Value any
}

// Sequence provides ordered items. A type implementing it is rendered as a
// sequence.
type Sequence interface {
	Items() []any
}

// category is the rendering rule chosen for a value. The constants are
// listed in the order they are probed.
type category int

const (
	scalar category = iota
	callable
	mapping
	sequence
)

// classify probes the capabilities of v in priority order: callable,
// mapping, sequence, scalar.
func classify(v any) category {
	switch x := v.(type) {
	case nil, string:
		return scalar
	case func() string:
		if x == nil {
			return scalar
		}
		return callable
	case Mappable:
		return mapping
	case Sequence:
		return sequence
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return scalar
		}
		switch t := rv.Type(); {
		case producesString(t):
			return callable
		case yieldsPairs(t):
			return mapping
		case yieldsItems(t):
			return sequence
		}
	case reflect.Map:
		if _, ok := describe(v); ok {
			return callable
		}
		return mapping
	case reflect.Slice, reflect.Array:
		if _, ok := describe(v); ok {
			return callable
		}
		return sequence
	}
	return scalar
}

// Format renders v as a string.
//
// Mappings render as {key:value,...}, sequences as [item,...], and both
// recurse into their keys, values and items. A function taking no arguments
// and returning a string renders as its result. Anything else renders the
// way fmt.Sprint does.
func Format(v any) string {
	v = normalize(v)
	switch classify(v) {
	case callable:
		return Format(invoke(v))
	case mapping:
		return formatMapping(entries(v))
	case sequence:
		return formatSequence(items(v))
	default:
		return plain(v)
	}
}

// Args returns args with every mapping, sequence and callable replaced by
// its formatted string. When no argument needs conversion, args itself is
// returned. Scalars are never converted so that verbs such as %d and %x
// still apply to them.
func Args(args []any) []any {
	if !slices.ContainsFunc(args, needsFormat) {
		return args
	}
	out := make([]any, len(args))
	for i, a := range args {
		if needsFormat(a) {
			out[i] = Format(a)
			continue
		}
		out[i] = a
	}
	return out
}

// Sprintf formats according to a fmt format specifier after passing args
// through [Args]. Mismatched verbs and arguments are reported inline the
// same way fmt reports them.
func Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, Args(args)...)
}

// Fprint writes the formatted form of v to w.
func Fprint(w io.Writer, v any) error {
	_, err := io.WriteString(w, Format(v))
	return err
}

// Fprintf writes the result of [Sprintf] to w.
func Fprintf(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, Args(args)...)
	return err
}

func needsFormat(v any) bool {
	if isNode(v) {
		return true
	}
	return classify(v) != scalar
}

func invoke(v any) string {
	if f, ok := v.(func() string); ok {
		return f()
	}
	if s, ok := describe(v); ok {
		return s
	}
	return reflect.ValueOf(v).Call(nil)[0].String()
}

func formatMapping(pairs iter.Seq2[any, any]) string {
	var b strings.Builder
	b.WriteByte('{')
	n := 0
	for k, v := range pairs {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Format(k))
		b.WriteByte(':')
		b.WriteString(Format(v))
		n++
	}
	b.WriteByte('}')
	return b.String()
}

func formatSequence(elems iter.Seq[any]) string {
	var b strings.Builder
	b.WriteByte('[')
	n := 0
	for e := range elems {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Format(e))
		n++
	}
	b.WriteByte(']')
	return b.String()
}
