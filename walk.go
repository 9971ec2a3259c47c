package easylife

import (
	"cmp"
	"iter"
	"reflect"
	"slices"
)

// entries yields the pairs of a value classified as a mapping. Go maps are
// yielded in sorted key order. A nil pointer to a [Mappable] yields nothing.
func entries(v any) iter.Seq2[any, any] {
	if m, ok := v.(Mappable); ok {
		return func(yield func(any, any) bool) {
			if nilPointer(v) {
				return
			}
			for _, kv := range m.Pairs() {
				if !yield(kv.Key, kv.Value) {
					return
				}
			}
		}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return reflectPairs(rv)
	}
	return func(yield func(any, any) bool) {
		for _, e := range sortedEntries(rv) {
			if !yield(e.key.Interface(), e.value.Interface()) {
				return
			}
		}
	}
}

type entry struct {
	key, value reflect.Value
}

// sortedEntries reads the map through MapRange, since keys such as NaN can
// not be looked up again with MapIndex. Entries whose keys compare equal are
// ordered by their formatted value.
func sortedEntries(rv reflect.Value) []entry {
	out := make([]entry, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		out = append(out, entry{key: it.Key(), value: it.Value()})
	}
	slices.SortStableFunc(out, func(x, y entry) int {
		if c := compareKeys(x.key, y.key); c != 0 {
			return c
		}
		return cmp.Compare(Format(x.value.Interface()), Format(y.value.Interface()))
	})
	return out
}

// items yields the elements of a value classified as a sequence. A nil
// pointer to a [Sequence] yields nothing.
func items(v any) iter.Seq[any] {
	if s, ok := v.(Sequence); ok {
		if nilPointer(v) {
			return func(func(any) bool) {}
		}
		return slices.Values(s.Items())
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return reflectItems(rv)
	}
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

// compareKeys orders map keys: numbers numerically, strings lexically and
// false before true. Keys of different kinds are grouped by kind, and
// anything else falls back to comparing the formatted text. Keys that still
// tie, such as 1 under two named int types, are ordered by type name and then
// by formatted text.
func compareKeys(a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)
	if c := compareKinds(a, b); c != 0 || !a.IsValid() {
		return c
	}
	if c := cmp.Compare(a.Type().String(), b.Type().String()); c != 0 {
		return c
	}
	return cmp.Compare(Format(a.Interface()), Format(b.Interface()))
}

func compareKinds(a, b reflect.Value) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		default:
			return 1
		}
	case reflect.Invalid:
		return 0
	default:
		return cmp.Compare(Format(a.Interface()), Format(b.Interface()))
	}
}

// unwrap returns the dynamic value held by an interface-typed key. A nil
// interface becomes the invalid Value.
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// nilPointer reports whether v is a nil pointer. Methods of Mappable and
// Sequence are not called on one.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
