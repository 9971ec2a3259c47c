package query

import (
	"iter"
	"reflect"

	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/seq"
)

// nillable reports whether a value of type T can be nil.
func nillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// present drops nil elements from s. It returns s itself when T cannot be nil.
func present[T any](s iter.Seq[T]) iter.Seq[T] {
	if !nillable[T]() {
		return s
	}
	return seq.Where(s, is.NotNil[T])
}

// values yields the elements of source, without the nil ones when strip is set.
func values[T any](source []T, strip bool) iter.Seq[T] {
	all := seq.FromSlice(source)
	if !strip {
		return all
	}
	return present(all)
}

// collect drains s into a non-nil slice with room for size elements.
func collect[T any](s iter.Seq[T], size int) []T {
	return seq.ToSlice(s, make([]T, 0, size))
}

// stripped returns a copy of source without nil elements.
func stripped[T any](source []T) []T {
	return collect(values(source, true), len(source))
}

// hashable reports whether every value of T can be used as a map key without
// panicking. Interface types fail because their dynamic value may be a slice,
// map or func.
func hashable[T comparable]() bool {
	return hashableType(reflect.TypeFor[T]())
}

func hashableType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return hashableType(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !hashableType(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return t.Comparable()
	}
}

// equal is [is.Equal] for values whose dynamic type may not support ==.
// Such values are compared with reflect.DeepEqual instead of panicking.
func equal[T comparable](a, b T) bool {
	if hashable[T]() {
		return is.Equal(a, b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Type() == vb.Type() && !va.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return is.Equal(a, b)
}

func always[T any](T) bool { return true }
