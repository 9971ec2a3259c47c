package query

import (
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// Any reports whether source has at least one non-nil element.
func Any[T any](source []T) bool {
	return seq.Exists(values(source, true), always[T])
}

// AnyN reports whether source has at least one element.
func AnyN[T any](source []T) bool {
	return len(source) > 0
}

// AnyFunc reports whether a non-nil element of source satisfies predicate.
func AnyFunc[T any](source []T, predicate func(T) bool) bool {
	return seq.Exists(values(source, true), predicate)
}

// AnyFuncN reports whether any element of source satisfies predicate.
func AnyFuncN[T any](source []T, predicate func(T) bool) bool {
	return seq.Exists(values(source, false), predicate)
}

// Count returns the number of non-nil elements in source.
func Count[T any](source []T) int {
	return seq.Count(values(source, true))
}

// CountN returns the number of elements in source.
func CountN[T any](source []T) int {
	return len(source)
}

// CountFunc returns the number of non-nil elements that satisfy predicate.
func CountFunc[T any](source []T, predicate func(T) bool) int {
	return seq.Count(seq.Where(values(source, true), predicate))
}

// CountFuncN returns the number of elements that satisfy predicate.
func CountFuncN[T any](source []T, predicate func(T) bool) int {
	return seq.Count(seq.Where(values(source, false), predicate))
}

// Sum adds up the elements of source.
func Sum[N types.Number](source []N) N {
	var total N
	return seq.Reduce(seq.FromSlice(source), func(acc N, v N) N { return acc + v }, total)
}

// SumBy adds up selector over the non-nil elements of source.
func SumBy[T any, N types.Number](source []T, selector func(T) N) N {
	return sumBy(source, true, selector)
}

// SumByN adds up selector over every element of source.
func SumByN[T any, N types.Number](source []T, selector func(T) N) N {
	return sumBy(source, false, selector)
}

func sumBy[T any, N types.Number](source []T, strip bool, selector func(T) N) N {
	var total N
	return seq.Reduce(values(source, strip), func(acc N, v T) N { return acc + selector(v) }, total)
}

// First returns the first non-nil element of source, or the zero value.
func First[T any](source []T) T {
	return first(source, true, always[T])
}

// FirstN returns the first element of source, or the zero value when source
// is empty.
func FirstN[T any](source []T) T {
	return first(source, false, always[T])
}

// FirstFunc returns the first non-nil element that satisfies predicate, or
// the zero value. Predicate is not called when source is empty.
func FirstFunc[T any](source []T, predicate func(T) bool) T {
	return first(source, true, predicate)
}

// FirstFuncN returns the first element that satisfies predicate, or the zero
// value. Predicate is not called when source is empty.
func FirstFuncN[T any](source []T, predicate func(T) bool) T {
	return first(source, false, predicate)
}

func first[T any](source []T, strip bool, predicate func(T) bool) T {
	var zero T
	if len(source) == 0 {
		return zero
	}
	for v := range values(source, strip) {
		if predicate(v) {
			return v
		}
	}
	return zero
}

// Contains reports whether value is among the non-nil elements of source.
// A nil value is therefore never found. Interface elements holding slices or
// maps are compared by deep equality.
func Contains[T comparable](source []T, value T) bool {
	return ContainsFunc(source, value, equal[T])
}

// ContainsN reports whether value is among the elements of source.
func ContainsN[T comparable](source []T, value T) bool {
	return ContainsFuncN(source, value, equal[T])
}

// ContainsFunc reports whether eq(element, value) holds for a non-nil
// element of source.
func ContainsFunc[T any](source []T, value T, eq func(a, b T) bool) bool {
	return seq.Exists(values(source, true), func(v T) bool { return eq(v, value) })
}

// ContainsFuncN reports whether eq(element, value) holds for any element of
// source.
func ContainsFuncN[T any](source []T, value T, eq func(a, b T) bool) bool {
	return seq.Exists(values(source, false), func(v T) bool { return eq(v, value) })
}
