package query

import (
	"github.com/go-softwarelab/common/pkg/seq"
)

// Select maps each non-nil element of source through selector and drops nil
// results.
func Select[T, R any](source []T, selector func(T) R) []R {
	if source == nil {
		return []R{}
	}
	return collect(present(seq.Map(values(source, true), selector)), len(source))
}

// SelectN maps every element of source through selector, nil ones included.
func SelectN[T, R any](source []T, selector func(T) R) []R {
	if source == nil {
		return []R{}
	}
	return collect(seq.Map(values(source, false), selector), len(source))
}

// SelectMany maps each non-nil element of source to a slice and flattens the
// results. Nil slices and nil elements inside them are skipped.
func SelectMany[T, R any](source []T, selector func(T) []R) []R {
	if source == nil {
		return []R{}
	}
	return collect(present(seq.FlatMapSlices(values(source, true), selector)), len(source))
}

// SelectManyN maps every element of source to a slice and flattens the
// results, keeping nil elements.
func SelectManyN[T, R any](source []T, selector func(T) []R) []R {
	if source == nil {
		return []R{}
	}
	return collect(seq.FlatMapSlices(values(source, false), selector), len(source))
}

// Where returns the non-nil elements of source that satisfy predicate.
func Where[T any](source []T, predicate func(T) bool) []T {
	if source == nil {
		return []T{}
	}
	return collect(seq.Where(values(source, true), predicate), len(source))
}

// WhereN returns the elements of source that satisfy predicate. Nil elements
// are passed to predicate.
func WhereN[T any](source []T, predicate func(T) bool) []T {
	if source == nil {
		return []T{}
	}
	return collect(seq.Where(values(source, false), predicate), len(source))
}
