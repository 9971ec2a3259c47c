package query

import "github.com/go-softwarelab/common/pkg/seq"

// Union returns the distinct elements of first followed by those of second,
// without nil elements. If exactly one argument is nil, the other is returned
// without deduplication, only stripped of nil elements.
func Union[T comparable](first, second []T) []T {
	return stripped(UnionN(first, second))
}

// UnionN returns the distinct elements of first followed by those of second.
// If exactly one argument is nil, the other is returned as is. Elements whose
// dynamic type has no == are compared by deep equality.
func UnionN[T comparable](first, second []T) []T {
	if !hashable[T]() {
		return UnionFuncN(first, second, equal[T])
	}
	if out, ok := unionShortcut(first, second); ok {
		return out
	}
	all := seq.Concat(seq.FromSlice(first), seq.FromSlice(second))
	return collect(seq.Uniq(all), len(first)+len(second))
}

// UnionFunc is like [Union] but uses eq to detect duplicates.
func UnionFunc[T any](first, second []T, eq func(a, b T) bool) []T {
	return stripped(UnionFuncN(first, second, eq))
}

// UnionFuncN is like [UnionN] but uses eq to detect duplicates.
func UnionFuncN[T any](first, second []T, eq func(a, b T) bool) []T {
	if out, ok := unionShortcut(first, second); ok {
		return out
	}
	out := make([]T, 0, len(first)+len(second))
	for _, part := range [2][]T{first, second} {
		for _, v := range part {
			if !ContainsFuncN(out, v, eq) {
				out = append(out, v)
			}
		}
	}
	return out
}

func unionShortcut[T any](first, second []T) ([]T, bool) {
	switch {
	case first == nil && second == nil:
		return []T{}, true
	case second == nil:
		return first, true
	case first == nil:
		return second, true
	default:
		return nil, false
	}
}

// Except returns the non-nil elements of first that are not in second.
// Unlike a set difference, duplicates in first are kept. A nil second returns
// first without its nil elements.
func Except[T comparable](first, second []T) []T {
	return except(first, second, true)
}

// ExceptN returns the elements of first that are not in second, keeping
// duplicates and nil elements. A nil second returns first as is.
func ExceptN[T comparable](first, second []T) []T {
	return except(first, second, false)
}

func except[T comparable](first, second []T, strip bool) []T {
	if !hashable[T]() {
		return exceptFunc(first, second, strip, equal[T])
	}
	if first == nil {
		return []T{}
	}
	if second == nil {
		if strip {
			return stripped(first)
		}
		return first
	}
	exclude := make(map[T]struct{}, len(second))
	for v := range values(second, strip) {
		exclude[v] = struct{}{}
	}
	return collect(seq.Where(values(first, strip), func(v T) bool {
		_, found := exclude[v]
		return !found
	}), len(first))
}

// ExceptFunc is like [Except] but compares elements with eq.
func ExceptFunc[T any](first, second []T, eq func(a, b T) bool) []T {
	return exceptFunc(first, second, true, eq)
}

// ExceptFuncN is like [ExceptN] but compares elements with eq.
func ExceptFuncN[T any](first, second []T, eq func(a, b T) bool) []T {
	return exceptFunc(first, second, false, eq)
}

func exceptFunc[T any](first, second []T, strip bool, eq func(a, b T) bool) []T {
	if first == nil {
		return []T{}
	}
	if second == nil {
		if strip {
			return stripped(first)
		}
		return first
	}
	excluded := func(x T) bool {
		return seq.Exists(values(second, strip), func(y T) bool { return eq(x, y) })
	}
	return collect(seq.Where(values(first, strip), func(x T) bool { return !excluded(x) }), len(first))
}
