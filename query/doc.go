// Package query provides nil-tolerant replacements for common sequence
// operations over slices.
//
// Every function accepts a nil slice and treats it exactly like an empty one:
// sequence results come back as empty, non-nil slices, [Any] and [Contains]
// report false, [Count] and [Sum] return zero and [First] returns the element
// type's zero value. Nothing in this package panics on nil input; a panic
// raised by a caller-supplied selector, predicate or comparer is not
// recovered.
//
// # Null Handling
//
// Most operations come in two flavors:
//
//   - The plain name strips nil elements before the operation runs.
//   - The N-suffixed name keeps nil elements and hands them to the callback.
//
// [Select] and [SelectMany] also strip nil results produced by the selector,
// and [SelectMany] drops nil elements of each produced slice.
//
// An element is nil when its type can hold nil (pointer, interface, map,
// slice, func, chan) and it does. An interface holding a typed nil pointer
// counts as nil. For element types that can never be nil the two flavors
// behave identically and no reflection is involved.
//
//	names := query.Select(users, func(u *User) string { return u.Name })
//	adults := query.Where(users, func(u *User) bool { return u.Age >= 18 })
//	total := query.SumBy(orders, func(o *Order) float64 { return o.Amount })
//
// # Sets
//
// [Union] removes duplicates, but when exactly one side is nil the other side
// is returned as given without deduplication. [Except] is a non-distinct set
// difference: duplicates in the first slice survive.
//
// # Time
//
// [MinTime] and [MaxTime] ignore the sentinels [MinValue] and [MaxValue] and
// return [MinValue] when nothing else is left.
//
// Operations are built on lazy [iter.Seq] pipelines from
// github.com/go-softwarelab/common/pkg/seq and are only materialized into a
// slice at the end.
package query
