// Package easylife renders arbitrary values as short, deterministic strings
// for debug output.
//
// The central entry points are [Format] and [Sprintf]. Format classifies a
// value by what it can do, not by its declared type, and picks the first rule
// that applies:
//
//  1. A function with no arguments returning a string (func() string or any
//     named type with that shape) renders as the string it returns. Maps and
//     slices with their own String or Error method are treated the same way.
//  2. A mapping renders as {key:value,...}. Go maps, [Mappable] values,
//     iter.Seq2 iterators and yaml mapping nodes qualify. Go map keys are
//     sorted; the other kinds keep their own order.
//  3. A sequence renders as [item,...]. Slices, arrays, [Sequence] values,
//     iter.Seq iterators and yaml sequence nodes qualify. Strings never do.
//  4. Anything else renders as fmt.Sprint would.
//
// Keys, values and items are formatted recursively, so nested structures
// come out in one line:
//
//	easylife.Format(map[string]any{"a": 1, "b": []int{2, 3}}) // {a:1,b:[2,3]}
//	easylife.Format([]string{})                              // []
//	easylife.Format(func() string { return "hi" })           // hi
//
// # Templates
//
// [Sprintf] and [Fprintf] accept a fmt format string. Arguments matching
// rules 1-3 are replaced by their formatted text first; when none match the
// arguments are handed to fmt untouched:
//
//	easylife.Sprintf("user %d has roles %v", 7, []string{"admin", "dev"})
//	// user 7 has roles [admin,dev]
//
// # Custom Types
//
// Implement [Mappable] or [Sequence] to control how a type is walked:
//
//	func (h Headers) Pairs() []easylife.KeyValue { ... }
//
// # Structured Logging
//
// [Attr] and [Value] carry formatted values into log/slog records.
package easylife
