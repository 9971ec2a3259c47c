package easylife

import (
	"iter"
	"reflect"
)

// FormatSeq renders the items of seq as a sequence. A nil seq renders as [].
func FormatSeq[T any](seq iter.Seq[T]) string {
	if seq == nil {
		return "[]"
	}
	return formatSequence(func(yield func(any) bool) {
		for item := range seq {
			if !yield(item) {
				return
			}
		}
	})
}

// FormatChan drains ch and renders what it received as a sequence. It blocks
// until ch is closed. A nil channel renders as [].
func FormatChan[T any](ch <-chan T) string {
	if ch == nil {
		return "[]"
	}
	return FormatSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// producesString reports whether t has the shape func() S where S is a
// string kind.
func producesString(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() == 1 && t.Out(0).Kind() == reflect.String
}

// yieldsItems reports whether t has the shape of an iter.Seq:
// func(yield func(V) bool).
func yieldsItems(t reflect.Type) bool {
	y, ok := yieldFunc(t)
	return ok && y.NumIn() == 1
}

// yieldsPairs reports whether t has the shape of an iter.Seq2:
// func(yield func(K, V) bool).
func yieldsPairs(t reflect.Type) bool {
	y, ok := yieldFunc(t)
	return ok && y.NumIn() == 2
}

func yieldFunc(t reflect.Type) (reflect.Type, bool) {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return nil, false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.IsVariadic() || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	return y, true
}

// reflectItems adapts an iter.Seq of any element type to iter.Seq[any].
func reflectItems(fn reflect.Value) iter.Seq[any] {
	y := fn.Type().In(0)
	return func(yield func(any) bool) {
		fn.Call([]reflect.Value{reflect.MakeFunc(y, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface())).Convert(y.Out(0))}
		})})
	}
}

// reflectPairs adapts an iter.Seq2 of any key and value types to
// iter.Seq2[any, any].
func reflectPairs(fn reflect.Value) iter.Seq2[any, any] {
	y := fn.Type().In(0)
	return func(yield func(any, any) bool) {
		fn.Call([]reflect.Value{reflect.MakeFunc(y, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface(), args[1].Interface())).Convert(y.Out(0))}
		})})
	}
}
