package transform

import (
	"reflect"

	"github.com/hasbyte1/go-collection-strategies/collections"
	"github.com/hasbyte1/go-collection-strategies/strategy"
)

// Filter returns the elements of src for which pred is true, in source
// order.
func Filter[T any](pred func(T) bool, src collections.Source[T]) collections.List[T] {
	return filterInto(collections.NewList[T](strategy.ListArray), pred, src)
}

// FilterSlice is Filter over a slice.
func FilterSlice[T any](pred func(T) bool, items []T) collections.List[T] {
	return Filter(pred, collections.Slice[T](items))
}

// FilterAll filters each source in turn and concatenates the results.
func FilterAll[T any](pred func(T) bool, srcs ...collections.Source[T]) collections.List[T] {
	out := collections.NewList[T](strategy.ListArray)
	for _, src := range srcs {
		filterInto(out, pred, src)
	}
	return out
}

// FilterSlices is FilterAll over slices.
func FilterSlices[T any](pred func(T) bool, slices ...[]T) collections.List[T] {
	out := collections.NewList[T](strategy.ListArray)
	for _, items := range slices {
		filterInto(out, pred, collections.Slice[T](items))
	}
	return out
}

// FilterInto is Filter with the result held in a list of the kind s selects.
func FilterInto[T any](pred func(T) bool, src collections.Source[T], s strategy.List) collections.List[T] {
	return collections.ListFrom[T](s, Filter(pred, src))
}

func filterInto[T any](out collections.List[T], pred func(T) bool, src collections.Source[T]) collections.List[T] {
	if pred == nil || src == nil {
		return out
	}
	src.Each(func(v T) {
		if pred(v) {
			out.Add(v)
		}
	})
	return out
}

// FirstNonNil returns the first element of src that is not nil. Only
// pointers, interfaces, maps, slices, funcs and channels can be nil; for any
// other T the first element is returned.
func FirstNonNil[T any](src collections.Source[T]) (T, bool) {
	var (
		first T
		found bool
	)
	if src == nil {
		return first, false
	}
	src.Each(func(v T) {
		if !found && !isNil(v) {
			first, found = v, true
		}
	})
	return first, found
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
