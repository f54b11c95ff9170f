package collections

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Comparator is a total order over T: negative when a sorts before b, zero
// when they are equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Natural returns the ascending comparator of an ordered type.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Reverse inverts cmp. A nil cmp is treated as natural order.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	cmp = orNatural(cmp)
	return func(a, b T) int { return cmp(b, a) }
}

// orNatural returns cmp, or the natural order of T when cmp is nil.
//
// Natural order covers integers, unsigned integers, floats, strings (and
// types defined on them) and any T with a Compare(T) int method. Comparing
// anything else panics with *OrderingError.
func orNatural[T any](cmp Comparator[T]) Comparator[T] {
	if cmp != nil {
		return cmp
	}
	return func(a, b T) int {
		if c, ok := any(a).(interface{ Compare(T) int }); ok {
			return c.Compare(b)
		}
		return compareValues(a, b)
	}
}

func compareValues(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Type() == vb.Type() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return sign(va.Int() < vb.Int(), va.Int() > vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return sign(va.Uint() < vb.Uint(), va.Uint() > vb.Uint())
		case reflect.Float32, reflect.Float64:
			return sign(va.Float() < vb.Float(), va.Float() > vb.Float())
		case reflect.String:
			return strings.Compare(va.String(), vb.String())
		}
	}
	panic(&OrderingError{Type: fmt.Sprintf("%T", a)})
}

func sign(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

// untyped adapts cmp to the element-erased comparator of the gods
// structures.
func (cmp Comparator[T]) untyped() utils.Comparator {
	return func(a, b interface{}) int { return cmp(as[T](a), as[T](b)) }
}
