package collections

import (
	"fmt"
	"sort"
	"strings"
)

// Slice adapts a plain slice to [Source].
type Slice[T any] []T

// Each calls fn for every element in index order.
func (s Slice[T]) Each(fn func(T)) {
	for _, v := range s {
		fn(v)
	}
}

// StdMap adapts a Go map to [MapSource]. Keys are visited in ascending order
// so that seeding and rendering are reproducible.
type StdMap[V any] map[string]V

func (m StdMap[V]) Each(fn func(string, V)) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m[k])
	}
}

// seed adds every element of src to c.
func seed[T any, C Collection[T]](c C, src Source[T]) C {
	if src != nil {
		src.Each(func(v T) { c.Add(v) })
	}
	return c
}

// as converts a value held by an untyped backing structure back to T. A nil
// interface becomes the zero T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

func values[T any](in []any) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = as[T](v)
	}
	return out
}

// format renders elements as "[a, b, c]".
func format[T any](vs []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// formatEntries renders entries as "{k=v, ...}".
func formatEntries[V any](es []Entry[V]) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range es {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", e.Key, e.Value)
	}
	b.WriteByte('}')
	return b.String()
}
