package collections

import "fmt"

// Entry is one key/value association of a [Map].
type Entry[V any] struct {
	Key   string
	Value V
}

// String returns "(key, value)".
func (e Entry[V]) String() string {
	return fmt.Sprintf("(%s, %v)", e.Key, e.Value)
}
