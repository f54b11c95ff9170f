package transform

import (
	"github.com/hasbyte1/go-collection-strategies/collections"
	"github.com/hasbyte1/go-collection-strategies/strategy"
)

// Transform returns f.Empty() with fn(e) added for every element e of src.
func Transform[S, T any, C collections.Collection[T]](
	src collections.Source[S],
	fn func(S) T,
	f collections.Factory[T, C],
) C {
	out := f.Empty()
	if src == nil || fn == nil {
		return out
	}
	src.Each(func(e S) { out.Add(fn(e)) })
	return out
}

// ToList maps src into a list of the kind s selects.
func ToList[S, T any](src collections.Source[S], fn func(S) T, s strategy.List) collections.List[T] {
	return Transform(src, fn, collections.Lists[T](s))
}

// ToSet maps src into a set of the kind s selects.
func ToSet[S any, T comparable](src collections.Source[S], fn func(S) T, s strategy.Set) collections.Set[T] {
	return Transform(src, fn, collections.Sets[T](s))
}

// ToSortedSet maps src into a sorted set in natural order. Mapping to a type
// with no natural order panics with *collections.OrderingError.
func ToSortedSet[S, T any](src collections.Source[S], fn func(S) T, s strategy.SortedSet) collections.SortedSet[T] {
	return Transform(src, fn, collections.SortedSets[T](s))
}

// ToSortedSetFunc maps src into a sorted set ordered by cmp.
func ToSortedSetFunc[S, T any](
	src collections.Source[S],
	fn func(S) T,
	s strategy.SortedSet,
	cmp collections.Comparator[T],
) collections.SortedSet[T] {
	return Transform(src, fn, collections.SortedSetsFunc(s, cmp))
}

// ToQueue maps src into a queue of the kind s selects.
func ToQueue[S, T any](src collections.Source[S], fn func(S) T, s strategy.Queue) collections.Queue[T] {
	return Transform(src, fn, collections.Queues[T](s))
}

// ToQueueFunc is ToQueue with the comparator used by priority variants.
func ToQueueFunc[S, T any](
	src collections.Source[S],
	fn func(S) T,
	s strategy.Queue,
	cmp collections.Comparator[T],
) collections.Queue[T] {
	return Transform(src, fn, collections.QueuesFunc(s, cmp))
}

// ToDeque maps src into a deque of the kind s selects.
func ToDeque[S, T any](src collections.Source[S], fn func(S) T, s strategy.Deque) collections.Deque[T] {
	return Transform(src, fn, collections.Deques[T](s))
}

// ToMap puts key(e) => value(e) for every element e of src into a map of the
// kind s selects. Later elements replace earlier ones under the same key. A
// nil src, key or value function yields an empty map.
func ToMap[S, V any](
	src collections.Source[S],
	key func(S) string,
	value func(S) V,
	s strategy.Map,
) collections.Map[V] {
	out := collections.NewMap[V](s)
	if src == nil || key == nil || value == nil {
		return out
	}
	src.Each(func(e S) { out.Put(key(e), value(e)) })
	return out
}
