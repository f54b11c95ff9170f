package collections

import "github.com/hasbyte1/go-collection-strategies/strategy"

// ─────────────────────────────────────────────────────────────────────────────
// Lists
// ─────────────────────────────────────────────────────────────────────────────

// NewList returns an empty list backed by the structure s selects.
func NewList[T any](s strategy.List) List[T] {
	switch s.Resolve() {
	case strategy.ListLinked:
		return newLinkedList[T]()
	case strategy.ListStack:
		return newStack[T]()
	case strategy.ListVector:
		return newVector[T]()
	default:
		return newArrayList[T]()
	}
}

// ListFrom returns a list of the kind s selects holding src in source order.
func ListFrom[T any](s strategy.List, src Source[T]) List[T] { return seed(NewList[T](s), src) }

// ListOf is ListFrom over its arguments.
func ListOf[T any](s strategy.List, items ...T) List[T] { return ListFrom[T](s, Slice[T](items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Sets
// ─────────────────────────────────────────────────────────────────────────────

// NewSet returns an empty set backed by the structure s selects.
func NewSet[T comparable](s strategy.Set) Set[T] {
	if s.Resolve() == strategy.SetLinkedHash {
		return newLinkedHashSet[T]()
	}
	return newHashSet[T]()
}

// SetFrom returns a set of the kind s selects holding the distinct elements
// of src.
func SetFrom[T comparable](s strategy.Set, src Source[T]) Set[T] { return seed(NewSet[T](s), src) }

// SetOf is SetFrom over its arguments.
func SetOf[T comparable](s strategy.Set, items ...T) Set[T] { return SetFrom[T](s, Slice[T](items)) }

// NewSortedSet returns an empty sorted set in natural order. Adding an
// element type with no natural order panics with *OrderingError.
func NewSortedSet[T any](s strategy.SortedSet) SortedSet[T] { return NewSortedSetFunc[T](s, nil) }

// NewSortedSetFunc returns an empty sorted set ordered by cmp, or by natural
// order when cmp is nil.
func NewSortedSetFunc[T any](s strategy.SortedSet, cmp Comparator[T]) SortedSet[T] {
	if s.Resolve() == strategy.SortedSetConcurrentSkipList {
		return newConcurrentSkipListSet(cmp)
	}
	return newTreeSet(cmp)
}

// SortedSetFrom returns a sorted set in natural order holding src.
func SortedSetFrom[T any](s strategy.SortedSet, src Source[T]) SortedSet[T] {
	return seed(NewSortedSet[T](s), src)
}

// SortedSetFromFunc returns a sorted set ordered by cmp holding src.
func SortedSetFromFunc[T any](s strategy.SortedSet, cmp Comparator[T], src Source[T]) SortedSet[T] {
	return seed(NewSortedSetFunc(s, cmp), src)
}

// SortedSetOf is SortedSetFrom over its arguments.
func SortedSetOf[T any](s strategy.SortedSet, items ...T) SortedSet[T] {
	return SortedSetFrom[T](s, Slice[T](items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Queues & deques
// ─────────────────────────────────────────────────────────────────────────────

// NewQueue returns an empty queue backed by the structure s selects.
// Priority variants order by natural order.
func NewQueue[T any](s strategy.Queue) Queue[T] { return NewQueueFunc[T](s, nil) }

// NewQueueFunc is NewQueue with the comparator used by the priority
// variants. Other variants ignore cmp.
func NewQueueFunc[T any](s strategy.Queue, cmp Comparator[T]) Queue[T] {
	switch s.Resolve() {
	case strategy.QueueConcurrentLinked:
		return newConcurrentLinkedQueue[T]()
	case strategy.QueueLinkedBlocking:
		return newLinkedBlockingQueue[T]()
	case strategy.QueueLinkedTransfer:
		return newLinkedTransferQueue[T]()
	case strategy.QueuePriorityBlocking:
		return newPriorityBlockingQueue(cmp)
	case strategy.QueuePriority:
		return newPriorityQueue(cmp)
	case strategy.QueueSynchronous:
		return newSynchronousQueue[T]()
	case strategy.QueueArrayDeque:
		return newArrayDeque[T]()
	case strategy.QueueConcurrentLinkedDeque:
		return newConcurrentLinkedDeque[T]()
	case strategy.QueueLinkedBlockingDeque:
		return newLinkedBlockingDeque[T]()
	default:
		return newLinkedList[T]()
	}
}

// QueueFrom returns a queue of the kind s selects holding src in source
// order. A SYNCHRONOUS_QUEUE has no capacity and stays empty.
func QueueFrom[T any](s strategy.Queue, src Source[T]) Queue[T] { return seed(NewQueue[T](s), src) }

// QueueFromFunc is QueueFrom with the comparator used by priority variants.
func QueueFromFunc[T any](s strategy.Queue, cmp Comparator[T], src Source[T]) Queue[T] {
	return seed(NewQueueFunc(s, cmp), src)
}

// QueueOf is QueueFrom over its arguments.
func QueueOf[T any](s strategy.Queue, items ...T) Queue[T] { return QueueFrom[T](s, Slice[T](items)) }

// NewDeque returns an empty deque backed by the structure s selects.
func NewDeque[T any](s strategy.Deque) Deque[T] {
	switch s.Resolve() {
	case strategy.DequeArray:
		return newArrayDeque[T]()
	case strategy.DequeConcurrentLinked:
		return newConcurrentLinkedDeque[T]()
	case strategy.DequeLinkedBlocking:
		return newLinkedBlockingDeque[T]()
	default:
		return newLinkedList[T]()
	}
}

// DequeFrom returns a deque of the kind s selects holding src, head first.
func DequeFrom[T any](s strategy.Deque, src Source[T]) Deque[T] { return seed(NewDeque[T](s), src) }

// DequeOf is DequeFrom over its arguments.
func DequeOf[T any](s strategy.Deque, items ...T) Deque[T] { return DequeFrom[T](s, Slice[T](items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Maps
// ─────────────────────────────────────────────────────────────────────────────

// NewMap returns an empty map backed by the structure s selects.
func NewMap[V any](s strategy.Map) Map[V] {
	switch s.Resolve() {
	case strategy.MapHashtable:
		return newHashtable[V]()
	case strategy.MapLinkedHash:
		return newLinkedHashMap[V]()
	case strategy.MapIdentityHash:
		return newIdentityHashMap[V]()
	case strategy.MapConcurrentHash:
		return newConcurrentHashMap[V]()
	case strategy.MapWeakHash:
		return newWeakHashMap[V]()
	case strategy.MapTree:
		return newTreeMap[V]()
	default:
		return newHashMap[V]()
	}
}

// MapFrom returns a map of the kind s selects holding every entry of src,
// put in source order.
func MapFrom[V any](s strategy.Map, src MapSource[V]) Map[V] {
	m := NewMap[V](s)
	if src != nil {
		src.Each(m.Put)
	}
	return m
}

// MapOf is MapFrom over a Go map, whose keys are put in ascending order.
func MapOf[V any](s strategy.Map, entries map[string]V) Map[V] {
	return MapFrom[V](s, StdMap[V](entries))
}

// ─────────────────────────────────────────────────────────────────────────────
// Factories
// ─────────────────────────────────────────────────────────────────────────────

type factory[T any, C Collection[T]] struct {
	empty func() C
}

func (f factory[T, C]) Empty() C             { return f.empty() }
func (f factory[T, C]) From(src Source[T]) C { return seed(f.empty(), src) }

// Lists binds s to the element type T.
func Lists[T any](s strategy.List) Factory[T, List[T]] {
	s = s.Resolve()
	return factory[T, List[T]]{func() List[T] { return NewList[T](s) }}
}

// Sets binds s to the element type T.
func Sets[T comparable](s strategy.Set) Factory[T, Set[T]] {
	s = s.Resolve()
	return factory[T, Set[T]]{func() Set[T] { return NewSet[T](s) }}
}

// SortedSets binds s to the element type T in natural order.
func SortedSets[T any](s strategy.SortedSet) Factory[T, SortedSet[T]] {
	return SortedSetsFunc[T](s, nil)
}

// SortedSetsFunc binds s and cmp to the element type T.
func SortedSetsFunc[T any](s strategy.SortedSet, cmp Comparator[T]) Factory[T, SortedSet[T]] {
	s = s.Resolve()
	return factory[T, SortedSet[T]]{func() SortedSet[T] { return NewSortedSetFunc(s, cmp) }}
}

// Queues binds s to the element type T.
func Queues[T any](s strategy.Queue) Factory[T, Queue[T]] { return QueuesFunc[T](s, nil) }

// QueuesFunc binds s and the priority comparator cmp to the element type T.
func QueuesFunc[T any](s strategy.Queue, cmp Comparator[T]) Factory[T, Queue[T]] {
	s = s.Resolve()
	return factory[T, Queue[T]]{func() Queue[T] { return NewQueueFunc(s, cmp) }}
}

// Deques binds s to the element type T.
func Deques[T any](s strategy.Deque) Factory[T, Deque[T]] {
	s = s.Resolve()
	return factory[T, Deque[T]]{func() Deque[T] { return NewDeque[T](s) }}
}
