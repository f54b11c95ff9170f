package collections

import "context"

// Source is anything that can be walked element by element, in a stable
// order, exactly once per call. Every container in this package is a Source,
// as is [Slice].
//
// Implementations must tolerate a nil receiver and yield nothing for it.
type Source[T any] interface {
	Each(fn func(T))
}

// MapSource is anything that can be walked as string-keyed entries.
type MapSource[V any] interface {
	Each(fn func(key string, value V))
}

// Collection is the surface shared by every container kind.
type Collection[T any] interface {
	Source[T]

	// Add inserts v and reports whether the container changed. Sets return
	// false for duplicates; a SynchronousQueue returns false when no
	// consumer is waiting.
	Add(v T) bool

	Len() int
	IsEmpty() bool

	// Values returns a snapshot of the elements in iteration order.
	Values() []T

	Clear()
	String() string
}

// List is an indexed sequence.
type List[T any] interface {
	Collection[T]

	// Get returns the element at i, or false when i is out of range.
	Get(i int) (T, bool)

	// Set replaces the element at i. It returns false when i is out of range.
	Set(i int, v T) bool

	// Insert places v before the element at i; i may equal Len.
	Insert(i int, v T) bool

	RemoveAt(i int) (T, bool)
}

// Set holds each element at most once.
type Set[T any] interface {
	Collection[T]
	Contains(v T) bool
	Remove(v T) bool
}

// SortedSet is a Set iterated in comparator order.
type SortedSet[T any] interface {
	Set[T]
	First() (T, bool)
	Last() (T, bool)
	Comparator() Comparator[T]
}

// Queue yields elements from its head.
type Queue[T any] interface {
	Collection[T]
	Peek() (T, bool)
	Poll() (T, bool)
}

// Deque is a Queue that can be worked from both ends. Push and Pop act on the
// head.
type Deque[T any] interface {
	Queue[T]
	AddFirst(v T)
	AddLast(v T)
	PeekFirst() (T, bool)
	PeekLast() (T, bool)
	PollFirst() (T, bool)
	PollLast() (T, bool)
	Push(v T)
	Pop() (T, bool)
}

// BlockingQueue is a Queue whose consumers can wait for elements.
type BlockingQueue[T any] interface {
	Queue[T]

	// Put inserts v, waiting only if the queue cannot accept it yet.
	Put(ctx context.Context, v T) error

	// Take removes the head, waiting until one is available or ctx is done.
	Take(ctx context.Context) (T, error)
}

// BlockingDeque is a Deque whose consumers can wait at either end.
type BlockingDeque[T any] interface {
	Deque[T]
	BlockingQueue[T]
	PutFirst(ctx context.Context, v T) error
	PutLast(ctx context.Context, v T) error
	TakeFirst(ctx context.Context) (T, error)
	TakeLast(ctx context.Context) (T, error)
}

// Map is a string-keyed associative container.
type Map[V any] interface {
	MapSource[V]

	// Put stores value under key, replacing any previous value.
	Put(key string, value V)

	Get(key string) (V, bool)
	Remove(key string) bool
	ContainsKey(key string) bool
	Keys() []string
	Values() []V
	Entries() []Entry[V]
	Len() int
	IsEmpty() bool
	Clear()
	String() string
}

// Factory builds containers of one concrete kind. It is what a strategy
// variant turns into once the element type is known.
type Factory[T any, C Collection[T]] interface {
	// Empty returns a new empty container.
	Empty() C

	// From returns a new container seeded with src in source order. A nil
	// src yields an empty container.
	From(src Source[T]) C
}
