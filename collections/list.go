package collections

import (
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// ─────────────────────────────────────────────────────────────────────────────
// ArrayList
// ─────────────────────────────────────────────────────────────────────────────

// ArrayList is a growable array. It is not safe for concurrent use.
type ArrayList[T any] struct {
	list *arraylist.List
}

func newArrayList[T any]() *ArrayList[T] { return &ArrayList[T]{list: arraylist.New()} }

func (l *ArrayList[T]) Each(fn func(T)) {
	if l == nil {
		return
	}
	l.list.Each(func(_ int, v interface{}) { fn(as[T](v)) })
}

func (l *ArrayList[T]) Add(v T) bool {
	l.list.Add(v)
	return true
}

func (l *ArrayList[T]) Get(i int) (T, bool) {
	v, ok := l.list.Get(i)
	return as[T](v), ok
}

func (l *ArrayList[T]) Set(i int, v T) bool {
	if i < 0 || i >= l.list.Size() {
		return false
	}
	l.list.Set(i, v)
	return true
}

func (l *ArrayList[T]) Insert(i int, v T) bool {
	if i < 0 || i > l.list.Size() {
		return false
	}
	l.list.Insert(i, v)
	return true
}

func (l *ArrayList[T]) RemoveAt(i int) (T, bool) {
	v, ok := l.list.Get(i)
	if ok {
		l.list.Remove(i)
	}
	return as[T](v), ok
}

func (l *ArrayList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.list.Size()
}

func (l *ArrayList[T]) IsEmpty() bool  { return l.Len() == 0 }
func (l *ArrayList[T]) Values() []T    { return values[T](l.list.Values()) }
func (l *ArrayList[T]) Clear()         { l.list.Clear() }
func (l *ArrayList[T]) String() string { return format(l.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// LinkedList
// ─────────────────────────────────────────────────────────────────────────────

// LinkedList is a doubly linked list. It serves as a List, a Queue and a
// Deque; as a queue its head is index 0. It is not safe for concurrent use.
type LinkedList[T any] struct {
	list *doublylinkedlist.List
}

func newLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{list: doublylinkedlist.New()}
}

func (l *LinkedList[T]) Each(fn func(T)) {
	if l == nil {
		return
	}
	l.list.Each(func(_ int, v interface{}) { fn(as[T](v)) })
}

func (l *LinkedList[T]) Add(v T) bool {
	l.list.Append(v)
	return true
}

func (l *LinkedList[T]) Get(i int) (T, bool) {
	v, ok := l.list.Get(i)
	return as[T](v), ok
}

func (l *LinkedList[T]) Set(i int, v T) bool {
	if i < 0 || i >= l.list.Size() {
		return false
	}
	l.list.Set(i, v)
	return true
}

func (l *LinkedList[T]) Insert(i int, v T) bool {
	if i < 0 || i > l.list.Size() {
		return false
	}
	l.list.Insert(i, v)
	return true
}

func (l *LinkedList[T]) RemoveAt(i int) (T, bool) {
	v, ok := l.list.Get(i)
	if ok {
		l.list.Remove(i)
	}
	return as[T](v), ok
}

func (l *LinkedList[T]) AddFirst(v T) { l.list.Prepend(v) }
func (l *LinkedList[T]) AddLast(v T)  { l.list.Append(v) }

func (l *LinkedList[T]) PeekFirst() (T, bool) { return l.Get(0) }
func (l *LinkedList[T]) PeekLast() (T, bool)  { return l.Get(l.list.Size() - 1) }
func (l *LinkedList[T]) PollFirst() (T, bool) { return l.RemoveAt(0) }
func (l *LinkedList[T]) PollLast() (T, bool)  { return l.RemoveAt(l.list.Size() - 1) }

func (l *LinkedList[T]) Peek() (T, bool) { return l.PeekFirst() }
func (l *LinkedList[T]) Poll() (T, bool) { return l.PollFirst() }
func (l *LinkedList[T]) Push(v T)        { l.AddFirst(v) }
func (l *LinkedList[T]) Pop() (T, bool)  { return l.PollFirst() }

func (l *LinkedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.list.Size()
}

func (l *LinkedList[T]) IsEmpty() bool  { return l.Len() == 0 }
func (l *LinkedList[T]) Values() []T    { return values[T](l.list.Values()) }
func (l *LinkedList[T]) Clear()         { l.list.Clear() }
func (l *LinkedList[T]) String() string { return format(l.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// Vector & Stack
// ─────────────────────────────────────────────────────────────────────────────

// Vector is an ArrayList guarded by a mutex. It is safe for concurrent use.
type Vector[T any] struct {
	mu   sync.Mutex
	list *ArrayList[T]
}

func newVector[T any]() *Vector[T] { return &Vector[T]{list: newArrayList[T]()} }

// Each walks a snapshot, so fn may call back into the vector.
func (v *Vector[T]) Each(fn func(T)) {
	if v == nil {
		return
	}
	for _, e := range v.Values() {
		fn(e)
	}
}

func (v *Vector[T]) Add(e T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Add(e)
}

func (v *Vector[T]) Get(i int) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Get(i)
}

func (v *Vector[T]) Set(i int, e T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Set(i, e)
}

func (v *Vector[T]) Insert(i int, e T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Insert(i, e)
}

func (v *Vector[T]) RemoveAt(i int) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.RemoveAt(i)
}

func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Len()
}

func (v *Vector[T]) IsEmpty() bool { return v.Len() == 0 }

func (v *Vector[T]) Values() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Values()
}

func (v *Vector[T]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.list.Clear()
}

func (v *Vector[T]) String() string { return format(v.Values()) }

// Stack is a Vector with last-in first-out operations on its tail.
type Stack[T any] struct {
	Vector[T]
}

func newStack[T any]() *Stack[T] { return &Stack[T]{Vector: Vector[T]{list: newArrayList[T]()}} }

func (s *Stack[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	s.Vector.Each(fn)
}

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.Vector.Len()
}

func (s *Stack[T]) IsEmpty() bool { return s.Len() == 0 }

// Push appends v to the top.
func (s *Stack[T]) Push(v T) { s.Add(v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.RemoveAt(s.list.Len() - 1)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Get(s.list.Len() - 1)
}
