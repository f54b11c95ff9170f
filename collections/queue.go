package collections

import (
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// ConcurrentLinkedQueue is a FIFO queue safe for concurrent use. It never
// blocks.
type ConcurrentLinkedQueue[T any] struct {
	mu    sync.Mutex
	queue *linkedlistqueue.Queue
}

func newConcurrentLinkedQueue[T any]() *ConcurrentLinkedQueue[T] {
	return &ConcurrentLinkedQueue[T]{queue: linkedlistqueue.New()}
}

func (q *ConcurrentLinkedQueue[T]) Each(fn func(T)) {
	if q == nil {
		return
	}
	for _, v := range q.Values() {
		fn(v)
	}
}

func (q *ConcurrentLinkedQueue[T]) Add(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue.Enqueue(v)
	return true
}

func (q *ConcurrentLinkedQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.queue.Peek()
	return as[T](v), ok
}

func (q *ConcurrentLinkedQueue[T]) Poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.queue.Dequeue()
	return as[T](v), ok
}

func (q *ConcurrentLinkedQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Size()
}

func (q *ConcurrentLinkedQueue[T]) IsEmpty() bool { return q.Len() == 0 }

func (q *ConcurrentLinkedQueue[T]) Values() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return values[T](q.queue.Values())
}

func (q *ConcurrentLinkedQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue.Clear()
}

func (q *ConcurrentLinkedQueue[T]) String() string { return format(q.Values()) }

// PriorityQueue is a binary heap whose head is the least element under its
// comparator. Iteration follows heap layout, not priority. It is not safe
// for concurrent use.
type PriorityQueue[T any] struct {
	queue *priorityqueue.Queue
	cmp   Comparator[T]
}

func newPriorityQueue[T any](cmp Comparator[T]) *PriorityQueue[T] {
	cmp = orNatural(cmp)
	return &PriorityQueue[T]{queue: priorityqueue.NewWith(cmp.untyped()), cmp: cmp}
}

func (q *PriorityQueue[T]) Each(fn func(T)) {
	if q == nil {
		return
	}
	for _, v := range q.queue.Values() {
		fn(as[T](v))
	}
}

// Add inserts v. The first insertion compares v with itself so that an
// unordered element type fails immediately.
func (q *PriorityQueue[T]) Add(v T) bool {
	if q.queue.Empty() {
		q.cmp(v, v)
	}
	q.queue.Enqueue(v)
	return true
}

func (q *PriorityQueue[T]) Peek() (T, bool) {
	v, ok := q.queue.Peek()
	return as[T](v), ok
}

func (q *PriorityQueue[T]) Poll() (T, bool) {
	v, ok := q.queue.Dequeue()
	return as[T](v), ok
}

func (q *PriorityQueue[T]) Comparator() Comparator[T] { return q.cmp }

func (q *PriorityQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.queue.Size()
}

func (q *PriorityQueue[T]) IsEmpty() bool  { return q.Len() == 0 }
func (q *PriorityQueue[T]) Values() []T    { return values[T](q.queue.Values()) }
func (q *PriorityQueue[T]) Clear()         { q.queue.Clear() }
func (q *PriorityQueue[T]) String() string { return format(q.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// Deques
// ─────────────────────────────────────────────────────────────────────────────

// ArrayDeque is a deque over a growable array; its head is index 0. It is
// not safe for concurrent use.
type ArrayDeque[T any] struct {
	list *arraylist.List
}

func newArrayDeque[T any]() *ArrayDeque[T] { return &ArrayDeque[T]{list: arraylist.New()} }

func (d *ArrayDeque[T]) Each(fn func(T)) {
	if d == nil {
		return
	}
	d.list.Each(func(_ int, v interface{}) { fn(as[T](v)) })
}

func (d *ArrayDeque[T]) Add(v T) bool {
	d.list.Add(v)
	return true
}

func (d *ArrayDeque[T]) AddFirst(v T) { d.list.Insert(0, v) }
func (d *ArrayDeque[T]) AddLast(v T)  { d.list.Add(v) }

func (d *ArrayDeque[T]) PeekFirst() (T, bool) { return d.at(0) }
func (d *ArrayDeque[T]) PeekLast() (T, bool)  { return d.at(d.list.Size() - 1) }
func (d *ArrayDeque[T]) PollFirst() (T, bool) { return d.take(0) }
func (d *ArrayDeque[T]) PollLast() (T, bool)  { return d.take(d.list.Size() - 1) }

func (d *ArrayDeque[T]) Peek() (T, bool) { return d.PeekFirst() }
func (d *ArrayDeque[T]) Poll() (T, bool) { return d.PollFirst() }
func (d *ArrayDeque[T]) Push(v T)        { d.AddFirst(v) }
func (d *ArrayDeque[T]) Pop() (T, bool)  { return d.PollFirst() }

func (d *ArrayDeque[T]) at(i int) (T, bool) {
	v, ok := d.list.Get(i)
	return as[T](v), ok
}

func (d *ArrayDeque[T]) take(i int) (T, bool) {
	v, ok := d.list.Get(i)
	if ok {
		d.list.Remove(i)
	}
	return as[T](v), ok
}

func (d *ArrayDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.list.Size()
}

func (d *ArrayDeque[T]) IsEmpty() bool  { return d.Len() == 0 }
func (d *ArrayDeque[T]) Values() []T    { return values[T](d.list.Values()) }
func (d *ArrayDeque[T]) Clear()         { d.list.Clear() }
func (d *ArrayDeque[T]) String() string { return format(d.Values()) }

// ConcurrentLinkedDeque is a LinkedList guarded by a mutex. It is safe for
// concurrent use and never blocks.
type ConcurrentLinkedDeque[T any] struct {
	mu sync.Mutex
	d  *LinkedList[T]
}

func newConcurrentLinkedDeque[T any]() *ConcurrentLinkedDeque[T] {
	return &ConcurrentLinkedDeque[T]{d: newLinkedList[T]()}
}

func (d *ConcurrentLinkedDeque[T]) Each(fn func(T)) {
	if d == nil {
		return
	}
	for _, v := range d.Values() {
		fn(v)
	}
}

// locked runs fn with mu held.
func locked[R any](mu *sync.Mutex, fn func() R) R {
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func (d *ConcurrentLinkedDeque[T]) Add(v T) bool {
	return locked(&d.mu, func() bool { return d.d.Add(v) })
}

func (d *ConcurrentLinkedDeque[T]) AddFirst(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.d.AddFirst(v)
}

func (d *ConcurrentLinkedDeque[T]) AddLast(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.d.AddLast(v)
}

func (d *ConcurrentLinkedDeque[T]) PeekFirst() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.d.PeekFirst()
}

func (d *ConcurrentLinkedDeque[T]) PeekLast() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.d.PeekLast()
}

func (d *ConcurrentLinkedDeque[T]) PollFirst() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.d.PollFirst()
}

func (d *ConcurrentLinkedDeque[T]) PollLast() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.d.PollLast()
}

func (d *ConcurrentLinkedDeque[T]) Peek() (T, bool) { return d.PeekFirst() }
func (d *ConcurrentLinkedDeque[T]) Poll() (T, bool) { return d.PollFirst() }
func (d *ConcurrentLinkedDeque[T]) Push(v T)        { d.AddFirst(v) }
func (d *ConcurrentLinkedDeque[T]) Pop() (T, bool)  { return d.PollFirst() }

func (d *ConcurrentLinkedDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return locked(&d.mu, d.d.Len)
}

func (d *ConcurrentLinkedDeque[T]) IsEmpty() bool { return d.Len() == 0 }
func (d *ConcurrentLinkedDeque[T]) Values() []T   { return locked(&d.mu, d.d.Values) }

func (d *ConcurrentLinkedDeque[T]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.d.Clear()
}

func (d *ConcurrentLinkedDeque[T]) String() string { return format(d.Values()) }
