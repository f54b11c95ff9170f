package collections

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

// signal wakes goroutines waiting for an element. Sends never block and at
// most one wake-up is kept pending; a consumer that takes an element while
// more remain passes the wake-up on.
type signal chan struct{}

func newSignal() signal { return make(signal, 1) }

func (s signal) notify() {
	select {
	case s <- struct{}{}:
	default:
	}
}

// await polls until it yields an element or ctx is done.
func await[T any](ctx context.Context, wake signal, poll func() (T, bool)) (T, error) {
	for {
		if v, ok := poll(); ok {
			return v, nil
		}
		select {
		case <-wake:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// LinkedBlockingQueue
// ─────────────────────────────────────────────────────────────────────────────

// LinkedBlockingQueue is an unbounded FIFO queue over a ring buffer. Take
// waits for an element; Put never waits. It is safe for concurrent use.
type LinkedBlockingQueue[T any] struct {
	mu   sync.Mutex
	ring *queue.Queue
	wake signal
}

func newLinkedBlockingQueue[T any]() *LinkedBlockingQueue[T] {
	return &LinkedBlockingQueue[T]{ring: queue.New(), wake: newSignal()}
}

func (q *LinkedBlockingQueue[T]) Each(fn func(T)) {
	if q == nil {
		return
	}
	for _, v := range q.Values() {
		fn(v)
	}
}

func (q *LinkedBlockingQueue[T]) Add(v T) bool {
	q.mu.Lock()
	q.ring.Add(v)
	q.mu.Unlock()
	q.wake.notify()
	return true
}

func (q *LinkedBlockingQueue[T]) Put(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.Add(v)
	return nil
}

func (q *LinkedBlockingQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.Length() == 0 {
		var zero T
		return zero, false
	}
	return as[T](q.ring.Peek()), true
}

func (q *LinkedBlockingQueue[T]) Poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.Length() == 0 {
		var zero T
		return zero, false
	}
	v := as[T](q.ring.Remove())
	if q.ring.Length() > 0 {
		q.wake.notify()
	}
	return v, true
}

func (q *LinkedBlockingQueue[T]) Take(ctx context.Context) (T, error) {
	return await(ctx, q.wake, q.Poll)
}

func (q *LinkedBlockingQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Length()
}

func (q *LinkedBlockingQueue[T]) IsEmpty() bool { return q.Len() == 0 }

func (q *LinkedBlockingQueue[T]) Values() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, q.ring.Length())
	for i := range out {
		out[i] = as[T](q.ring.Get(i))
	}
	return out
}

func (q *LinkedBlockingQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ring = queue.New()
}

func (q *LinkedBlockingQueue[T]) String() string { return format(q.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// LinkedTransferQueue
// ─────────────────────────────────────────────────────────────────────────────

type transferSlot[T any] struct {
	v         T
	done      chan struct{} // nil unless a producer waits in Transfer
	cancelled bool
}

// LinkedTransferQueue is a LinkedBlockingQueue whose producers may also wait
// in Transfer until a consumer has received their element. It is safe for
// concurrent use.
type LinkedTransferQueue[T any] struct {
	mu   sync.Mutex
	ring *queue.Queue
	live int
	wake signal
}

func newLinkedTransferQueue[T any]() *LinkedTransferQueue[T] {
	return &LinkedTransferQueue[T]{ring: queue.New(), wake: newSignal()}
}

func (q *LinkedTransferQueue[T]) Each(fn func(T)) {
	if q == nil {
		return
	}
	for _, v := range q.Values() {
		fn(v)
	}
}

func (q *LinkedTransferQueue[T]) enqueue(s *transferSlot[T]) {
	q.mu.Lock()
	q.ring.Add(s)
	q.live++
	q.mu.Unlock()
	q.wake.notify()
}

func (q *LinkedTransferQueue[T]) Add(v T) bool {
	q.enqueue(&transferSlot[T]{v: v})
	return true
}

func (q *LinkedTransferQueue[T]) Put(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.Add(v)
	return nil
}

// Transfer enqueues v and waits until a consumer has removed it. When ctx
// ends first, v is withdrawn from the queue and ctx.Err is returned.
func (q *LinkedTransferQueue[T]) Transfer(ctx context.Context, v T) error {
	s := &transferSlot[T]{v: v, done: make(chan struct{})}
	q.enqueue(s)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	select {
	case <-s.done:
		return nil
	default:
	}
	s.cancelled = true
	q.live--
	return ctx.Err()
}

// front drops withdrawn slots from the head and returns the first live one.
// Callers hold mu.
func (q *LinkedTransferQueue[T]) front() *transferSlot[T] {
	for q.ring.Length() > 0 {
		s := q.ring.Peek().(*transferSlot[T])
		if !s.cancelled {
			return s
		}
		q.ring.Remove()
	}
	return nil
}

func (q *LinkedTransferQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if s := q.front(); s != nil {
		return s.v, true
	}
	var zero T
	return zero, false
}

func (q *LinkedTransferQueue[T]) Poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	s := q.front()
	if s == nil {
		var zero T
		return zero, false
	}
	q.ring.Remove()
	q.live--
	if s.done != nil {
		close(s.done)
	}
	if q.live > 0 {
		q.wake.notify()
	}
	return s.v, true
}

func (q *LinkedTransferQueue[T]) Take(ctx context.Context) (T, error) {
	return await(ctx, q.wake, q.Poll)
}

func (q *LinkedTransferQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.live
}

func (q *LinkedTransferQueue[T]) IsEmpty() bool { return q.Len() == 0 }

func (q *LinkedTransferQueue[T]) Values() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, 0, q.live)
	for i := 0; i < q.ring.Length(); i++ {
		if s := q.ring.Get(i).(*transferSlot[T]); !s.cancelled {
			out = append(out, s.v)
		}
	}
	return out
}

// Clear drops every element. Producers waiting in Transfer are released as
// if their element had been received.
func (q *LinkedTransferQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.ring.Length() > 0 {
		s := q.ring.Remove().(*transferSlot[T])
		if s.done != nil && !s.cancelled {
			close(s.done)
		}
	}
	q.live = 0
}

func (q *LinkedTransferQueue[T]) String() string { return format(q.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// PriorityBlockingQueue
// ─────────────────────────────────────────────────────────────────────────────

// PriorityBlockingQueue is a PriorityQueue guarded by a mutex whose
// consumers can wait for an element. It is safe for concurrent use.
type PriorityBlockingQueue[T any] struct {
	mu   sync.Mutex
	heap *PriorityQueue[T]
	wake signal
}

func newPriorityBlockingQueue[T any](cmp Comparator[T]) *PriorityBlockingQueue[T] {
	return &PriorityBlockingQueue[T]{heap: newPriorityQueue(cmp), wake: newSignal()}
}

func (q *PriorityBlockingQueue[T]) Each(fn func(T)) {
	if q == nil {
		return
	}
	for _, v := range q.Values() {
		fn(v)
	}
}

func (q *PriorityBlockingQueue[T]) Add(v T) bool {
	q.mu.Lock()
	defer q.wake.notify()
	defer q.mu.Unlock()
	return q.heap.Add(v)
}

func (q *PriorityBlockingQueue[T]) Put(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.Add(v)
	return nil
}

func (q *PriorityBlockingQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.heap.Peek()
}

func (q *PriorityBlockingQueue[T]) Poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.heap.Poll()
	if ok && q.heap.Len() > 0 {
		q.wake.notify()
	}
	return v, ok
}

func (q *PriorityBlockingQueue[T]) Take(ctx context.Context) (T, error) {
	return await(ctx, q.wake, q.Poll)
}

func (q *PriorityBlockingQueue[T]) Comparator() Comparator[T] { return q.heap.Comparator() }

func (q *PriorityBlockingQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.heap.Len()
}

func (q *PriorityBlockingQueue[T]) IsEmpty() bool { return q.Len() == 0 }

func (q *PriorityBlockingQueue[T]) Values() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.heap.Values()
}

func (q *PriorityBlockingQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.heap.Clear()
}

func (q *PriorityBlockingQueue[T]) String() string { return format(q.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// LinkedBlockingDeque
// ─────────────────────────────────────────────────────────────────────────────

// LinkedBlockingDeque is an unbounded deque whose consumers can wait at
// either end. It is safe for concurrent use.
type LinkedBlockingDeque[T any] struct {
	mu   sync.Mutex
	list *LinkedList[T]
	wake signal
}

func newLinkedBlockingDeque[T any]() *LinkedBlockingDeque[T] {
	return &LinkedBlockingDeque[T]{list: newLinkedList[T](), wake: newSignal()}
}

func (d *LinkedBlockingDeque[T]) Each(fn func(T)) {
	if d == nil {
		return
	}
	for _, v := range d.Values() {
		fn(v)
	}
}

func (d *LinkedBlockingDeque[T]) AddFirst(v T) {
	d.mu.Lock()
	d.list.AddFirst(v)
	d.mu.Unlock()
	d.wake.notify()
}

func (d *LinkedBlockingDeque[T]) AddLast(v T) {
	d.mu.Lock()
	d.list.AddLast(v)
	d.mu.Unlock()
	d.wake.notify()
}

func (d *LinkedBlockingDeque[T]) Add(v T) bool {
	d.AddLast(v)
	return true
}

func (d *LinkedBlockingDeque[T]) Push(v T) { d.AddFirst(v) }

func (d *LinkedBlockingDeque[T]) PutFirst(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.AddFirst(v)
	return nil
}

func (d *LinkedBlockingDeque[T]) PutLast(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.AddLast(v)
	return nil
}

func (d *LinkedBlockingDeque[T]) Put(ctx context.Context, v T) error { return d.PutLast(ctx, v) }

func (d *LinkedBlockingDeque[T]) PeekFirst() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list.PeekFirst()
}

func (d *LinkedBlockingDeque[T]) PeekLast() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list.PeekLast()
}

func (d *LinkedBlockingDeque[T]) poll(fromLast bool) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var (
		v  T
		ok bool
	)
	if fromLast {
		v, ok = d.list.PollLast()
	} else {
		v, ok = d.list.PollFirst()
	}
	if ok && d.list.Len() > 0 {
		d.wake.notify()
	}
	return v, ok
}

func (d *LinkedBlockingDeque[T]) PollFirst() (T, bool) { return d.poll(false) }
func (d *LinkedBlockingDeque[T]) PollLast() (T, bool)  { return d.poll(true) }
func (d *LinkedBlockingDeque[T]) Peek() (T, bool)      { return d.PeekFirst() }
func (d *LinkedBlockingDeque[T]) Poll() (T, bool)      { return d.PollFirst() }
func (d *LinkedBlockingDeque[T]) Pop() (T, bool)       { return d.PollFirst() }

func (d *LinkedBlockingDeque[T]) TakeFirst(ctx context.Context) (T, error) {
	return await(ctx, d.wake, d.PollFirst)
}

func (d *LinkedBlockingDeque[T]) TakeLast(ctx context.Context) (T, error) {
	return await(ctx, d.wake, d.PollLast)
}

func (d *LinkedBlockingDeque[T]) Take(ctx context.Context) (T, error) { return d.TakeFirst(ctx) }

func (d *LinkedBlockingDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list.Len()
}

func (d *LinkedBlockingDeque[T]) IsEmpty() bool { return d.Len() == 0 }

func (d *LinkedBlockingDeque[T]) Values() []T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list.Values()
}

func (d *LinkedBlockingDeque[T]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.list.Clear()
}

func (d *LinkedBlockingDeque[T]) String() string { return format(d.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// SynchronousQueue
// ─────────────────────────────────────────────────────────────────────────────

// SynchronousQueue has no capacity: every insertion is a hand-off to a
// consumer waiting in Take, and every removal a hand-off from a producer
// waiting in Put. It always reports itself empty, so seeding one leaves it
// empty. It is safe for concurrent use.
type SynchronousQueue[T any] struct {
	ch chan T
}

func newSynchronousQueue[T any]() *SynchronousQueue[T] {
	return &SynchronousQueue[T]{ch: make(chan T)}
}

func (q *SynchronousQueue[T]) Each(func(T)) {}

// Add hands v to a waiting consumer and reports whether one was there.
func (q *SynchronousQueue[T]) Add(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Put waits until a consumer receives v or ctx is done.
func (q *SynchronousQueue[T]) Put(ctx context.Context, v T) error {
	select {
	case q.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Poll receives from a producer already waiting in Put.
func (q *SynchronousQueue[T]) Poll() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Take waits until a producer hands over an element or ctx is done.
func (q *SynchronousQueue[T]) Take(ctx context.Context) (T, error) {
	select {
	case v := <-q.ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (q *SynchronousQueue[T]) Peek() (T, bool) {
	var zero T
	return zero, false
}

func (q *SynchronousQueue[T]) Len() int       { return 0 }
func (q *SynchronousQueue[T]) IsEmpty() bool  { return true }
func (q *SynchronousQueue[T]) Values() []T    { return []T{} }
func (q *SynchronousQueue[T]) Clear()         {}
func (q *SynchronousQueue[T]) String() string { return "[]" }
