package collections

import (
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
)

// HashSet iterates in no particular order. It is not safe for concurrent use.
type HashSet[T comparable] struct {
	set *hashset.Set
}

func newHashSet[T comparable]() *HashSet[T] { return &HashSet[T]{set: hashset.New()} }

func (s *HashSet[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	for _, v := range s.set.Values() {
		fn(as[T](v))
	}
}

func (s *HashSet[T]) Add(v T) bool {
	if s.set.Contains(v) {
		return false
	}
	s.set.Add(v)
	return true
}

func (s *HashSet[T]) Remove(v T) bool {
	if !s.set.Contains(v) {
		return false
	}
	s.set.Remove(v)
	return true
}

func (s *HashSet[T]) Contains(v T) bool { return s.set.Contains(v) }

func (s *HashSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

func (s *HashSet[T]) IsEmpty() bool  { return s.Len() == 0 }
func (s *HashSet[T]) Values() []T    { return values[T](s.set.Values()) }
func (s *HashSet[T]) Clear()         { s.set.Clear() }
func (s *HashSet[T]) String() string { return format(s.Values()) }

// LinkedHashSet iterates in first-insertion order. Re-adding an element does
// not move it. It is not safe for concurrent use.
type LinkedHashSet[T comparable] struct {
	set *linkedhashset.Set
}

func newLinkedHashSet[T comparable]() *LinkedHashSet[T] {
	return &LinkedHashSet[T]{set: linkedhashset.New()}
}

func (s *LinkedHashSet[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	s.set.Each(func(_ int, v interface{}) { fn(as[T](v)) })
}

func (s *LinkedHashSet[T]) Add(v T) bool {
	if s.set.Contains(v) {
		return false
	}
	s.set.Add(v)
	return true
}

func (s *LinkedHashSet[T]) Remove(v T) bool {
	if !s.set.Contains(v) {
		return false
	}
	s.set.Remove(v)
	return true
}

func (s *LinkedHashSet[T]) Contains(v T) bool { return s.set.Contains(v) }

func (s *LinkedHashSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

func (s *LinkedHashSet[T]) IsEmpty() bool  { return s.Len() == 0 }
func (s *LinkedHashSet[T]) Values() []T    { return values[T](s.set.Values()) }
func (s *LinkedHashSet[T]) Clear()         { s.set.Clear() }
func (s *LinkedHashSet[T]) String() string { return format(s.Values()) }

// ─────────────────────────────────────────────────────────────────────────────
// Sorted sets
// ─────────────────────────────────────────────────────────────────────────────

// TreeSet is a red-black tree ordered by its comparator. It is not safe for
// concurrent use.
type TreeSet[T any] struct {
	set *treeset.Set
	cmp Comparator[T]
}

func newTreeSet[T any](cmp Comparator[T]) *TreeSet[T] {
	cmp = orNatural(cmp)
	return &TreeSet[T]{set: treeset.NewWith(cmp.untyped()), cmp: cmp}
}

func (s *TreeSet[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	s.set.Each(func(_ int, v interface{}) { fn(as[T](v)) })
}

// Add inserts v unless an element comparing equal is present. The first
// insertion compares v with itself so that an unordered element type fails
// immediately.
func (s *TreeSet[T]) Add(v T) bool {
	if s.set.Empty() {
		s.cmp(v, v)
	} else if s.set.Contains(v) {
		return false
	}
	s.set.Add(v)
	return true
}

func (s *TreeSet[T]) Remove(v T) bool {
	if s.set.Empty() || !s.set.Contains(v) {
		return false
	}
	s.set.Remove(v)
	return true
}

func (s *TreeSet[T]) Contains(v T) bool { return !s.set.Empty() && s.set.Contains(v) }

func (s *TreeSet[T]) First() (T, bool) {
	it := s.set.Iterator()
	if !it.First() {
		var zero T
		return zero, false
	}
	return as[T](it.Value()), true
}

func (s *TreeSet[T]) Last() (T, bool) {
	it := s.set.Iterator()
	if !it.Last() {
		var zero T
		return zero, false
	}
	return as[T](it.Value()), true
}

func (s *TreeSet[T]) Comparator() Comparator[T] { return s.cmp }

func (s *TreeSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

func (s *TreeSet[T]) IsEmpty() bool  { return s.Len() == 0 }
func (s *TreeSet[T]) Values() []T    { return values[T](s.set.Values()) }
func (s *TreeSet[T]) Clear()         { s.set.Clear() }
func (s *TreeSet[T]) String() string { return format(s.Values()) }

type treeItem[T any] struct {
	v   T
	cmp Comparator[T]
}

func (i treeItem[T]) Less(than btree.Item) bool { return i.cmp(i.v, than.(treeItem[T]).v) < 0 }

// ConcurrentSkipListSet is an ordered set safe for concurrent use. Readers
// share a lock; iteration walks a snapshot.
type ConcurrentSkipListSet[T any] struct {
	mu   sync.RWMutex
	tree *btree.BTree
	cmp  Comparator[T]
}

const btreeDegree = 32

func newConcurrentSkipListSet[T any](cmp Comparator[T]) *ConcurrentSkipListSet[T] {
	return &ConcurrentSkipListSet[T]{tree: btree.New(btreeDegree), cmp: orNatural(cmp)}
}

func (s *ConcurrentSkipListSet[T]) item(v T) treeItem[T] { return treeItem[T]{v: v, cmp: s.cmp} }

func (s *ConcurrentSkipListSet[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	for _, v := range s.Values() {
		fn(v)
	}
}

func (s *ConcurrentSkipListSet[T]) Add(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tree.Len() == 0 {
		s.cmp(v, v)
	} else if s.tree.Has(s.item(v)) {
		return false
	}
	s.tree.ReplaceOrInsert(s.item(v))
	return true
}

func (s *ConcurrentSkipListSet[T]) Remove(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(s.item(v)) != nil
}

func (s *ConcurrentSkipListSet[T]) Contains(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Has(s.item(v))
}

func (s *ConcurrentSkipListSet[T]) First() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unwrap(s.tree.Min())
}

func (s *ConcurrentSkipListSet[T]) Last() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unwrap(s.tree.Max())
}

func (s *ConcurrentSkipListSet[T]) unwrap(it btree.Item) (T, bool) {
	if it == nil {
		var zero T
		return zero, false
	}
	return it.(treeItem[T]).v, true
}

func (s *ConcurrentSkipListSet[T]) Comparator() Comparator[T] { return s.cmp }

func (s *ConcurrentSkipListSet[T]) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *ConcurrentSkipListSet[T]) IsEmpty() bool { return s.Len() == 0 }

func (s *ConcurrentSkipListSet[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(it btree.Item) bool {
		out = append(out, it.(treeItem[T]).v)
		return true
	})
	return out
}

func (s *ConcurrentSkipListSet[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear(false)
}

func (s *ConcurrentSkipListSet[T]) String() string { return format(s.Values()) }
