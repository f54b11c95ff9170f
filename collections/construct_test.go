package collections_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-strategies/collections"
	"github.com/hasbyte1/go-collection-strategies/strategy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func typeOf(v any) string { return fmt.Sprintf("%T", v) }

// ─────────────────────────────────────────────────────────────────────────────
// Concrete types
// ─────────────────────────────────────────────────────────────────────────────

func TestListVariants(t *testing.T) {
	cases := map[strategy.List]any{
		strategy.ListDefault: &collections.ArrayList[int]{},
		strategy.ListArray:   &collections.ArrayList[int]{},
		strategy.ListLinked:  &collections.LinkedList[int]{},
		strategy.ListStack:   &collections.Stack[int]{},
		strategy.ListVector:  &collections.Vector[int]{},
	}
	for s, want := range cases {
		t.Run(s.String(), func(t *testing.T) {
			empty := collections.NewList[int](s)
			require.NotNil(t, empty)
			assert.True(t, empty.IsEmpty())
			assert.Equal(t, typeOf(want), typeOf(empty))

			seeded := collections.ListOf(s, 3, 1, 2)
			assert.Equal(t, typeOf(want), typeOf(seeded))
			assert.Equal(t, []int{3, 1, 2}, seeded.Values())

			fromNil := collections.ListFrom[int](s, nil)
			assert.Equal(t, typeOf(want), typeOf(fromNil))
			assert.Zero(t, fromNil.Len())
		})
	}
}

func TestSetVariants(t *testing.T) {
	cases := map[strategy.Set]any{
		strategy.SetDefault:    &collections.HashSet[string]{},
		strategy.SetHash:       &collections.HashSet[string]{},
		strategy.SetLinkedHash: &collections.LinkedHashSet[string]{},
	}
	for s, want := range cases {
		t.Run(s.String(), func(t *testing.T) {
			seeded := collections.SetOf(s, "x", "y", "z")
			assert.Equal(t, typeOf(want), typeOf(seeded))
			assert.Equal(t, 3, seeded.Len())
			assert.ElementsMatch(t, []string{"x", "y", "z"}, seeded.Values())

			fromNil := collections.SetFrom[string](s, nil)
			require.NotNil(t, fromNil)
			assert.Equal(t, typeOf(want), typeOf(fromNil))
			assert.True(t, fromNil.IsEmpty())
		})
	}
}

func TestSortedSetVariants(t *testing.T) {
	cases := map[strategy.SortedSet]any{
		strategy.SortedSetDefault:            &collections.TreeSet[int]{},
		strategy.SortedSetTree:               &collections.TreeSet[int]{},
		strategy.SortedSetConcurrentSkipList: &collections.ConcurrentSkipListSet[int]{},
	}
	for s, want := range cases {
		t.Run(s.String(), func(t *testing.T) {
			seeded := collections.SortedSetOf(s, 5, 1, 4, 1, 3)
			assert.Equal(t, typeOf(want), typeOf(seeded))
			assert.Equal(t, []int{1, 3, 4, 5}, seeded.Values())

			fromNil := collections.SortedSetFrom[int](s, nil)
			assert.Equal(t, typeOf(want), typeOf(fromNil))
			assert.True(t, fromNil.IsEmpty())
		})
	}
}

func TestQueueVariants(t *testing.T) {
	cases := map[strategy.Queue]any{
		strategy.QueueDefault:               &collections.LinkedList[int]{},
		strategy.QueueConcurrentLinked:      &collections.ConcurrentLinkedQueue[int]{},
		strategy.QueueLinkedBlocking:        &collections.LinkedBlockingQueue[int]{},
		strategy.QueueLinkedList:            &collections.LinkedList[int]{},
		strategy.QueueLinkedTransfer:        &collections.LinkedTransferQueue[int]{},
		strategy.QueuePriorityBlocking:      &collections.PriorityBlockingQueue[int]{},
		strategy.QueuePriority:              &collections.PriorityQueue[int]{},
		strategy.QueueSynchronous:           &collections.SynchronousQueue[int]{},
		strategy.QueueArrayDeque:            &collections.ArrayDeque[int]{},
		strategy.QueueConcurrentLinkedDeque: &collections.ConcurrentLinkedDeque[int]{},
		strategy.QueueLinkedBlockingDeque:   &collections.LinkedBlockingDeque[int]{},
	}
	require.Len(t, cases, len(strategy.QueueVariants()))
	for s, want := range cases {
		t.Run(s.String(), func(t *testing.T) {
			empty := collections.NewQueue[int](s)
			require.NotNil(t, empty)
			assert.Equal(t, typeOf(want), typeOf(empty))

			fromNil := collections.QueueFrom[int](s, nil)
			assert.Equal(t, typeOf(want), typeOf(fromNil))
			assert.True(t, fromNil.IsEmpty())
		})
	}
}

func TestQueueSeedingOrder(t *testing.T) {
	for _, s := range strategy.QueueVariants() {
		q := collections.QueueOf(s, 3, 1, 2)
		switch {
		case s == strategy.QueueSynchronous:
			assert.True(t, q.IsEmpty(), "a synchronous queue has no capacity")
		case s.Prioritized():
			head, ok := q.Poll()
			require.True(t, ok)
			assert.Equal(t, 1, head, s.String())
		default:
			assert.Equal(t, []int{3, 1, 2}, q.Values(), s.String())
		}
	}
}

func TestDequeVariants(t *testing.T) {
	cases := map[strategy.Deque]any{
		strategy.DequeDefault:          &collections.LinkedList[string]{},
		strategy.DequeLinkedList:       &collections.LinkedList[string]{},
		strategy.DequeArray:            &collections.ArrayDeque[string]{},
		strategy.DequeConcurrentLinked: &collections.ConcurrentLinkedDeque[string]{},
		strategy.DequeLinkedBlocking:   &collections.LinkedBlockingDeque[string]{},
	}
	for s, want := range cases {
		t.Run(s.String(), func(t *testing.T) {
			d := collections.DequeOf(s, "b", "c")
			assert.Equal(t, typeOf(want), typeOf(d))

			d.AddFirst("a")
			d.AddLast("d")
			assert.Equal(t, []string{"a", "b", "c", "d"}, d.Values())

			first, _ := d.PeekFirst()
			last, _ := d.PeekLast()
			assert.Equal(t, "a", first)
			assert.Equal(t, "d", last)

			d.Push("z")
			top, ok := d.Pop()
			require.True(t, ok)
			assert.Equal(t, "z", top)

			tail, _ := d.PollLast()
			assert.Equal(t, "d", tail)
			head, _ := d.Poll()
			assert.Equal(t, "a", head)
			assert.Equal(t, []string{"b", "c"}, d.Values())

			fromNil := collections.DequeFrom[string](s, nil)
			assert.Equal(t, typeOf(want), typeOf(fromNil))
			_, ok = fromNil.PollFirst()
			assert.False(t, ok)
		})
	}
}

func TestMapVariants(t *testing.T) {
	cases := map[strategy.Map]any{
		strategy.MapDefault:        &collections.HashMap[int]{},
		strategy.MapHash:           &collections.HashMap[int]{},
		strategy.MapHashtable:      &collections.Hashtable[int]{},
		strategy.MapLinkedHash:     &collections.LinkedHashMap[int]{},
		strategy.MapIdentityHash:   &collections.IdentityHashMap[int]{},
		strategy.MapConcurrentHash: &collections.ConcurrentHashMap[int]{},
		strategy.MapWeakHash:       &collections.WeakHashMap[int]{},
		strategy.MapTree:           &collections.TreeMap[int]{},
	}
	require.Len(t, cases, len(strategy.MapVariants()))
	for s, want := range cases {
		t.Run(s.String(), func(t *testing.T) {
			m := collections.MapOf(s, map[string]int{"alpha": 1, "beta": 2})
			assert.Equal(t, typeOf(want), typeOf(m))
			assert.Equal(t, 2, m.Len())

			v, ok := m.Get(strings.Clone("alpha"))
			if s == strategy.MapIdentityHash {
				assert.False(t, ok, "a copied key is a different string object")
			} else {
				require.True(t, ok)
				assert.Equal(t, 1, v)
			}

			fromNil := collections.MapFrom[int](s, nil)
			assert.Equal(t, typeOf(want), typeOf(fromNil))
			assert.True(t, fromNil.IsEmpty())
		})
	}
}

// The value type of a map is independent of the key type and of any
// collection element type built alongside it.
func TestMapValueTypeIndependence(t *testing.T) {
	a := collections.NewMap[[]float64](strategy.MapTree)
	b := collections.NewMap[*collections.Entry[int]](strategy.MapTree)
	a.Put("k", []float64{1.5})
	b.Put("k", &collections.Entry[int]{Key: "x", Value: 1})

	av, _ := a.Get("k")
	bv, _ := b.Get("k")
	assert.Equal(t, []float64{1.5}, av)
	assert.Equal(t, 1, bv.Value)
}

func TestUnknownVariantFallsBack(t *testing.T) {
	assert.IsType(t, &collections.ArrayList[int]{}, collections.NewList[int](strategy.List(99)))
	assert.IsType(t, &collections.HashSet[int]{}, collections.NewSet[int](strategy.Set(99)))
	assert.IsType(t, &collections.TreeSet[int]{}, collections.NewSortedSet[int](strategy.SortedSet(99)))
	assert.IsType(t, &collections.LinkedList[int]{}, collections.NewQueue[int](strategy.Queue(99)))
	assert.IsType(t, &collections.LinkedList[int]{}, collections.NewDeque[int](strategy.Deque(99)))
	assert.IsType(t, &collections.HashMap[int]{}, collections.NewMap[int](strategy.Map(99)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Factories
// ─────────────────────────────────────────────────────────────────────────────

func TestFactories(t *testing.T) {
	lists := collections.Lists[string](strategy.ListLinked)
	a, b := lists.Empty(), lists.Empty()
	a.Add("x")
	assert.True(t, b.IsEmpty(), "every Empty call builds a new container")
	assert.IsType(t, &collections.LinkedList[string]{}, a)

	seeded := lists.From(collections.Slice[string]{"p", "q"})
	assert.Equal(t, []string{"p", "q"}, seeded.Values())
	assert.True(t, lists.From(nil).IsEmpty())

	sets := collections.Sets[int](strategy.SetLinkedHash)
	assert.Equal(t, []int{2, 1}, sets.From(collections.Slice[int]{2, 1, 2}).Values())

	desc := collections.SortedSetsFunc(strategy.SortedSetTree, collections.Reverse(collections.Natural[int]()))
	assert.Equal(t, []int{3, 2, 1}, desc.From(collections.Slice[int]{1, 3, 2}).Values())

	queues := collections.QueuesFunc(strategy.QueuePriority, collections.Reverse(collections.Natural[int]()))
	q := queues.From(collections.Slice[int]{1, 3, 2})
	head, _ := q.Peek()
	assert.Equal(t, 3, head)

	deques := collections.Deques[int](strategy.DequeArray)
	assert.IsType(t, &collections.ArrayDeque[int]{}, deques.Empty())
}

func TestSeedFromContainer(t *testing.T) {
	src := collections.ListOf(strategy.ListLinked, 1, 2, 3)
	dst := collections.SetFrom[int](strategy.SetLinkedHash, src)
	assert.Equal(t, []int{1, 2, 3}, dst.Values())

	var nilList *collections.ArrayList[int]
	assert.True(t, collections.ListFrom[int](strategy.ListArray, nilList).IsEmpty())
}

func TestMapFromKeepsSourceOrder(t *testing.T) {
	src := collections.NewMap[int](strategy.MapLinkedHash)
	src.Put("z", 1)
	src.Put("a", 2)
	src.Put("m", 3)

	dst := collections.MapFrom[int](strategy.MapLinkedHash, src)
	assert.Equal(t, []string{"z", "a", "m"}, dst.Keys())

	sorted := collections.MapFrom[int](strategy.MapTree, src)
	assert.Equal(t, []string{"a", "m", "z"}, sorted.Keys())
}
