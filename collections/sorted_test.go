package collections_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-strategies/collections"
	"github.com/hasbyte1/go-collection-strategies/strategy"
)

type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

type point struct{ X, Y int }

type celsius float64

func sortedSetVariants() []strategy.SortedSet { return strategy.SortedSetVariants()[1:] }

func TestSortedSetNaturalOrder(t *testing.T) {
	for _, s := range sortedSetVariants() {
		t.Run(s.String(), func(t *testing.T) {
			words := collections.SortedSetOf(s, "pear", "apple", "fig", "apple")
			assert.Equal(t, []string{"apple", "fig", "pear"}, words.Values())

			temps := collections.SortedSetOf(s, celsius(21.5), celsius(-3), celsius(0))
			assert.Equal(t, []celsius{-3, 0, 21.5}, temps.Values())

			vs := collections.SortedSetOf(s, version{1, 10}, version{1, 2}, version{0, 9})
			assert.Equal(t, []version{{0, 9}, {1, 2}, {1, 10}}, vs.Values())

			u := collections.SortedSetOf(s, uint8(200), uint8(3))
			first, ok := u.First()
			require.True(t, ok)
			assert.Equal(t, uint8(3), first)
			last, ok := u.Last()
			require.True(t, ok)
			assert.Equal(t, uint8(200), last)
		})
	}
}

func TestSortedSetComparatorThreading(t *testing.T) {
	byLength := func(a, b string) int { return len(a) - len(b) }
	for _, s := range sortedSetVariants() {
		t.Run(s.String(), func(t *testing.T) {
			set := collections.SortedSetFromFunc(s, byLength, collections.Slice[string]{"ccc", "a", "bb", "zz"})
			// "zz" compares equal to "bb" and is rejected.
			assert.Equal(t, []string{"a", "bb", "ccc"}, set.Values())
			assert.True(t, set.Contains("xx"))
			assert.NotNil(t, set.Comparator())

			assert.True(t, set.Remove("yy"))
			assert.False(t, set.Remove("yy"))
			assert.Equal(t, 2, set.Len())
		})
	}
}

func TestSortedSetEmpty(t *testing.T) {
	for _, s := range sortedSetVariants() {
		set := collections.NewSortedSet[int](s)
		_, ok := set.First()
		assert.False(t, ok)
		_, ok = set.Last()
		assert.False(t, ok)
		assert.False(t, set.Contains(1))
		assert.False(t, set.Remove(1))
		assert.Equal(t, "[]", set.String())
	}
}

func TestSortedSetOrderingContract(t *testing.T) {
	for _, s := range sortedSetVariants() {
		t.Run(s.String(), func(t *testing.T) {
			set := collections.NewSortedSet[point](s)
			var recovered any
			func() {
				defer func() { recovered = recover() }()
				set.Add(point{1, 2})
			}()
			require.NotNil(t, recovered, "the first insertion must fail")

			err, ok := recovered.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, collections.ErrOrderingContract))

			var oe *collections.OrderingError
			require.True(t, errors.As(err, &oe))
			assert.True(t, strings.HasSuffix(oe.Type, "point"))
		})
	}
}

func TestSortedSetOrderingContractWithComparator(t *testing.T) {
	byX := func(a, b point) int { return a.X - b.X }
	set := collections.SortedSetFromFunc(strategy.SortedSetTree, byX, collections.Slice[point]{{3, 0}, {1, 9}})
	assert.Equal(t, []point{{1, 9}, {3, 0}}, set.Values())
}

func TestMixedDynamicTypesViolateOrdering(t *testing.T) {
	set := collections.NewSortedSet[any](strategy.SortedSetTree)
	set.Add(1)
	assert.Panics(t, func() { set.Add("one") })
}

func TestNaturalAndReverse(t *testing.T) {
	cmp := collections.Natural[float64]()
	assert.Negative(t, cmp(1, 2))
	assert.Positive(t, cmp(2, 1))
	assert.Zero(t, cmp(2, 2))

	rev := collections.Reverse(cmp)
	assert.Positive(t, rev(1, 2))

	natural := collections.Reverse[string](nil)
	assert.Positive(t, natural("a", "b"))
}

func TestConcurrentSkipListSetParallelAdds(t *testing.T) {
	set := collections.NewSortedSet[int](strategy.SortedSetConcurrentSkipList)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				set.Add(i)
				set.Contains(i)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 250, set.Len())
	first, _ := set.First()
	last, _ := set.Last()
	assert.Equal(t, 0, first)
	assert.Equal(t, 249, last)
}

func TestPriorityQueueOrdering(t *testing.T) {
	for _, s := range []strategy.Queue{strategy.QueuePriority, strategy.QueuePriorityBlocking} {
		t.Run(s.String(), func(t *testing.T) {
			q := collections.QueueOf(s, 5, 2, 8, 1)
			var out []int
			for !q.IsEmpty() {
				v, _ := q.Poll()
				out = append(out, v)
			}
			assert.Equal(t, []int{1, 2, 5, 8}, out)

			desc := collections.QueueFromFunc(s, collections.Reverse(collections.Natural[int]()), collections.Slice[int]{5, 2, 8})
			head, _ := desc.Peek()
			assert.Equal(t, 8, head)

			assert.Panics(t, func() { collections.QueueOf(s, point{}) })
		})
	}
}
