package collections_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-strategies/collections"
	"github.com/hasbyte1/go-collection-strategies/strategy"
)

func TestMapOperations(t *testing.T) {
	for _, s := range strategy.MapVariants()[1:] {
		t.Run(s.String(), func(t *testing.T) {
			m := collections.NewMap[int](s)
			const one, two = "one", "two"

			m.Put(one, 1)
			m.Put(two, 2)
			m.Put(one, 11)
			assert.Equal(t, 2, m.Len())

			v, ok := m.Get(one)
			require.True(t, ok)
			assert.Equal(t, 11, v)
			assert.True(t, m.ContainsKey(two))

			assert.True(t, m.Remove(two))
			assert.False(t, m.Remove(two))
			assert.False(t, m.ContainsKey(two))
			_, ok = m.Get(two)
			assert.False(t, ok)

			assert.Equal(t, []string{one}, m.Keys())
			assert.Equal(t, []int{11}, m.Values())
			assert.Equal(t, []collections.Entry[int]{{Key: one, Value: 11}}, m.Entries())
			assert.Equal(t, "{one=11}", m.String())

			m.Clear()
			assert.True(t, m.IsEmpty())
			assert.Equal(t, "{}", m.String())
		})
	}
}

func TestLinkedHashMapKeepsInsertionOrder(t *testing.T) {
	m := collections.NewMap[int](strategy.MapLinkedHash)
	for i, k := range []string{"zeta", "alpha", "mid"} {
		m.Put(k, i)
	}
	m.Put("alpha", 9)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	var seen []string
	m.Each(func(k string, v int) { seen = append(seen, fmt.Sprintf("%s:%d", k, v)) })
	assert.Equal(t, []string{"zeta:0", "alpha:9", "mid:2"}, seen)
}

func TestTreeMapSortsKeys(t *testing.T) {
	m := collections.MapFrom[bool](strategy.MapTree, collections.StdMap[bool]{"b": true, "c": false, "a": true})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

	tm, ok := m.(*collections.TreeMap[bool])
	require.True(t, ok)
	first, ok := tm.FirstKey()
	require.True(t, ok)
	assert.Equal(t, "a", first)
	last, ok := tm.LastKey()
	require.True(t, ok)
	assert.Equal(t, "c", last)

	tm.Clear()
	_, ok = tm.FirstKey()
	assert.False(t, ok)
	_, ok = tm.LastKey()
	assert.False(t, ok)
}

func TestIdentityHashMapComparesBackingBytes(t *testing.T) {
	m := collections.NewMap[int](strategy.MapIdentityHash)
	key := "identity"
	m.Put(key, 1)

	copied := strings.Clone(key)
	assert.Equal(t, key, copied)
	assert.False(t, m.ContainsKey(copied))
	m.Put(copied, 2)
	assert.Equal(t, 2, m.Len(), "equal strings with distinct storage are distinct keys")

	v, ok := m.Get(key)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, m.Remove(copied))
	assert.Equal(t, []string{key}, m.Keys())

	m.Put("", 0)
	assert.True(t, m.ContainsKey(""), "empty strings share one identity")
}

func TestConcurrentHashMapParallelWriters(t *testing.T) {
	m := collections.NewMap[int](strategy.MapConcurrentHash)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				m.Put(fmt.Sprintf("k%d", i), g)
				m.Get(fmt.Sprintf("k%d", i))
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
	assert.Len(t, m.Keys(), 50)

	m.Remove("k0")
	assert.Equal(t, 49, m.Len())
	m.Clear()
	assert.True(t, m.IsEmpty())
}

func TestHashtableParallelWriters(t *testing.T) {
	m := collections.NewMap[int](strategy.MapHashtable)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m.Put(fmt.Sprint(i), i)
				m.ContainsKey(fmt.Sprint(i))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, m.Len())
}

func TestEntryString(t *testing.T) {
	e := collections.Entry[[]int]{Key: "ports", Value: []int{80, 443}}
	assert.Equal(t, "(ports, [80 443])", e.String())
}

func TestNilMapsAreEmptySources(t *testing.T) {
	var hm *collections.HashMap[int]
	var lm *collections.LinkedHashMap[int]
	var tm *collections.TreeMap[int]

	for _, src := range []collections.MapSource[int]{hm, lm, tm} {
		calls := 0
		src.Each(func(string, int) { calls++ })
		assert.Zero(t, calls)
	}
	assert.Zero(t, hm.Len())
}
