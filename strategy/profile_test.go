package strategy_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-strategies/strategy"
)

func TestLoadProfile(t *testing.T) {
	doc := `
list: LINKED_LIST
sorted_set: concurrent-skip-list-set
queue: priority_blocking_queue
map: TREE_MAP
`
	p, err := strategy.LoadProfile(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, strategy.Profile{
		List:      strategy.ListLinked,
		SortedSet: strategy.SortedSetConcurrentSkipList,
		Queue:     strategy.QueuePriorityBlocking,
		Map:       strategy.MapTree,
	}, p)
	assert.True(t, p.Set.IsDefault())
	assert.True(t, p.Deque.IsDefault())
}

func TestLoadProfileEmpty(t *testing.T) {
	p, err := strategy.ParseProfile(nil)
	require.NoError(t, err)
	assert.Equal(t, strategy.DefaultProfile(), p)
}

func TestLoadProfileRejectsUnknownKey(t *testing.T) {
	_, err := strategy.ParseProfile([]byte("stack: VECTOR\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, strategy.ErrInvalidProfile))
}

func TestLoadProfileRejectsUnknownVariant(t *testing.T) {
	_, err := strategy.ParseProfile([]byte("set: BLOOM\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, strategy.ErrInvalidProfile))
	assert.True(t, errors.Is(err, strategy.ErrUnknownVariant))
}

func TestProfileMarshalRoundTrip(t *testing.T) {
	in := strategy.Profile{Deque: strategy.DequeArray, Map: strategy.MapLinkedHash}
	out, err := in.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "deque: ARRAY_DEQUE\nmap: LINKED_HASH_MAP\n", string(out))

	back, err := strategy.ParseProfile(out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestProfileResolve(t *testing.T) {
	p := strategy.Profile{Queue: strategy.QueueSynchronous}.Resolve()
	assert.Equal(t, strategy.Profile{
		List:      strategy.ListArray,
		Set:       strategy.SetHash,
		SortedSet: strategy.SortedSetTree,
		Queue:     strategy.QueueSynchronous,
		Deque:     strategy.DequeLinkedList,
		Map:       strategy.MapHash,
	}, p)
}

func TestProfileStrategiesInKindOrder(t *testing.T) {
	kinds := []strategy.Kind{}
	for _, s := range strategy.DefaultProfile().Strategies() {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []strategy.Kind{
		strategy.KindList, strategy.KindSet, strategy.KindSortedSet,
		strategy.KindQueue, strategy.KindDeque, strategy.KindMap,
	}, kinds)
}

func TestProfileLoadIsLogged(t *testing.T) {
	var buf bytes.Buffer
	strategy.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { strategy.SetLogger(nil) })

	_, err := strategy.ParseProfile([]byte("map: WEAK_HASH_MAP\n"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "profile.map=WEAK_HASH_MAP")
	assert.Contains(t, buf.String(), "profile.list=DEFAULT")
}
