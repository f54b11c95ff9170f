package collections

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// keyed implements Map over any gods map keyed by string. Iteration order is
// the order of the underlying Keys.
type keyed[V any] struct {
	m maps.Map
}

func (k keyed[V]) each(fn func(string, V)) {
	for _, key := range k.m.Keys() {
		v, _ := k.m.Get(key)
		fn(key.(string), as[V](v))
	}
}

func (k keyed[V]) Put(key string, value V) { k.m.Put(key, value) }

func (k keyed[V]) Get(key string) (V, bool) {
	v, ok := k.m.Get(key)
	return as[V](v), ok
}

func (k keyed[V]) Remove(key string) bool {
	if _, ok := k.m.Get(key); !ok {
		return false
	}
	k.m.Remove(key)
	return true
}

func (k keyed[V]) ContainsKey(key string) bool {
	_, ok := k.m.Get(key)
	return ok
}

func (k keyed[V]) Keys() []string {
	raw := k.m.Keys()
	out := make([]string, len(raw))
	for i, key := range raw {
		out[i] = key.(string)
	}
	return out
}

func (k keyed[V]) Values() []V {
	out := make([]V, 0, k.m.Size())
	k.each(func(_ string, v V) { out = append(out, v) })
	return out
}

func (k keyed[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, k.m.Size())
	k.each(func(key string, v V) { out = append(out, Entry[V]{Key: key, Value: v}) })
	return out
}

func (k keyed[V]) IsEmpty() bool  { return k.m.Empty() }
func (k keyed[V]) Clear()         { k.m.Clear() }
func (k keyed[V]) String() string { return formatEntries(k.Entries()) }

// HashMap iterates in no particular order. It is not safe for concurrent
// use.
type HashMap[V any] struct{ keyed[V] }

func newHashMap[V any]() *HashMap[V] { return &HashMap[V]{keyed[V]{hashmap.New()}} }

func (m *HashMap[V]) Each(fn func(string, V)) {
	if m != nil {
		m.each(fn)
	}
}

func (m *HashMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Size()
}

// LinkedHashMap iterates in first-insertion order; replacing a value keeps
// the key's position. It is not safe for concurrent use.
type LinkedHashMap[V any] struct{ keyed[V] }

func newLinkedHashMap[V any]() *LinkedHashMap[V] {
	return &LinkedHashMap[V]{keyed[V]{linkedhashmap.New()}}
}

func (m *LinkedHashMap[V]) Each(fn func(string, V)) {
	if m != nil {
		m.each(fn)
	}
}

func (m *LinkedHashMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Size()
}

// TreeMap iterates in ascending key order. It is not safe for concurrent
// use.
type TreeMap[V any] struct{ keyed[V] }

func newTreeMap[V any]() *TreeMap[V] { return &TreeMap[V]{keyed[V]{treemap.NewWithStringComparator()}} }

func (m *TreeMap[V]) Each(fn func(string, V)) {
	if m != nil {
		m.each(fn)
	}
}

func (m *TreeMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Size()
}

// FirstKey returns the least key.
func (m *TreeMap[V]) FirstKey() (string, bool) {
	k, _ := m.m.(*treemap.Map).Min()
	s, ok := k.(string)
	return s, ok
}

// LastKey returns the greatest key.
func (m *TreeMap[V]) LastKey() (string, bool) {
	k, _ := m.m.(*treemap.Map).Max()
	s, ok := k.(string)
	return s, ok
}

// WeakHashMap behaves as a HashMap. Go strings are values, so there is no
// key object whose collection could evict an entry; the variant exists so
// that configurations naming it keep working.
type WeakHashMap[V any] struct{ keyed[V] }

func newWeakHashMap[V any]() *WeakHashMap[V] { return &WeakHashMap[V]{keyed[V]{hashmap.New()}} }

func (m *WeakHashMap[V]) Each(fn func(string, V)) {
	if m != nil {
		m.each(fn)
	}
}

func (m *WeakHashMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Size()
}

// Hashtable is a HashMap guarded by a single mutex. It is safe for
// concurrent use; Each walks a snapshot.
type Hashtable[V any] struct {
	mu sync.Mutex
	kv keyed[V]
}

func newHashtable[V any]() *Hashtable[V] { return &Hashtable[V]{kv: keyed[V]{hashmap.New()}} }

func (m *Hashtable[V]) Each(fn func(string, V)) {
	if m == nil {
		return
	}
	for _, e := range m.Entries() {
		fn(e.Key, e.Value)
	}
}

func (m *Hashtable[V]) Put(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv.Put(key, value)
}

func (m *Hashtable[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv.Get(key)
}

func (m *Hashtable[V]) Remove(key string) bool {
	return locked(&m.mu, func() bool { return m.kv.Remove(key) })
}

func (m *Hashtable[V]) ContainsKey(key string) bool {
	return locked(&m.mu, func() bool { return m.kv.ContainsKey(key) })
}

func (m *Hashtable[V]) Keys() []string      { return locked(&m.mu, m.kv.Keys) }
func (m *Hashtable[V]) Values() []V         { return locked(&m.mu, m.kv.Values) }
func (m *Hashtable[V]) Entries() []Entry[V] { return locked(&m.mu, m.kv.Entries) }
func (m *Hashtable[V]) IsEmpty() bool       { return m.Len() == 0 }
func (m *Hashtable[V]) String() string      { return formatEntries(m.Entries()) }

func (m *Hashtable[V]) Len() int {
	if m == nil {
		return 0
	}
	return locked(&m.mu, m.kv.m.Size)
}

func (m *Hashtable[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv.Clear()
}

// ─────────────────────────────────────────────────────────────────────────────
// IdentityHashMap
// ─────────────────────────────────────────────────────────────────────────────

// identity is a string's backing array and length. Two strings with equal
// content built separately have different identities; all empty strings
// share one.
type identity struct {
	p *byte
	n int
}

func identityOf(s string) identity {
	if len(s) == 0 {
		return identity{}
	}
	return identity{p: unsafe.StringData(s), n: len(s)}
}

type identityEntry[V any] struct {
	key   string
	value V
}

// IdentityHashMap compares keys by the identity of their bytes rather than
// their content, so equal strings from different allocations are distinct
// keys. Iteration order is unspecified. It is not safe for concurrent use.
type IdentityHashMap[V any] struct {
	m *hashmap.Map
}

func newIdentityHashMap[V any]() *IdentityHashMap[V] {
	return &IdentityHashMap[V]{m: hashmap.New()}
}

func (m *IdentityHashMap[V]) entries() []identityEntry[V] {
	raw := m.m.Values()
	out := make([]identityEntry[V], len(raw))
	for i, e := range raw {
		out[i] = e.(identityEntry[V])
	}
	return out
}

func (m *IdentityHashMap[V]) Each(fn func(string, V)) {
	if m == nil {
		return
	}
	for _, e := range m.entries() {
		fn(e.key, e.value)
	}
}

func (m *IdentityHashMap[V]) Put(key string, value V) {
	m.m.Put(identityOf(key), identityEntry[V]{key: key, value: value})
}

func (m *IdentityHashMap[V]) Get(key string) (V, bool) {
	e, ok := m.m.Get(identityOf(key))
	if !ok {
		var zero V
		return zero, false
	}
	return e.(identityEntry[V]).value, true
}

func (m *IdentityHashMap[V]) Remove(key string) bool {
	id := identityOf(key)
	if _, ok := m.m.Get(id); !ok {
		return false
	}
	m.m.Remove(id)
	return true
}

func (m *IdentityHashMap[V]) ContainsKey(key string) bool {
	_, ok := m.m.Get(identityOf(key))
	return ok
}

func (m *IdentityHashMap[V]) Keys() []string {
	es := m.entries()
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.key
	}
	return out
}

func (m *IdentityHashMap[V]) Values() []V {
	es := m.entries()
	out := make([]V, len(es))
	for i, e := range es {
		out[i] = e.value
	}
	return out
}

func (m *IdentityHashMap[V]) Entries() []Entry[V] {
	es := m.entries()
	out := make([]Entry[V], len(es))
	for i, e := range es {
		out[i] = Entry[V]{Key: e.key, Value: e.value}
	}
	return out
}

func (m *IdentityHashMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Size()
}

func (m *IdentityHashMap[V]) IsEmpty() bool  { return m.Len() == 0 }
func (m *IdentityHashMap[V]) Clear()         { m.m.Clear() }
func (m *IdentityHashMap[V]) String() string { return formatEntries(m.Entries()) }

// ─────────────────────────────────────────────────────────────────────────────
// ConcurrentHashMap
// ─────────────────────────────────────────────────────────────────────────────

// ConcurrentHashMap is safe for concurrent use without a global lock.
// Iteration order is unspecified and reflects no single moment in time.
type ConcurrentHashMap[V any] struct {
	m sync.Map
	n atomic.Int64
}

func newConcurrentHashMap[V any]() *ConcurrentHashMap[V] { return &ConcurrentHashMap[V]{} }

func (m *ConcurrentHashMap[V]) Each(fn func(string, V)) {
	if m == nil {
		return
	}
	m.m.Range(func(k, v any) bool {
		fn(k.(string), as[V](v))
		return true
	})
}

func (m *ConcurrentHashMap[V]) Put(key string, value V) {
	if _, loaded := m.m.Swap(key, value); !loaded {
		m.n.Add(1)
	}
}

func (m *ConcurrentHashMap[V]) Get(key string) (V, bool) {
	v, ok := m.m.Load(key)
	return as[V](v), ok
}

func (m *ConcurrentHashMap[V]) Remove(key string) bool {
	_, loaded := m.m.LoadAndDelete(key)
	if loaded {
		m.n.Add(-1)
	}
	return loaded
}

func (m *ConcurrentHashMap[V]) ContainsKey(key string) bool {
	_, ok := m.m.Load(key)
	return ok
}

func (m *ConcurrentHashMap[V]) Keys() []string {
	var out []string
	m.Each(func(k string, _ V) { out = append(out, k) })
	return out
}

func (m *ConcurrentHashMap[V]) Values() []V {
	var out []V
	m.Each(func(_ string, v V) { out = append(out, v) })
	return out
}

func (m *ConcurrentHashMap[V]) Entries() []Entry[V] {
	var out []Entry[V]
	m.Each(func(k string, v V) { out = append(out, Entry[V]{Key: k, Value: v}) })
	return out
}

func (m *ConcurrentHashMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return int(m.n.Load())
}

func (m *ConcurrentHashMap[V]) IsEmpty() bool { return m.Len() == 0 }

func (m *ConcurrentHashMap[V]) Clear() {
	m.m.Range(func(k, _ any) bool {
		m.Remove(k.(string))
		return true
	})
}

func (m *ConcurrentHashMap[V]) String() string { return formatEntries(m.Entries()) }
