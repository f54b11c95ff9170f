// Package strategy enumerates the backing structures a container can be built
// on, grouped by container kind.
//
// # Kinds and variants
//
// Every kind (list, set, sorted set, queue, deque, string-keyed map) has its
// own closed variant type. The variant value is the strategy: there is no
// separate configuration object, and the zero value of every type is the
// kind's DEFAULT variant.
//
//	strategy.ListLinked          // doubly linked list
//	strategy.SetLinkedHash       // insertion-ordered hash set
//	strategy.SortedSetDefault    // resolves to SortedSetTree
//	strategy.MapConcurrentHash   // concurrent-safe hash map
//
// Construction lives in the collections package:
//
//	l := collections.NewList[int](strategy.ListLinked)
//
// # Capability queries
//
// Collection strategies answer [CollectionStrategy.IsList],
// [CollectionStrategy.IsSet] and [CollectionStrategy.IsQueue]; exactly one of
// them is true. Map strategies only implement [Strategy].
//
// # Stable names
//
// Each variant has a stable identifier (ARRAY_LIST, TREE_MAP, ...) returned by
// String and accepted by the Parse functions, MarshalText/UnmarshalText and
// the YAML codec, so stored configuration keeps resolving to the same
// backing structure across versions:
//
//	s, err := strategy.ParseQueue("linked-blocking-queue")
//	// s == strategy.QueueLinkedBlocking
//
// A [Profile] bundles one variant per kind and is loaded from YAML:
//
//	p, err := strategy.LoadProfile(f)
//	names := collections.NewMap[string](p.Map)
//
// # Unknown variants
//
// Resolve maps DEFAULT to the kind's canonical variant. Values outside the
// declared range (for example a number persisted by a newer release) also
// resolve to the default and are reported through the logger installed with
// [SetLogger]; they are never an error.
package strategy
