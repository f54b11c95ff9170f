// Package collections builds the containers that strategy variants select:
// lists, sets, sorted sets, queues, deques and string-keyed maps, either
// empty or seeded from an existing [Source].
//
// # Overview
//
// Every kind has an empty constructor, a seeded constructor and a variadic
// helper. The variant decides the concrete type behind the returned
// interface:
//
//	l := collections.ListOf(strategy.ListLinked, 1, 2, 3)   // *LinkedList[int]
//	s := collections.SetOf(strategy.SetLinkedHash, "b", "a") // *LinkedHashSet[string]
//	q := collections.NewQueue[string](strategy.QueueLinkedBlocking)
//
// Seeds are copied in source order. A nil source gives an empty container of
// the same concrete type; absence of seed data is never an error.
//
// # Factories
//
// Go methods cannot take type parameters, so a variant cannot construct a
// container by itself. [Lists], [Sets], [SortedSets], [Queues] and [Deques]
// bind a variant to an element type and return a [Factory]:
//
//	f := collections.Lists[string](strategy.ListVector)
//	a := f.Empty()
//	b := f.From(collections.Slice[string]{"x", "y"})
//
// # Ordering
//
// Sorted sets and priority queues take an optional [Comparator]. Without one
// they use natural order: integers, floats, strings, or a Compare(T) int
// method. Adding an element with no natural order panics with
// *[OrderingError], which matches [ErrOrderingContract]:
//
//	s := collections.NewSortedSet[struct{ X int }](strategy.SortedSetTree)
//	s.Add(struct{ X int }{1}) // panics
//
// # Concurrency
//
// Whether a container may be shared between goroutines is a property of its
// variant. Vector, Stack, ConcurrentSkipListSet, the Concurrent* and
// *Blocking* types, LinkedTransferQueue, SynchronousQueue, Hashtable and
// ConcurrentHashMap are safe for concurrent use; the rest are not. Blocking
// operations take a context.Context and return its error when it ends.
package collections
