// Package transform maps and filters elements into strategy-selected
// containers.
//
// # Transform
//
// [Transform] calls a mapping function once per source element, in source
// order, and adds each result to a fresh container from a
// [collections.Factory]. The per-kind wrappers pick the factory from a
// strategy variant:
//
//	ids := transform.ToSortedSet(users, func(u User) int { return u.ID }, strategy.SortedSetTree)
//
// The result has one element per source element unless the target kind
// rejects duplicates; collisions follow the backing structure's own policy.
// A nil source or nil function yields an empty container and the function
// is never called.
//
// # Filter
//
// [Filter] and its variants keep the elements a predicate accepts, in source
// order, in an array-backed list. Multiple sources are filtered one after
// another and concatenated. A nil predicate or nil source yields an empty
// list rather than an error.
package transform
