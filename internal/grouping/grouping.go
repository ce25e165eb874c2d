// Package grouping partitions a sequence of records into named buckets keyed
// by a value derived from each record. Buckets accumulate in input order
// (stable grouping) and are emitted in ascending key order, so output never
// depends on map iteration order.
//
// Two entry points are provided. GroupBy takes a typed key function and sorts
// keys by their natural order. GroupRecords takes dynamic map-shaped records
// with a Selector (field name or function), normalizes every key to a string,
// and sorts lexicographically.
package grouping

import (
	"cmp"
	"slices"
)

// Grouped is the result of a grouping pass: an ordered mapping from key to
// the records that produced that key. It is a pure function of its inputs
// and is not mutated after construction.
type Grouped[K cmp.Ordered, V any] struct {
	keys   []K
	groups map[K][]V
}

// GroupBy buckets records by the key function. Within a bucket, records keep
// their relative input order. Keys are sorted ascending by the key type's
// natural order.
func GroupBy[K cmp.Ordered, V any](records []V, key func(V) K) *Grouped[K, V] {
	g := &Grouped[K, V]{groups: make(map[K][]V)}
	for _, r := range records {
		k := key(r)
		if _, ok := g.groups[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], r)
	}
	slices.Sort(g.keys)
	return g
}

// Keys returns the group keys in ascending order. The caller must not modify
// the returned slice.
func (g *Grouped[K, V]) Keys() []K {
	return g.keys
}

// Group returns the records for key k in input order, or nil if the key was
// never seen.
func (g *Grouped[K, V]) Group(k K) []V {
	return g.groups[k]
}

// Len returns the number of groups.
func (g *Grouped[K, V]) Len() int {
	return len(g.keys)
}

// Total returns the number of records across all groups. It always equals
// the length of the input sequence.
func (g *Grouped[K, V]) Total() int {
	n := 0
	for _, vs := range g.groups {
		n += len(vs)
	}
	return n
}

// Flatten returns all records as a single sequence: groups in key order,
// records within each group in stored order. Regrouping the result with the
// same key function reproduces an identical Grouped.
func (g *Grouped[K, V]) Flatten() []V {
	out := make([]V, 0, g.Total())
	for _, k := range g.keys {
		out = append(out, g.groups[k]...)
	}
	return out
}
