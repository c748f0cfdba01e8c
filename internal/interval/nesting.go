// Package interval provides a generic collection for properly nesting
// half-open intervals, the shape that parse-tree spans take.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is one interval in a Nesting and the value stored with it. The
// interval is half-open: Start is inside it, End is not.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains reports whether the entry's interval contains point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point < e.End
}

// Nesting is a collection of half-open intervals (and associated values)
// split into disjoint sets: within one set no two intervals overlap, and
// an interval nested inside another lands in a later set than its
// container. Inserting a properly nesting family outermost-first (the
// order a preorder tree walk produces) therefore places an interval of
// nesting depth k into set k, and At yields the container chain of a
// point from outermost to innermost.
//
// Inserting n intervals is worst-case O(n d log n) for nesting depth d.
// The zero value is ready to use.
type Nesting[K Endpoint, V any] struct {
	// Keys in each tree are the ends of the intervals.
	sets []*btree.Map[K, *Entry[K, V]]
}

// Clear resets the collection without discarding allocated memory
// (where possible).
func (n *Nesting[K, V]) Clear() {
	for _, set := range n.sets {
		set.Clear()
	}
}

// Sets returns an iterator over the disjoint sets in the collection,
// outermost first. Within each set, entries are yielded in interval
// order.
func (n *Nesting[K, V]) Sets() iter.Seq[iter.Seq[Entry[K, V]]] {
	return func(yield func(iter.Seq[Entry[K, V]]) bool) {
		for _, set := range n.sets {
			if set.Len() == 0 {
				return
			}

			entries := func(yield func(Entry[K, V]) bool) {
				set.Scan(func(_ K, value *Entry[K, V]) bool { return yield(*value) })
			}

			if !yield(entries) {
				return
			}
		}
	}
}

// Insert adds a new interval to the collection, placing it in the first
// set where it overlaps nothing. It panics if start >= end: the empty
// interval contains no point and has no place in any set.
func (n *Nesting[K, V]) Insert(start, end K, value V) {
	if start >= end {
		panic(fmt.Sprintf("interval: start (%#v) must be less than end (%#v)", start, end))
	}

	var found *btree.Map[K, *Entry[K, V]]
	for _, set := range n.sets {
		iter := set.Iter()
		if !iter.Seek(end) {
			// This would be the greatest end in the set, so it only
			// needs to clear the greatest interval currently in it.
			if !iter.Last() || iter.Value().End <= start {
				found = set
				break
			}
			continue // Overlaps the last interval.
		}

		// The seek found [c, d), the leftmost interval with d >= end.
		// The new interval must close before that one opens. This also
		// sends an interval nested in [c, d), or sharing its end, to a
		// later set.
		if end > iter.Value().Start {
			continue
		}

		// And it must open at or after its left neighbor's end.
		if iter.Prev() && iter.Value().End > start {
			continue
		}

		found = set
		break
	}

	if found == nil {
		found = new(btree.Map[K, *Entry[K, V]])
		n.sets = append(n.sets, found)
	}

	found.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
}

// At returns an iterator over the entries whose intervals contain point,
// checking each set in order. For a collection built outermost-first
// from properly nesting intervals this is the container chain of the
// point, outermost to innermost.
func (n *Nesting[K, V]) At(point K) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, set := range n.sets {
			iter := set.Iter()
			// Keys are interval ends, and intervals within a set do not
			// overlap: the only candidate is the interval with the
			// smallest end beyond point.
			if !iter.Seek(point+1) || iter.Value().Start > point {
				continue
			}
			if !yield(*iter.Value()) {
				return
			}
		}
	}
}

// Deepest returns the innermost entry whose interval contains point.
func (n *Nesting[K, V]) Deepest(point K) (Entry[K, V], bool) {
	var (
		last Entry[K, V]
		ok   bool
	)
	for entry := range n.At(point) {
		last, ok = entry, true
	}
	return last, ok
}
