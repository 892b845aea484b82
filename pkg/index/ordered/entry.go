package ordered

import (
	"secidx/pkg/predicate"
	"secidx/pkg/primitives"
)

// entry is one btree node payload: a composite key and every item pointer
// currently stored under it. The unique variant never lets len(items)
// exceed 1; the multi-map variant appends freely, including exact
// duplicates (spec.md §4.3's multi-map cardinality rule).
type entry struct {
	key   predicate.Key
	items []primitives.ItemPointer
}

// less is the btree.BTreeG ordering function, lifted straight from
// predicate.Key.Less so both variants share one comparator.
func less(a, b *entry) bool {
	return a.key.Less(b.key)
}

// indexOfItem returns the position of the first occurrence of item in
// items, or -1.
func indexOfItem(items []primitives.ItemPointer, item primitives.ItemPointer) int {
	for i, it := range items {
		if it.Equals(item) {
			return i
		}
	}
	return -1
}
