package index

import (
	"secidx/pkg/predicate"
	"secidx/pkg/primitives"
)

// Key is the composite index key type, defined in pkg/predicate so the
// predicate engine (which constructs and compares keys) never needs to
// import this package back. Every pkg/index consumer refers to it as
// index.Key.
type Key = predicate.Key

// Index is the public operation set spec.md §4.3 assigns to the ordered
// index, shared by both the unique-key and multi-map variants — "two
// variants ... must share one public surface while differing in Insert,
// Delete, and ScanKey cardinality" (spec.md §9). Grounded in shape on
// _examples/utkarsh5026-StoreMy/pkg/storage/index/index.go's Index
// interface, re-keyed from a single scalar Field to the composite Key this
// module's schema-driven keys need, and extended with the range-scan and
// metadata/stats accessors spec.md's §4.3/§4.5 call for.
type Index interface {
	// Insert adds (key, item) to the index. In the unique variant this
	// fails with ErrDuplicateKey if key is already present; the multi-map
	// variant always succeeds, even for an exact (key, item) duplicate.
	Insert(key Key, item primitives.ItemPointer) error

	// Delete removes at most one entry matching (key, item) by composite
	// key equality and item-pointer equality. Returns true if an entry was
	// removed.
	Delete(key Key, item primitives.ItemPointer) (bool, error)

	// ScanKey appends every item pointer currently associated with a key
	// equal to key to out, and returns the (possibly grown) slice.
	ScanKey(key Key, out []primitives.ItemPointer) ([]primitives.ItemPointer, error)

	// ScanAll appends every item pointer in the index to out.
	ScanAll(out []primitives.ItemPointer) ([]primitives.ItemPointer, error)

	// Scan positions at the lower-bound key built from preds and walks in
	// the given direction, appending the item pointers of every key that
	// matches preds to out. See pkg/predicate for predicate-list
	// semantics (Matches, LowerBoundKey).
	Scan(preds predicate.List, direction Direction, out []primitives.ItemPointer) ([]primitives.ItemPointer, error)

	// HasUniqueKeys reports which variant this index is.
	HasUniqueKeys() bool

	// Metadata returns the index's (immutable after construction) identity.
	Metadata() *Metadata

	// Stats returns the index's live counters and dirty flag.
	Stats() *Stats

	// Info renders a one-line description: name, type, uniqueness, key
	// schema — spec.md §4.5's "info string".
	Info() string
}
