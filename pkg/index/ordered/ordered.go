// Package ordered implements spec.md §4.3's ordered index: a concurrent
// map from composite keys to item pointers, in the unique-key and
// multi-map variants, backed by github.com/google/btree's generic BTreeG.
//
// Grounded in overall shape (one struct per index, a single mutex guarding
// a tree, counters on every mutation) on
// _examples/utkarsh5026-StoreMy/pkg/storage/index/btree_index.go's
// BTreeFile (sync.RWMutex-guarded page tree), re-keyed from disk pages and
// a scalar types.Field to an in-memory btree.BTreeG[*entry] over the
// composite predicate.Key this module's schema-driven keys need. The
// concurrency primitive itself — a single coarse RWMutex rather than
// per-page latch coupling — follows spec.md §5's "contention semantics
// ... are implementation-local" and
// _examples/other_examples/Kirov7-CouloyDB__memIndex.go's single-lock
// btree.BTree wrapper, generalized from google/btree's legacy btree.Item
// interface to the v1.1.3 generic BTreeG so no boxing/interface
// allocation is needed per comparison.
package ordered

import (
	"sync"

	"github.com/google/btree"

	"secidx/pkg/index"
	"secidx/pkg/metrics"
	"secidx/pkg/pool"
	"secidx/pkg/predicate"
	"secidx/pkg/primitives"
)

const btreeDegree = 32

// Index is the ordered, concurrent map shared by both variants. unique
// selects whether Insert rejects an already-present key and whether Delete
// can ever see more than one item per key.
type Index struct {
	mu       sync.RWMutex
	tree     *btree.BTreeG[*entry]
	unique   bool
	metadata *index.Metadata
	pool     *pool.Pool
	stats    *index.Stats
}

// NewUnique builds the unique-key variant: a second Insert of an
// already-present key fails with index.ErrDuplicateKey.
func NewUnique(metadata *index.Metadata, collector *metrics.Collector) *Index {
	return newIndex(metadata, true, collector)
}

// NewMultiMap builds the multi-map variant: Insert always succeeds,
// including exact (key, item) duplicates.
func NewMultiMap(metadata *index.Metadata, collector *metrics.Collector) *Index {
	return newIndex(metadata, false, collector)
}

func newIndex(metadata *index.Metadata, unique bool, collector *metrics.Collector) *Index {
	return &Index{
		tree:     btree.NewG[*entry](btreeDegree, less),
		unique:   unique,
		metadata: metadata,
		pool:     pool.New(),
		stats:    index.NewStats(metadata.Name, collector),
	}
}

// HasUniqueKeys reports which variant this index is.
func (idx *Index) HasUniqueKeys() bool { return idx.unique }

// Metadata returns the index's identity.
func (idx *Index) Metadata() *index.Metadata { return idx.metadata }

// Stats returns the index's live counters.
func (idx *Index) Stats() *index.Stats { return idx.stats }

// Info renders a one-line description per spec.md §4.5.
func (idx *Index) Info() string { return idx.metadata.String() }

// Insert adds (key, item) per spec.md §4.3. The stored key is a clone of
// key — callers retain ownership of the key they pass in.
func (idx *Index) Insert(key index.Key, item primitives.ItemPointer) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	probe := &entry{key: key}
	if existing, found := idx.tree.Get(probe); found {
		if idx.unique {
			idx.stats.RecordFailure(index.CodeDuplicateKey)
			return index.ErrDuplicateKey
		}
		existing.items = append(existing.items, item)
		idx.stats.RecordInsert()
		return nil
	}

	idx.tree.ReplaceOrInsert(&entry{key: key.Clone(), items: []primitives.ItemPointer{item}})
	idx.stats.RecordInsert()
	return nil
}

// Delete removes at most one entry matching (key, item) per spec.md §4.3.
func (idx *Index) Delete(key index.Key, item primitives.ItemPointer) (bool, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	probe := &entry{key: key}
	existing, found := idx.tree.Get(probe)
	if !found {
		return false, nil
	}

	pos := indexOfItem(existing.items, item)
	if pos < 0 {
		return false, nil
	}

	existing.items = append(existing.items[:pos], existing.items[pos+1:]...)
	if len(existing.items) == 0 {
		idx.tree.Delete(probe)
	}
	idx.stats.RecordDelete()
	return true, nil
}

// ScanKey appends every item pointer associated with key to out.
func (idx *Index) ScanKey(key index.Key, out []primitives.ItemPointer) ([]primitives.ItemPointer, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idx.stats.RecordLookup()
	existing, found := idx.tree.Get(&entry{key: key})
	if !found {
		return out, nil
	}
	return append(out, existing.items...), nil
}

// ScanAll appends every item pointer in the index to out.
func (idx *Index) ScanAll(out []primitives.ItemPointer) ([]primitives.ItemPointer, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idx.stats.RecordLookup()
	idx.tree.Ascend(func(e *entry) bool {
		out = append(out, e.items...)
		return true
	})
	return out, nil
}

// Scan implements spec.md §4.3's directional predicate scan: build the
// lower-bound key, take the scan_key fast path when the predicate pins
// every column with EQ, and otherwise walk in the requested direction
// filtering every visited key through predicate.Matches.
//
// Both directions visit the same candidate set — every stored key not
// less than the lower-bound anchor, since no predicate built by
// predicate.LowerBoundKey can be satisfied by a key below its own anchor
// — which is what gives spec.md §8's direction-symmetry property: FORWARD
// emits ascending from the anchor, BACKWARD emits descending from the
// tree's maximum down to the anchor, and both filter through the same
// Matches calls.
func (idx *Index) Scan(preds predicate.List, direction index.Direction, out []primitives.ItemPointer) ([]primitives.ItemPointer, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idx.stats.RecordLookup()

	anchor, allEq, lbErr := predicate.LowerBoundKey(idx.metadata.KeySchema, preds, idx.pool)
	if lbErr != nil {
		return out, &index.Error{Code: index.CodeInvalidArgument, Message: lbErr.Error(), Cause: lbErr}
	}

	if allEq {
		existing, found := idx.tree.Get(&entry{key: anchor})
		if !found {
			return out, nil
		}
		return append(out, existing.items...), nil
	}

	var err error
	visit := func(e *entry) bool {
		ok, matchErr := predicate.Matches(e.key, preds)
		if matchErr != nil {
			err = &index.Error{Code: index.CodeUnsupportedPredicate, Message: matchErr.Error(), Cause: matchErr}
			return false
		}
		if ok {
			out = append(out, e.items...)
		}
		return true
	}

	switch direction {
	case index.Backward:
		idx.tree.Descend(func(e *entry) bool {
			if e.key.Compare(anchor) == primitives.LT {
				return false
			}
			return visit(e)
		})
	default:
		idx.tree.AscendGreaterOrEqual(&entry{key: anchor}, visit)
	}

	if err != nil {
		return out, err
	}
	return out, nil
}
