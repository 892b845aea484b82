package predicate

import (
	"strings"

	"secidx/pkg/primitives"
	"secidx/pkg/types"
)

// Key is a composite index key: one types.Value per key-schema column, in
// key-schema order. A Key's column count normally equals the owning
// index's key-schema column count; shorter keys are only valid as scan
// prefixes (spec.md §3 invariants). Key lives in pkg/predicate, not
// pkg/index, because the predicate engine (Matches, LowerBoundKey) is the
// package that constructs and compares keys; pkg/index imports it from
// here rather than the reverse, to keep the ordered map's dependency on
// the predicate engine one-directional.
type Key []types.Value

// Compare orders two keys lexicographically by column, per spec.md §3's
// "Ordering: iteration order is the lexicographic order induced by
// per-column compare on the key schema." Compare panics on a column type
// mismatch between same-position columns, which indicates a caller bug
// (mixing keys from different schemas), not a data condition a clean
// error return should paper over.
func (k Key) Compare(other Key) primitives.Diff {
	n := len(k)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if d := k[i].Compare(other[i]); d != primitives.EQ {
			return d
		}
	}
	switch {
	case len(k) < len(other):
		return primitives.LT
	case len(k) > len(other):
		return primitives.GT
	default:
		return primitives.EQ
	}
}

// Less reports whether k sorts strictly before other; it is the LessFunc
// the ordered map's underlying btree.BTreeG is built with.
func (k Key) Less(other Key) bool { return k.Compare(other) == primitives.LT }

// Equal reports whether k and other compare equal column-for-column.
func (k Key) Equal(other Key) bool { return k.Compare(other) == primitives.EQ }

// Clone returns a copy of k's value slice (not a deep copy of each Value,
// which are themselves immutable once constructed).
func (k Key) Clone() Key {
	out := make(Key, len(k))
	copy(out, k)
	return out
}

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, v := range k {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
