// Package tuple implements fixed-schema rows, grounded on
// _examples/utkarsh5026-StoreMy/pkg/tuple/tuple.go, adapted to the new
// types.Value system and to the pool-backed varlen ownership rule of
// spec.md §3: "String-valued columns store their payload in an associated
// variable-length pool with a lifetime at least as long as the tuple."
package tuple

import (
	"fmt"
	"strings"

	"secidx/pkg/pool"
	"secidx/pkg/schema"
	"secidx/pkg/types"
)

// Tuple is a row conforming to a Schema. A Tuple is not thread-shared: it
// is either owned exclusively by its constructor or handed off in full, per
// spec.md §3's lifecycle note.
type Tuple struct {
	Schema *schema.Schema
	values []types.Value
}

// New creates a zero-valued tuple for the given schema.
func New(s *schema.Schema) *Tuple {
	return &Tuple{Schema: s, values: make([]types.Value, s.ColumnCount())}
}

// Get returns the value at column i.
func (t *Tuple) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(t.values) {
		return nil, fmt.Errorf("column index %d out of bounds [0, %d)", i, len(t.values))
	}
	return t.values[i], nil
}

// Set stores v at column i. If the column is variable-length and p is
// non-nil, Set copies the varchar payload through p (see
// types.NewVarcharFromPool) so the stored value does not alias the
// caller's string; with a nil p, v is stored as given.
func (t *Tuple) Set(i int, v types.Value, p *pool.Pool) error {
	if i < 0 || i >= len(t.values) {
		return fmt.Errorf("column index %d out of bounds [0, %d)", i, len(t.values))
	}
	colType := t.Schema.Type(i)
	if v.Type() != colType {
		return fmt.Errorf("column %d type mismatch: expected %v, got %v", i, colType, v.Type())
	}
	if colType == types.VarcharType && p != nil {
		if vv, ok := v.(*types.VarcharValue); ok {
			v = types.NewVarcharFromPool(p, vv.Value)
		}
	}
	t.values[i] = v
	return nil
}

// Project extracts the columns named by indices into a fresh Value slice,
// in the order given. Used to build an index key from a table tuple per
// IndexMetadata.KeySchema's IndexedColumns projection.
func (t *Tuple) Project(indices []int) ([]types.Value, error) {
	out := make([]types.Value, len(indices))
	for i, idx := range indices {
		v, err := t.Get(idx)
		if err != nil {
			return nil, fmt.Errorf("projecting column %d: %w", idx, err)
		}
		out[i] = v
	}
	return out, nil
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.values))
	for i, v := range t.values {
		if v == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = v.String()
	}
	return strings.Join(parts, "\t")
}
