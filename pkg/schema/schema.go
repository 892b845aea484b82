// Package schema describes ordered, typed column lists — both a table's
// tuple schema and an index's key schema — and the projection from one to
// the other. Grounded on
// _examples/utkarsh5026-StoreMy/pkg/catalog/schema/schema.go, trimmed of
// the table-id/primary-key/auto-increment bookkeeping that belongs to the
// catalog layer spec.md §1 places out of scope.
package schema

import (
	"fmt"

	"secidx/pkg/types"
)

// Schema is an ordered sequence of typed columns.
type Schema struct {
	columns []Column
	byName  map[string]int

	// IndexedColumns, when non-nil, is the projection of tuple-schema
	// positions this schema's columns were drawn from — i.e. this Schema
	// is a key schema, and IndexedColumns[i] names which tuple-schema
	// column key column i comes from. A tuple schema (no projection) leaves
	// this nil.
	IndexedColumns []int
}

// New builds a Schema from an ordered column list.
func New(columns []Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("schema must have at least one column")
	}

	byName := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		byName[c.Name] = i
	}

	return &Schema{columns: columns, byName: byName}, nil
}

// NewKeySchema builds a key schema together with the tuple-column
// projection it was drawn from. len(columns) must equal
// len(tupleColumnIndices).
func NewKeySchema(columns []Column, tupleColumnIndices []int) (*Schema, error) {
	if len(columns) != len(tupleColumnIndices) {
		return nil, fmt.Errorf("key schema has %d columns but %d tuple-column indices",
			len(columns), len(tupleColumnIndices))
	}
	s, err := New(columns)
	if err != nil {
		return nil, err
	}
	s.IndexedColumns = tupleColumnIndices
	return s, nil
}

// ColumnCount returns the number of columns in the schema.
func (s *Schema) ColumnCount() int { return len(s.columns) }

// Column returns the column at position i.
func (s *Schema) Column(i int) Column { return s.columns[i] }

// Type returns the scalar type of column i.
func (s *Schema) Type(i int) types.Type { return s.columns[i].Type }

// IndexOf returns the position of the named column, or -1 if absent.
func (s *Schema) IndexOf(name string) int {
	if i, ok := s.byName[name]; ok {
		return i
	}
	return -1
}

// Columns returns the schema's columns in order. The returned slice must
// not be mutated by the caller.
func (s *Schema) Columns() []Column { return s.columns }

func (s *Schema) String() string {
	out := "("
	for i, c := range s.columns {
		if i > 0 {
			out += ", "
		}
		out += c.Name + " " + c.Type.String()
	}
	return out + ")"
}
