package schema

import (
	"fmt"

	"secidx/pkg/types"
)

// Column describes one field of a schema: its name, scalar type, storage
// width, and nullability. Grounded on
// _examples/utkarsh5026-StoreMy/pkg/catalog/schema/column.go's
// ColumnMetadata, trimmed to the fields spec.md §3 actually names (name,
// type, fixed byte length or variable marker, not-null flag) — the
// teacher's auto-increment/table-id/primary-key bookkeeping belongs to the
// catalog layer this module treats as an external collaborator.
type Column struct {
	Name string
	Type types.Type

	// FixedLength is the column's byte width for fixed-length types. For
	// VarcharType columns built by NewVarcharColumn it holds the declared
	// maximum length instead; use Variable() to ask which meaning applies.
	FixedLength int

	NotNull bool
}

// NewColumn builds a Column, defaulting FixedLength for the fixed-width
// types it recognizes so callers building a schema for int/bool/timestamp
// columns don't have to know the byte width by hand.
func NewColumn(name string, t types.Type, notNull bool) (Column, error) {
	if name == "" {
		return Column{}, fmt.Errorf("column name cannot be empty")
	}

	return Column{
		Name:        name,
		Type:        t,
		FixedLength: defaultFixedLength(t),
		NotNull:     notNull,
	}, nil
}

// NewVarcharColumn builds a variable-length string column with the given
// maximum length, stored in FixedLength. The length plays no role in
// ordering (VarcharValue orders by full content).
func NewVarcharColumn(name string, maxLength int, notNull bool) (Column, error) {
	if name == "" {
		return Column{}, fmt.Errorf("column name cannot be empty")
	}
	if maxLength <= 0 {
		return Column{}, fmt.Errorf("varchar column %q needs a positive max length", name)
	}
	return Column{Name: name, Type: types.VarcharType, FixedLength: maxLength, NotNull: notNull}, nil
}

// Variable reports whether this column's payload is pool-owned
// variable-length storage rather than an inline fixed-width value.
func (c Column) Variable() bool { return c.Type == types.VarcharType }

func defaultFixedLength(t types.Type) int {
	switch t {
	case types.IntType, types.TimestampType, types.FloatType:
		return 8
	case types.Int32Type:
		return 4
	case types.BoolType:
		return 1
	case types.StringType:
		return 256
	default:
		return 0
	}
}
