package index

import (
	"fmt"

	"secidx/pkg/schema"
)

// Method selects the ordered-map backend the factory should build. The
// tag is a selector only — spec.md §3 is explicit that it names a method
// (e.g. a B-tree variant, a Bw-tree variant, a hash) without requiring the
// core to actually implement every named backend; this module implements
// the ordered, concurrent B-tree-backed variant and treats the others as
// accepted-but-unimplemented selectors (ErrUnsupportedMethod).
type Method string

const (
	MethodBTree Method = "BTREE"
	MethodBwTree Method = "BWTREE"
	MethodHash  Method = "HASH"
)

// Constraint tags why an index exists, independent of its uniqueness flag
// (a unique index can back a UNIQUE constraint or a PRIMARY KEY one; both
// reject duplicate keys identically at this layer).
type Constraint string

const (
	ConstraintDefault Constraint = "DEFAULT"
	ConstraintUnique  Constraint = "UNIQUE"
	ConstraintPrimary Constraint = "PRIMARY"
)

// Metadata is an index's identity and shape: name, id, method/constraint
// tags, a (borrowed) reference to the owning table's tuple schema, an
// owned key schema, the tuple-column positions the key is drawn from, the
// uniqueness flag, and the ints_only specialization hint. Grounded on
// _examples/utkarsh5026-StoreMy/pkg/indexmanager/index_manager.go's
// IndexMetadata (which wraps systemtable.IndexMetadata with resolved
// ColumnIndex/KeyType) and
// _examples/utkarsh5026-StoreMy/pkg/catalog/systemtable/indexes_table.go's
// catalog-facing IndexMetadata, collapsed into the single struct spec.md
// §3 describes (the catalog/DDL split those two types encode is itself
// out of this module's scope).
type Metadata struct {
	Name       string
	OID        int64
	Method     Method
	Constraint Constraint

	// TupleSchema is a borrowed reference to the owning table's row
	// schema: relation and lookup only, never ownership — the catalog
	// layer owns its lifetime.
	TupleSchema *schema.Schema

	// KeySchema is owned by this Metadata from construction until the
	// index is dropped.
	KeySchema *schema.Schema

	// KeyColumns lists, for each key-schema column in order, the tuple
	// schema column position it projects from. len(KeyColumns) ==
	// KeySchema.ColumnCount().
	KeyColumns []int

	UniqueKeys bool

	// IntsOnly is true iff every key column's type is an integer kind.
	// It's a specialization hint for the factory (spec.md §4.4); this
	// module computes it correctly but does not yet branch on it (see
	// DESIGN.md).
	IntsOnly bool
}

// New validates and builds Metadata. keyColumns must have the same length
// as keySchema's column count and every entry must be a valid position in
// tupleSchema.
func New(name string, oid int64, method Method, constraint Constraint,
	tupleSchema, keySchema *schema.Schema, keyColumns []int, uniqueKeys bool) (*Metadata, error) {

	if name == "" {
		return nil, newError(CodeInvalidArgument, "index name cannot be empty")
	}
	if keySchema.ColumnCount() != len(keyColumns) {
		return nil, newError(CodeInvalidArgument, "key schema has %d columns but %d key-column positions were given",
			keySchema.ColumnCount(), len(keyColumns))
	}
	for _, pos := range keyColumns {
		if pos < 0 || pos >= tupleSchema.ColumnCount() {
			return nil, newError(CodeInvalidArgument, "key column position %d out of bounds for tuple schema with %d columns",
				pos, tupleSchema.ColumnCount())
		}
	}

	intsOnly := true
	for i := 0; i < keySchema.ColumnCount(); i++ {
		if !keySchema.Type(i).IsInteger() {
			intsOnly = false
			break
		}
	}

	return &Metadata{
		Name:        name,
		OID:         oid,
		Method:      method,
		Constraint:  constraint,
		TupleSchema: tupleSchema,
		KeySchema:   keySchema,
		KeyColumns:  keyColumns,
		UniqueKeys:  uniqueKeys,
		IntsOnly:    intsOnly,
	}, nil
}

func (m *Metadata) String() string {
	return fmt.Sprintf("Index{name=%s, method=%s, unique=%t, key=%s}",
		m.Name, m.Method, m.UniqueKeys, m.KeySchema)
}
