package primitives

import "fmt"

// BlockID identifies a page/block within the owning table's storage.
// The index treats it as opaque.
type BlockID uint64

// Offset identifies a slot/row within a block. The index treats it as opaque.
type Offset uint32

// ItemPointer locates a tuple in the owning table. It is compared only for
// equality, and only where deletion semantics require it; the index never
// orders by ItemPointer.
type ItemPointer struct {
	BlockID BlockID
	Offset  Offset
}

// NewItemPointer builds an ItemPointer from a block id and offset pair.
func NewItemPointer(blockID BlockID, offset Offset) ItemPointer {
	return ItemPointer{BlockID: blockID, Offset: offset}
}

// Equals reports whether two item pointers locate the same tuple.
func (p ItemPointer) Equals(other ItemPointer) bool {
	return p.BlockID == other.BlockID && p.Offset == other.Offset
}

func (p ItemPointer) String() string {
	return fmt.Sprintf("(%d,%d)", p.BlockID, p.Offset)
}
