package types

import (
	"strings"

	"secidx/pkg/primitives"
)

// varlenAllocator is the subset of *pool.Pool that VarcharValue needs.
// Declared locally (rather than importing pkg/pool) to avoid a dependency
// cycle: pool is a leaf package and types stays one too.
type varlenAllocator interface {
	AllocateString(s string) string
}

// VarcharValue is a variable-length string key/predicate value whose
// payload may be owned by a caller-supplied pool (see pkg/pool), per
// spec.md §3: "String-valued columns store their payload in an associated
// variable-length pool with a lifetime at least as long as the tuple."
type VarcharValue struct {
	Value string
}

// NewVarchar wraps a string the caller already owns (e.g. a Go string
// literal, or one read from a buffer with a lifetime of its own).
func NewVarchar(v string) *VarcharValue { return &VarcharValue{Value: v} }

// NewVarcharFromPool copies v through the pool's AllocateString and returns
// a VarcharValue holding the resulting independent string, so the value
// outlives whatever buffer v originally pointed into (and the pool itself).
func NewVarcharFromPool(p varlenAllocator, v string) *VarcharValue {
	return &VarcharValue{Value: p.AllocateString(v)}
}

func (v *VarcharValue) Type() Type { return VarcharType }

func (v *VarcharValue) Compare(other Value) primitives.Diff {
	o := other.(*VarcharValue)
	switch c := strings.Compare(v.Value, o.Value); {
	case c < 0:
		return primitives.LT
	case c > 0:
		return primitives.GT
	default:
		return primitives.EQ
	}
}

func (v *VarcharValue) Equals(other Value) bool {
	o, ok := other.(*VarcharValue)
	return ok && v.Value == o.Value
}

func (v *VarcharValue) String() string { return v.Value }
