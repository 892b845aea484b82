package types

import (
	"strings"

	"secidx/pkg/primitives"
)

// StringValue is a short, fixed-length string key/predicate value: Go
// strings already own their bytes, so "fixed-length" here is a schema-level
// contract (the column declares a max width) rather than a storage
// distinction from VarcharValue. Comparison is lexicographic byte order,
// following the teacher's StringField.Compare.
type StringValue struct {
	Value string
}

func NewString(v string) *StringValue { return &StringValue{Value: v} }

func (v *StringValue) Type() Type { return StringType }

func (v *StringValue) Compare(other Value) primitives.Diff {
	o := other.(*StringValue)
	switch c := strings.Compare(v.Value, o.Value); {
	case c < 0:
		return primitives.LT
	case c > 0:
		return primitives.GT
	default:
		return primitives.EQ
	}
}

func (v *StringValue) Equals(other Value) bool {
	o, ok := other.(*StringValue)
	return ok && v.Value == o.Value
}

func (v *StringValue) String() string { return v.Value }
