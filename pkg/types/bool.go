package types

import "secidx/pkg/primitives"

// BoolValue is a boolean key/predicate value. false orders before true,
// following the teacher's BoolField.Compare convention.
type BoolValue struct {
	Value bool
}

func NewBool(v bool) *BoolValue { return &BoolValue{Value: v} }

func (v *BoolValue) Type() Type { return BoolType }

func (v *BoolValue) Compare(other Value) primitives.Diff {
	o := other.(*BoolValue)
	switch {
	case v.Value == o.Value:
		return primitives.EQ
	case !v.Value && o.Value:
		return primitives.LT
	default:
		return primitives.GT
	}
}

func (v *BoolValue) Equals(other Value) bool {
	o, ok := other.(*BoolValue)
	return ok && v.Value == o.Value
}

func (v *BoolValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}
