package types

import (
	"strconv"

	"secidx/pkg/primitives"
)

// IntValue is a 64-bit signed integer key/predicate value.
type IntValue struct {
	Value int64
}

func NewInt(v int64) *IntValue { return &IntValue{Value: v} }

func (v *IntValue) Type() Type { return IntType }

func (v *IntValue) Compare(other Value) primitives.Diff {
	o := other.(*IntValue)
	switch {
	case v.Value < o.Value:
		return primitives.LT
	case v.Value > o.Value:
		return primitives.GT
	default:
		return primitives.EQ
	}
}

func (v *IntValue) Equals(other Value) bool {
	o, ok := other.(*IntValue)
	return ok && v.Value == o.Value
}

func (v *IntValue) String() string { return strconv.FormatInt(v.Value, 10) }

// Int32Value is a 32-bit signed integer key/predicate value.
type Int32Value struct {
	Value int32
}

func NewInt32(v int32) *Int32Value { return &Int32Value{Value: v} }

func (v *Int32Value) Type() Type { return Int32Type }

func (v *Int32Value) Compare(other Value) primitives.Diff {
	o := other.(*Int32Value)
	switch {
	case v.Value < o.Value:
		return primitives.LT
	case v.Value > o.Value:
		return primitives.GT
	default:
		return primitives.EQ
	}
}

func (v *Int32Value) Equals(other Value) bool {
	o, ok := other.(*Int32Value)
	return ok && v.Value == o.Value
}

func (v *Int32Value) String() string { return strconv.FormatInt(int64(v.Value), 10) }
