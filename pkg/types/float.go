package types

import (
	"strconv"

	"secidx/pkg/primitives"
)

// FloatValue is a 64-bit floating point key/predicate value. Unlike the
// teacher's Float64Field, which treats near-equal values as EQ within an
// epsilon window for filtering, an index key uses exact IEEE-754
// ordering (so 0 and -0 compare EQ) — two keys that an epsilon comparison would merge are still
// distinct slots in the ordered map, or duplicate detection under the
// unique variant would misfire for legitimately different floats.
type FloatValue struct {
	Value float64
}

func NewFloat(v float64) *FloatValue { return &FloatValue{Value: v} }

func (v *FloatValue) Type() Type { return FloatType }

func (v *FloatValue) Compare(other Value) primitives.Diff {
	o := other.(*FloatValue)
	switch {
	case v.Value < o.Value:
		return primitives.LT
	case v.Value > o.Value:
		return primitives.GT
	default:
		return primitives.EQ
	}
}

func (v *FloatValue) Equals(other Value) bool {
	o, ok := other.(*FloatValue)
	return ok && v.Value == o.Value
}

func (v *FloatValue) String() string { return strconv.FormatFloat(v.Value, 'f', -1, 64) }
