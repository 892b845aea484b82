package types

import (
	"strconv"
	"time"

	"secidx/pkg/primitives"
)

// TimestampValue is a point in time, stored as Unix nanoseconds (int64),
// following the representation the teacher uses for its other 64-bit
// integer fields (Int64Field). spec.md §3 names timestamp as a key column
// type but leaves its representation to the implementation.
type TimestampValue struct {
	Value int64
}

// NewTimestamp wraps a raw Unix-nanosecond value.
func NewTimestamp(unixNano int64) *TimestampValue { return &TimestampValue{Value: unixNano} }

// NewTimestampFromTime converts a time.Time to a TimestampValue.
func NewTimestampFromTime(t time.Time) *TimestampValue { return &TimestampValue{Value: t.UnixNano()} }

func (v *TimestampValue) Time() time.Time { return time.Unix(0, v.Value) }

func (v *TimestampValue) Type() Type { return TimestampType }

func (v *TimestampValue) Compare(other Value) primitives.Diff {
	o := other.(*TimestampValue)
	switch {
	case v.Value < o.Value:
		return primitives.LT
	case v.Value > o.Value:
		return primitives.GT
	default:
		return primitives.EQ
	}
}

func (v *TimestampValue) Equals(other Value) bool {
	o, ok := other.(*TimestampValue)
	return ok && v.Value == o.Value
}

func (v *TimestampValue) String() string { return strconv.FormatInt(v.Value, 10) }
