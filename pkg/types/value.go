package types

import (
	"math"

	"secidx/pkg/primitives"
)

// Value is a tagged variant over the scalar types an index key or predicate
// operand can carry. Every concrete Value is comparable only against a
// Value of the same Type; Compare returns Incomparable for the one case the
// spec calls out explicitly (matching against a List via IN), never for a
// type mismatch — a type mismatch is a caller bug and is never silently
// coerced: the concrete Compare methods panic on it, and the predicate
// engine checks operand types up front and returns an error, which the
// ordered index's Scan surfaces as UnsupportedPredicate (Matches) or
// InvalidArgument (LowerBoundKey).
type Value interface {
	// Type reports this value's scalar kind.
	Type() Type

	// Compare orders this value against other, which must share Type().
	// Returns LT/EQ/GT for ordered comparisons. Only ListValue.Compare
	// returns Incomparable; every ordered type returns LT/EQ/GT.
	Compare(other Value) primitives.Diff

	// Equals is a convenience wrapper: Compare(other) == EQ, short-circuited
	// for types (e.g. float) where exact equality is the right semantics for
	// deletion/dedup even though a wider equality window might apply during
	// scans via predicates.
	Equals(other Value) bool

	// String renders the value for diagnostics (index info strings, logs).
	String() string
}

// InList reports whether a equals any element of list. This is the one
// place Value comparison legitimately returns Incomparable upstream: when
// list is empty or when a's type doesn't match any element, the predicate
// engine treats that as "no match", not as an error.
func InList(a Value, list *ListValue) bool {
	if list == nil {
		return false
	}
	for _, v := range list.Values {
		if v.Type() == a.Type() && a.Compare(v) == primitives.EQ {
			return true
		}
	}
	return false
}

// MinValue returns the representable minimum for an ordered type, used by
// the predicate engine to pad key columns that carry no EQ predicate.
func MinValue(t Type) Value {
	switch t {
	case IntType:
		return NewInt(minInt64)
	case Int32Type:
		return NewInt32(minInt32)
	case FloatType:
		return NewFloat(math.Inf(-1))
	case BoolType:
		return NewBool(false)
	case StringType:
		return NewString("")
	case VarcharType:
		return NewVarchar("")
	case TimestampType:
		return NewTimestamp(minInt64)
	default:
		return nil
	}
}

const (
	minInt64 = -1 << 63
	minInt32 = -1 << 31
)

// MinValueFromPool is MinValue, except a Varchar column's minimum is
// materialized through pool so the resulting key never aliases a caller's
// buffer — spec.md §4.2.1's "varlen min values are produced via the
// engine's pool so the resulting key is self-contained."
func MinValueFromPool(t Type, p varlenAllocator) Value {
	if t == VarcharType {
		return NewVarcharFromPool(p, "")
	}
	return MinValue(t)
}
