package predicate

import (
	"fmt"

	"secidx/pkg/pool"
	"secidx/pkg/primitives"
	"secidx/pkg/schema"
	"secidx/pkg/types"
)

// Predicate ties one key-schema column position to a comparison operator
// and (for every operator except In) a single operand, or (for In) an
// operand list. Grounded in shape on
// _examples/utkarsh5026-StoreMy/pkg/execution/query/predicate.go's
// Predicate{fieldIndex, op, operand}, extended with an operand list for In.
type Predicate struct {
	Column  int
	Op      primitives.Predicate
	Operand types.Value
	List    *types.ListValue
}

// Eq builds an Equals predicate on the given key-schema column.
func Eq(column int, v types.Value) Predicate {
	return Predicate{Column: column, Op: primitives.Equals, Operand: v}
}

// Cmp builds an ordered-comparison predicate (anything but Equals/In).
func Cmp(column int, op primitives.Predicate, v types.Value) Predicate {
	return Predicate{Column: column, Op: op, Operand: v}
}

// InList builds an In predicate against a fixed operand list.
func InList(column int, list *types.ListValue) Predicate {
	return Predicate{Column: column, Op: primitives.In, List: list}
}

// List is a conjunction of Predicates: every element must hold for Matches
// to report true. An empty List matches every key (spec.md §4.2's "no
// predicates" case), and is also the signal LowerBoundKey uses to build the
// index's absolute lower bound.
type List []Predicate

// byColumn returns, for a given key-schema column, the single applicable
// predicate, preferring an Equals predicate when more than one predicate
// targets the same column (spec.md §4.2.2 names Equals as the strongest
// constraint a column can carry for lower-bound purposes). Returns ok=false
// if no predicate targets column.
func (l List) byColumn(column int) (Predicate, bool) {
	found := false
	var best Predicate
	for _, p := range l {
		if p.Column != column {
			continue
		}
		if !found {
			best, found = p, true
			continue
		}
		if p.Op == primitives.Equals {
			best = p
		}
	}
	return best, found
}

// Matches reports whether key satisfies every predicate in l, per spec.md
// §4.2.1's truth table: each predicate's operator is dispatched against the
// primitives.Diff obtained from comparing the key's column value to the
// predicate's operand (In instead consults types.InList directly, since
// list membership has no single Diff). A key shorter than the highest
// column index any predicate targets, an operand whose type differs from
// its key column, or an operator outside the recognised set is a caller
// bug: Matches returns ok=false together with a non-nil error, and the
// ordered index's Scan stops and reports that error as
// UnsupportedPredicate.
func Matches(key Key, preds List) (bool, error) {
	for _, p := range preds {
		if p.Column < 0 || p.Column >= len(key) {
			return false, fmt.Errorf("predicate column %d out of range for key of length %d", p.Column, len(key))
		}
		col := key[p.Column]

		if p.Op == primitives.In {
			if !types.InList(col, p.List) {
				return false, nil
			}
			continue
		}

		if col.Type() != p.Operand.Type() {
			return false, fmt.Errorf("predicate column %d type %s does not match operand type %s",
				p.Column, col.Type(), p.Operand.Type())
		}
		diff := col.Compare(p.Operand)

		ok, err := evalDiff(diff, p.Op)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// evalDiff dispatches (diff, op) to a boolean per spec.md §4.2.1's table.
// Equals/NotEqual/LessThan/LessThanOrEqual/GreaterThan/GreaterThanOrEqual
// are all defined for every Diff outcome; In never reaches here (Matches
// special-cases it above), so seeing it is a programming error.
func evalDiff(diff primitives.Diff, op primitives.Predicate) (bool, error) {
	switch op {
	case primitives.Equals:
		return diff == primitives.EQ, nil
	case primitives.NotEqual:
		return diff != primitives.EQ, nil
	case primitives.LessThan:
		return diff == primitives.LT, nil
	case primitives.LessThanOrEqual:
		return diff == primitives.LT || diff == primitives.EQ, nil
	case primitives.GreaterThan:
		return diff == primitives.GT, nil
	case primitives.GreaterThanOrEqual:
		return diff == primitives.GT || diff == primitives.EQ, nil
	default:
		return false, fmt.Errorf("unsupported predicate operator %s", op)
	}
}

// LowerBoundKey builds the search key a positioned scan should seek to,
// per spec.md §4.2.2: for each key-schema column in order, an Equals
// predicate supplies its exact value; a column with any other predicate
// (or no predicate at all) is padded with the column type's minimum
// representable value, whether or not later columns carry Equals, so the
// built key sorts at or before every key an exhaustive scan from the start
// would have visited with the same Equals prefix. allEq reports whether
// every column in the key schema was pinned by an Equals predicate — the
// ordered index's Scan uses this to choose ScanKey's O(log n + k) point
// lookup over a positioned directional walk.
func LowerBoundKey(keySchema *schema.Schema, preds List, p *pool.Pool) (key Key, allEq bool, err error) {
	n := keySchema.ColumnCount()
	key = make(Key, n)
	allEq = true

	for i := 0; i < n; i++ {
		colType := keySchema.Type(i)
		pred, ok := preds.byColumn(i)
		if !ok || pred.Op != primitives.Equals {
			allEq = false
			key[i] = types.MinValueFromPool(colType, p)
			continue
		}
		if pred.Operand.Type() != colType {
			return nil, false, fmt.Errorf("equals predicate on column %d has type %s, key schema column has type %s",
				i, pred.Operand.Type(), colType)
		}
		key[i] = pred.Operand
	}
	return key, allEq, nil
}
