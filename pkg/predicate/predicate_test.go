package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secidx/pkg/pool"
	"secidx/pkg/primitives"
	"secidx/pkg/schema"
	"secidx/pkg/types"
)

func intKey(values ...int64) Key {
	k := make(Key, len(values))
	for i, v := range values {
		k[i] = types.NewInt(v)
	}
	return k
}

func TestMatches_TruthTable(t *testing.T) {
	cases := []struct {
		name string
		diff int64 // key column value; operand is fixed at 10
		op   primitives.Predicate
		want bool
	}{
		{"EQ/Equals", 10, primitives.Equals, true},
		{"EQ/NotEqual", 10, primitives.NotEqual, false},
		{"EQ/LessThan", 10, primitives.LessThan, false},
		{"EQ/LessThanOrEqual", 10, primitives.LessThanOrEqual, true},
		{"EQ/GreaterThan", 10, primitives.GreaterThan, false},
		{"EQ/GreaterThanOrEqual", 10, primitives.GreaterThanOrEqual, true},

		{"LT/Equals", 5, primitives.Equals, false},
		{"LT/NotEqual", 5, primitives.NotEqual, true},
		{"LT/LessThan", 5, primitives.LessThan, true},
		{"LT/LessThanOrEqual", 5, primitives.LessThanOrEqual, true},
		{"LT/GreaterThan", 5, primitives.GreaterThan, false},
		{"LT/GreaterThanOrEqual", 5, primitives.GreaterThanOrEqual, false},

		{"GT/Equals", 15, primitives.Equals, false},
		{"GT/NotEqual", 15, primitives.NotEqual, true},
		{"GT/LessThan", 15, primitives.LessThan, false},
		{"GT/LessThanOrEqual", 15, primitives.LessThanOrEqual, false},
		{"GT/GreaterThan", 15, primitives.GreaterThan, true},
		{"GT/GreaterThanOrEqual", 15, primitives.GreaterThanOrEqual, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := intKey(tc.diff)
			preds := List{Cmp(0, tc.op, types.NewInt(10))}
			got, err := Matches(key, preds)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatches_InList(t *testing.T) {
	list := &types.ListValue{Values: []types.Value{types.NewInt(1), types.NewInt(2), types.NewInt(3)}}

	inMatch, err := Matches(intKey(2), List{InList(0, list)})
	require.NoError(t, err)
	assert.True(t, inMatch)

	noMatch, err := Matches(intKey(9), List{InList(0, list)})
	require.NoError(t, err)
	assert.False(t, noMatch)
}

func TestMatches_EmptyPredicateListMatchesEverything(t *testing.T) {
	ok, err := Matches(intKey(42), List{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatches_ConjunctionShortCircuits(t *testing.T) {
	preds := List{
		Eq(0, types.NewInt(10)),
		Cmp(1, primitives.GreaterThan, types.NewInt(100)),
	}
	ok, err := Matches(Key{types.NewInt(10), types.NewInt(50)}, preds)
	require.NoError(t, err)
	assert.False(t, ok)
}

func intKeySchema(t *testing.T) *schema.Schema {
	t.Helper()
	a, err := schema.NewColumn("a", types.IntType, false)
	require.NoError(t, err)
	b, err := schema.NewColumn("b", types.IntType, false)
	require.NoError(t, err)
	s, err := schema.New([]schema.Column{a, b})
	require.NoError(t, err)
	return s
}

func TestLowerBoundKey_AllEqTrueOnlyWithFullEqPrefix(t *testing.T) {
	p := pool.New()
	ks := intKeySchema(t)

	key, allEq, err := LowerBoundKey(ks, List{Eq(0, types.NewInt(1)), Eq(1, types.NewInt(2))}, p)
	require.NoError(t, err)
	assert.True(t, allEq)
	assert.Equal(t, Key{types.NewInt(1), types.NewInt(2)}, key)

	key, allEq, err = LowerBoundKey(ks, List{Eq(0, types.NewInt(1))}, p)
	require.NoError(t, err)
	assert.False(t, allEq)
	assert.True(t, key[1].Equals(types.MinValue(types.IntType)))

	key, allEq, err = LowerBoundKey(ks, List{Cmp(0, primitives.GreaterThanOrEqual, types.NewInt(1))}, p)
	require.NoError(t, err)
	assert.False(t, allEq)
	assert.True(t, key[0].Equals(types.MinValue(types.IntType)))
}

func TestLowerBoundKey_VarcharPaddingUsesPool(t *testing.T) {
	p := pool.New()
	col, err := schema.NewVarcharColumn("name", 64, false)
	require.NoError(t, err)
	ks, err := schema.New([]schema.Column{col})
	require.NoError(t, err)

	key, allEq, err := LowerBoundKey(ks, List{}, p)
	require.NoError(t, err)
	assert.False(t, allEq)
	assert.Equal(t, "", key[0].(*types.VarcharValue).Value)
}
