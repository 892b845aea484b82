package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secidx/pkg/schema"
	"secidx/pkg/tuple"
	"secidx/pkg/types"
)

func TestMetadata_BuildKeyProjectsKeyColumns(t *testing.T) {
	a := mustColumn(t, "a", types.IntType)
	b := mustColumn(t, "b", types.StringType)
	c := mustColumn(t, "c", types.IntType)
	tupleSchema, err := schema.New([]schema.Column{a, b, c})
	require.NoError(t, err)
	keySchema, err := schema.NewKeySchema([]schema.Column{c, a}, []int{2, 0})
	require.NoError(t, err)

	md, err := New("idx", 1, MethodBTree, ConstraintDefault, tupleSchema, keySchema, []int{2, 0}, false)
	require.NoError(t, err)

	row := tuple.New(tupleSchema)
	require.NoError(t, row.Set(0, types.NewInt(1), nil))
	require.NoError(t, row.Set(1, types.NewString("x"), nil))
	require.NoError(t, row.Set(2, types.NewInt(99), nil))

	key, err := md.BuildKey(row)
	require.NoError(t, err)
	assert.Equal(t, Key{types.NewInt(99), types.NewInt(1)}, key)
}
