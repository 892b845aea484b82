package ordered

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secidx/pkg/index"
	"secidx/pkg/predicate"
	"secidx/pkg/primitives"
	"secidx/pkg/schema"
	"secidx/pkg/types"
)

// newTestMetadata builds the {A:int, B:varchar} key schema spec.md §8's
// end-to-end scenarios use, with the key schema doubling as the tuple
// schema (this module doesn't exercise catalog-level key projection).
func newTestMetadata(t *testing.T, unique bool) *index.Metadata {
	t.Helper()
	a, err := schema.NewColumn("a", types.IntType, false)
	require.NoError(t, err)
	b, err := schema.NewVarcharColumn("b", 64, false)
	require.NoError(t, err)

	tupleSchema, err := schema.New([]schema.Column{a, b})
	require.NoError(t, err)
	keySchema, err := schema.NewKeySchema([]schema.Column{a, b}, []int{0, 1})
	require.NoError(t, err)

	md, err := index.New("idx_ab", 1, index.MethodBTree, index.ConstraintDefault, tupleSchema, keySchema, []int{0, 1}, unique)
	require.NoError(t, err)
	return md
}

func key(a int64, b string) index.Key {
	return index.Key{types.NewInt(a), types.NewVarchar(b)}
}

var (
	item0 = primitives.NewItemPointer(120, 5)
	item1 = primitives.NewItemPointer(120, 7)
	item2 = primitives.NewItemPointer(123, 19)
)

// S1: basic roundtrip.
func TestScenario_BasicRoundtrip(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)

	require.NoError(t, idx.Insert(key(100, "a"), item0))

	out, err := idx.ScanKey(key(100, "a"), nil)
	require.NoError(t, err)
	assert.Equal(t, []primitives.ItemPointer{item0}, out)

	removed, err := idx.Delete(key(100, "a"), item0)
	require.NoError(t, err)
	assert.True(t, removed)

	out, err = idx.ScanKey(key(100, "a"), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// S2: multi-map fan-out.
func TestScenario_MultiMapFanOut(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)

	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "b"), item2))
	require.NoError(t, idx.Insert(key(100, "b"), item0))

	out, err := idx.ScanKey(key(100, "b"), nil)
	require.NoError(t, err)
	assert.Len(t, out, 5)

	removed, err := idx.Delete(key(100, "b"), item1)
	require.NoError(t, err)
	assert.True(t, removed)

	out, err = idx.ScanKey(key(100, "b"), nil)
	require.NoError(t, err)
	assert.Len(t, out, 4)
	assert.Equal(t, 2, countItem(out, item1))
}

func countItem(items []primitives.ItemPointer, target primitives.ItemPointer) int {
	n := 0
	for _, it := range items {
		if it.Equals(target) {
			n++
		}
	}
	return n
}

func seedRangeData(t *testing.T, idx *Index) {
	t.Helper()
	require.NoError(t, idx.Insert(key(100, "a"), item0))
	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "c"), item2))
	require.NoError(t, idx.Insert(key(400, "d"), item0))
	require.NoError(t, idx.Insert(key(500, "e"), item1))
}

// S3: range forward.
func TestScenario_RangeForward(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	seedRangeData(t, idx)

	out, err := idx.Scan(predicate.List{predicate.Eq(0, types.NewInt(100))}, index.Forward, nil)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

// S4: range open-ended, forward/backward symmetry.
func TestScenario_RangeOpenEnded_DirectionSymmetry(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	seedRangeData(t, idx)

	preds := predicate.List{
		predicate.Cmp(0, primitives.GreaterThanOrEqual, types.NewInt(100)),
		predicate.Cmp(0, primitives.LessThanOrEqual, types.NewInt(500)),
	}

	forward, err := idx.Scan(preds, index.Forward, nil)
	require.NoError(t, err)
	assert.Len(t, forward, 5)

	backward, err := idx.Scan(preds, index.Backward, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, forward, backward)
}

// S5: predicate validation narrows a scan to a single key group.
func TestScenario_PredicateValidation(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "b"), item1))
	require.NoError(t, idx.Insert(key(100, "b"), item2))
	require.NoError(t, idx.Insert(key(100, "b"), item0))
	require.NoError(t, idx.Insert(key(100, "c"), item2))

	preds := predicate.List{
		predicate.Eq(0, types.NewInt(100)),
		predicate.Cmp(1, primitives.GreaterThan, types.NewVarchar("b")),
	}
	out, err := idx.Scan(preds, index.Forward, nil)
	require.NoError(t, err)
	assert.Equal(t, []primitives.ItemPointer{item2}, out)
}

// S6: absent key.
func TestScenario_AbsentKey(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	out, err := idx.ScanKey(key(1000, "f"), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUniqueVariant_RejectsDuplicateKey(t *testing.T) {
	idx := NewUnique(newTestMetadata(t, true), nil)

	require.NoError(t, idx.Insert(key(1, "x"), item0))
	err := idx.Insert(key(1, "x"), item1)
	require.Error(t, err)
	assert.ErrorIs(t, err, index.ErrDuplicateKey)
}

func TestUniqueVariant_DeleteWithMismatchedItemIsNoop(t *testing.T) {
	idx := NewUnique(newTestMetadata(t, true), nil)
	require.NoError(t, idx.Insert(key(1, "x"), item0))

	removed, err := idx.Delete(key(1, "x"), item1)
	require.NoError(t, err)
	assert.False(t, removed)

	out, err := idx.ScanKey(key(1, "x"), nil)
	require.NoError(t, err)
	assert.Equal(t, []primitives.ItemPointer{item0}, out)
}

func TestDeleteIsExact(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	require.NoError(t, idx.Insert(key(1, "x"), item0))
	require.NoError(t, idx.Insert(key(1, "x"), item1))

	removed, err := idx.Delete(key(1, "x"), item0)
	require.NoError(t, err)
	assert.True(t, removed)

	out, err := idx.ScanKey(key(1, "x"), nil)
	require.NoError(t, err)
	assert.Equal(t, []primitives.ItemPointer{item1}, out)
}

func TestScanAll(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	seedRangeData(t, idx)

	out, err := idx.ScanAll(nil)
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestConcurrency_MultiMapCardinalitySumsPerThreadInserts(t *testing.T) {
	idx := NewMultiMap(newTestMetadata(t, false), nil)
	const threads = 8
	const perThread = 50

	var wg sync.WaitGroup
	for tid := 0; tid < threads; tid++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			for i := 0; i < perThread; i++ {
				item := primitives.NewItemPointer(primitives.BlockID(tid), primitives.Offset(i))
				require.NoError(t, idx.Insert(key(7, "z"), item))
			}
		}(tid)
	}
	wg.Wait()

	out, err := idx.ScanKey(key(7, "z"), nil)
	require.NoError(t, err)
	assert.Len(t, out, threads*perThread)
}

func TestConcurrency_UniqueVariantExactlyOneWinnerPerKey(t *testing.T) {
	idx := NewUnique(newTestMetadata(t, true), nil)
	const threads = 16

	var wg sync.WaitGroup
	var successes sync.Map
	for tid := 0; tid < threads; tid++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			item := primitives.NewItemPointer(primitives.BlockID(tid), 0)
			if err := idx.Insert(key(9, "shared"), item); err == nil {
				successes.Store(tid, true)
			}
		}(tid)
	}
	wg.Wait()

	count := 0
	successes.Range(func(_, _ any) bool { count++; return true })
	assert.Equal(t, 1, count)

	out, err := idx.ScanKey(key(9, "shared"), nil)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
