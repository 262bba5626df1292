package binaryheap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/binaryheap"
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/internal/pqtest"
	"github.com/katalvlaran/lvheap/workload"
)

func newQueue(opts ...core.Option) core.PriorityQueue { return binaryheap.New(opts...) }

// heapOrdered checks values[(i-1)/2] ≤ values[i] for every i > 0.
func heapOrdered(t *testing.T, values []int) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		require.LessOrEqual(t, values[(i-1)/2], values[i], "index %d in %v", i, values)
	}
}

func TestInsert_SiftUpExample(t *testing.T) {
	h, err := binaryheap.NewFromSlice([]int{3, 9, 8, 12, 15})
	require.NoError(t, err)

	tr, err := h.Insert(1)
	require.NoError(t, err)

	// 1 lands at index 5, swaps with 8 (index 2), then with 3 (index 0).
	assert.Equal(t, []int{1, 9, 3, 12, 15, 8}, h.Values())
	assert.Equal(t, []core.Action{
		core.ActionInsert,
		core.ActionCompare, core.ActionSwap,
		core.ActionCompare, core.ActionSwap,
	}, tr.Actions())
	assert.Equal(t, []core.NodeID{5, 2}, tr[2].Nodes)
	assert.Equal(t, []core.NodeID{2, 0}, tr[4].Nodes)
}

func TestInsert_NoSwapWhenParentEqual(t *testing.T) {
	h := binaryheap.New()
	_, err := h.Insert(4)
	require.NoError(t, err)
	tr, err := h.Insert(4)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Count(core.SwapOrLink))
	assert.Equal(t, []int{4, 4}, h.Values())
}

func TestInsert_OrderHoldsAfterEveryInsert(t *testing.T) {
	ops, err := workload.Generate(200, workload.WithSeed(11), workload.WithInsertRatio(1))
	require.NoError(t, err)
	h := binaryheap.New(core.WithCapacity(core.Unbounded))
	for _, op := range ops {
		_, err = h.Insert(op.Value)
		require.NoError(t, err)
		heapOrdered(t, h.Values())
	}
}

func TestExtractMin_LeftChildWinsTie(t *testing.T) {
	h, err := binaryheap.NewFromSlice([]int{1, 5, 5, 9})
	require.NoError(t, err)

	v, tr, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	// 9 moves to the root; both children are 5, the left one (index 1) is taken.
	assert.Equal(t, []int{5, 9, 5}, h.Values())
	swaps := 0
	for _, s := range tr {
		if s.Action == core.ActionSwap {
			swaps++
			assert.Equal(t, []core.NodeID{0, 1}, s.Nodes)
		}
	}
	assert.Equal(t, 1, swaps)
}

func TestExtractMin_SingleElementClears(t *testing.T) {
	h := binaryheap.New()
	_, err := h.Insert(7)
	require.NoError(t, err)

	v, tr, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, []core.Action{core.ActionRemove}, tr.Actions())
	assert.Equal(t, 0, h.Size())
}

func TestExtractMin_Sorted(t *testing.T) {
	h, err := binaryheap.NewFromSlice([]int{15, 3, 12, 9, 8, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3, 8, 9, 12, 15}, pqtest.Drain(t, h))
}

func TestEmpty(t *testing.T) {
	pqtest.EmptyContract(t, binaryheap.New())
}

func TestCapacity(t *testing.T) {
	h := binaryheap.New()
	pqtest.CapacityContract(t, h)
	assert.Equal(t, binaryheap.DefaultCapacity, h.Size())

	_, err := binaryheap.NewFromSlice(make([]int, 16))
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestInvalidCapacityOption(t *testing.T) {
	h := binaryheap.New(core.WithCapacity(-3))
	_, err := h.Insert(1)
	assert.ErrorIs(t, err, core.ErrOptionViolation)
	assert.Equal(t, 0, h.Size())

	_, err = binaryheap.NewFromSlice(nil, core.WithCapacity(-3))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

func TestRandomSequences(t *testing.T) {
	pqtest.RandomSequences(t, newQueue)
}

func TestOnStepSeesCommittedSteps(t *testing.T) {
	var seen core.Trace
	h := binaryheap.New(core.WithOnStep(func(s core.Step) { seen = append(seen, s) }), core.WithCapacity(2))
	tr1, err := h.Insert(2)
	require.NoError(t, err)
	tr2, err := h.Insert(1)
	require.NoError(t, err)
	_, err = h.Insert(0)
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	assert.Equal(t, append(append(core.Trace{}, tr1...), tr2...), seen)
}

func TestSnapshot(t *testing.T) {
	h, err := binaryheap.NewFromSlice([]int{3, 9, 8, 12})
	require.NoError(t, err)
	s := h.Snapshot()
	assert.Equal(t, binaryheap.Name, s.Structure)
	assert.Equal(t, core.NodeID(0), s.Min)
	assert.Equal(t, []int{3, 9, 8, 12}, s.Values)
	require.Len(t, s.Roots, 1)
	assert.Equal(t, 4, s.NodeCount())
	assert.Equal(t, []int{12}, s.Roots[0].Children[0].Children[0].Keys)
}
