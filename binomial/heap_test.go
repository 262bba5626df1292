package binomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/binomial"
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/internal/pqtest"
	"github.com/katalvlaran/lvheap/workload"
)

func newQueue(opts ...core.Option) core.PriorityQueue { return binomial.New(opts...) }

// distinctAndSized checks the binomial representation invariant directly:
// no duplicate root degree, and size = Σ 2^degree.
func distinctAndSized(t *testing.T, h *binomial.Heap) {
	t.Helper()
	seen := map[int]bool{}
	total := 0
	for _, d := range h.Degrees() {
		require.False(t, seen[d], "duplicate degree %d in %v", d, h.Degrees())
		seen[d] = true
		total += 1 << d
	}
	require.Equal(t, h.Size(), total)
}

func TestInsert_DegreesFollowBinaryCount(t *testing.T) {
	h := binomial.New()
	want := [][]int{
		{0},       // 1
		{1},       // 10
		{0, 1},    // 11
		{2},       // 100
		{0, 2},    // 101
		{1, 2},    // 110
		{0, 1, 2}, // 111
		{3},       // 1000
	}
	for i, w := range want {
		_, err := h.Insert(10 - i)
		require.NoError(t, err)
		assert.Equal(t, w, h.Degrees(), "after %d inserts", i+1)
		distinctAndSized(t, h)
	}
}

func TestInsert_Trace(t *testing.T) {
	h := binomial.New()
	tr, err := h.Insert(5)
	require.NoError(t, err)
	assert.Equal(t, []core.Action{core.ActionInsert}, tr.Actions())
	assert.Equal(t, []core.NodeID{0}, tr[0].Nodes)

	tr, err = h.Insert(3)
	require.NoError(t, err)
	assert.Equal(t, []core.Action{core.ActionInsert, core.ActionCompare, core.ActionLink}, tr.Actions())
	// 3 (node 1) adopts 5 (node 0).
	assert.Equal(t, []core.NodeID{1, 0}, tr[2].Nodes)
}

func TestExtractMin_PromotesChildrenAndUnions(t *testing.T) {
	h := binomial.New()
	for _, v := range []int{5, 3, 7} {
		_, err := h.Insert(v)
		require.NoError(t, err)
	}
	require.Equal(t, []int{0, 1}, h.Degrees())

	v, tr, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1}, h.Degrees())
	assert.Contains(t, tr.Actions(), core.ActionRemove)
	assert.Contains(t, tr.Actions(), core.ActionPromote)
	assert.Contains(t, tr.Actions(), core.ActionLink)

	m, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 5, m)
	assert.NoError(t, h.Validate())
}

func TestExtractMin_ChildrenPromotedInDegreeOrder(t *testing.T) {
	h := binomial.New()
	for _, v := range []int{1, 2, 3, 4} {
		_, err := h.Insert(v)
		require.NoError(t, err)
	}
	require.Equal(t, []int{2}, h.Degrees())

	v, tr, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{0, 1}, h.Degrees())
	require.NoError(t, h.Validate())

	// Promote lists the children as they become roots: degree 0, then 1.
	promote := tr[len(tr)-1]
	assert.Equal(t, core.ActionPromote, promote.Action)
	assert.Len(t, promote.Nodes, 2)

	_, err = h.Insert(5)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, h.Degrees())
	assert.NoError(t, h.Validate())
	assert.Equal(t, []int{2, 3, 4, 5}, pqtest.Drain(t, h))
}

func TestExtractMin_InvariantAfterEveryOp(t *testing.T) {
	ops, err := workload.Generate(400, workload.WithSeed(5))
	require.NoError(t, err)
	h := binomial.New(core.WithCapacity(core.Unbounded))
	for _, op := range ops {
		if op.Kind == workload.Insert {
			_, err = h.Insert(op.Value)
		} else {
			_, _, err = h.ExtractMin()
		}
		require.NoError(t, err)
		distinctAndSized(t, h)
	}
}

func TestEqualValuesDrainInOrder(t *testing.T) {
	h := binomial.New()
	for _, v := range []int{2, 2, 1, 2, 1} {
		_, err := h.Insert(v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 1, 2, 2, 2}, pqtest.Drain(t, h))
}

func TestEmpty(t *testing.T) {
	pqtest.EmptyContract(t, binomial.New())
}

func TestCapacity(t *testing.T) {
	h := binomial.New()
	pqtest.CapacityContract(t, h)
	assert.Equal(t, binomial.DefaultCapacity, h.Size())
}

func TestRandomSequences(t *testing.T) {
	pqtest.RandomSequences(t, newQueue)
}

func TestSnapshot(t *testing.T) {
	h := binomial.New()
	for _, v := range []int{4, 8, 2} {
		_, err := h.Insert(v)
		require.NoError(t, err)
	}
	s := h.Snapshot()
	assert.Equal(t, binomial.Name, s.Structure)
	assert.Equal(t, 3, s.Size)
	require.Len(t, s.Roots, 2)
	assert.Equal(t, []int{2}, s.Roots[0].Keys)
	assert.Equal(t, []int{4}, s.Roots[1].Keys)
	assert.Equal(t, 1, s.Roots[1].Degree)
	assert.Equal(t, s.Roots[0].ID, s.Min)
}
