package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/binaryheap"
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/workload"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := workload.Generate(50, workload.WithSeed(7))
	require.NoError(t, err)
	b, err := workload.Generate(50, workload.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	zero, err := workload.Generate(50)
	require.NoError(t, err)
	one, err := workload.Generate(50, workload.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, one, zero, "seed 0 must map to the default seed")
}

func TestGenerate_NeverExtractsFromEmpty(t *testing.T) {
	ops, err := workload.Generate(500, workload.WithSeed(3), workload.WithInsertRatio(0.2))
	require.NoError(t, err)
	held := 0
	for _, op := range ops {
		if op.Kind == workload.ExtractMin {
			require.Positive(t, held)
			held--
			continue
		}
		held++
	}
}

func TestGenerate_ValueRange(t *testing.T) {
	ops, err := workload.Generate(200, workload.WithValueRange(-5, 5), workload.WithInsertRatio(1))
	require.NoError(t, err)
	for _, op := range ops {
		assert.Equal(t, workload.Insert, op.Kind)
		assert.GreaterOrEqual(t, op.Value, -5)
		assert.Less(t, op.Value, 5)
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	_, err := workload.Generate(1, workload.WithValueRange(3, 3))
	assert.ErrorIs(t, err, workload.ErrOptionViolation)
	_, err = workload.Generate(1, workload.WithInsertRatio(1.5))
	assert.ErrorIs(t, err, workload.ErrOptionViolation)
	_, err = workload.Generate(-1)
	assert.ErrorIs(t, err, workload.ErrOptionViolation)
}

func TestRandomValue(t *testing.T) {
	rng := workload.NewRand(42)
	for i := 0; i < 1000; i++ {
		v := workload.RandomValue(rng)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}
}

func TestApply_StopsOnError(t *testing.T) {
	h := binaryheap.New(core.WithCapacity(1))
	ops := []workload.Op{{Kind: workload.Insert, Value: 4}, {Kind: workload.Insert, Value: 2}}
	_, err := workload.Apply(h, ops)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, 1, h.Size())

	out, err := workload.Apply(h, []workload.Op{{Kind: workload.ExtractMin}})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, out)
	assert.Equal(t, "insert 4", ops[0].String())
	assert.Equal(t, "extract", workload.Op{Kind: workload.ExtractMin}.String())
}
