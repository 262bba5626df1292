// SPDX-License-Identifier: MIT
// Package pqtest checks lvheap structures against a sorted reference model.
//
// It is shared by the tests of every structure package so that all four run
// the same randomized sequences and the same contract checks.
package pqtest

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/workload"
)

// Factory builds a fresh, empty structure.
type Factory func(opts ...core.Option) core.PriorityQueue

// reference is a sorted multiset of the values currently held.
type reference []int

func (r *reference) insert(v int) {
	i := sort.SearchInts(*r, v)
	*r = append(*r, 0)
	copy((*r)[i+1:], (*r)[i:])
	(*r)[i] = v
}

func (r *reference) popMin() int {
	v := (*r)[0]
	*r = (*r)[1:]
	return v
}

// RunAgainstReference applies ops to q and after every op checks that
// size, minimum and extracted values match the reference and that
// q.Validate reports no violation.
func RunAgainstReference(t *testing.T, q core.PriorityQueue, ops []workload.Op) {
	t.Helper()
	var ref reference
	for i, op := range ops {
		switch op.Kind {
		case workload.Insert:
			_, err := q.Insert(op.Value)
			require.NoError(t, err, "op %d: %s", i, op)
			ref.insert(op.Value)
		case workload.ExtractMin:
			got, tr, err := q.ExtractMin()
			require.NoError(t, err, "op %d: %s", i, op)
			require.NotEmpty(t, tr, "op %d: extract must record steps", i)
			want := ref.popMin()
			require.Equal(t, want, got, "op %d: extracted value", i)
		}
		require.Equal(t, len(ref), q.Size(), "op %d: size", i)
		require.NoError(t, q.Validate(), "op %d: %s\n%s", i, op, q.Snapshot())
		if len(ref) > 0 {
			m, err := q.PeekMin()
			require.NoError(t, err)
			require.Equal(t, ref[0], m, "op %d: peek", i)
		}
	}
}

// RandomSequences runs RunAgainstReference on several seeded workloads
// against unbounded instances built by newQ.
func RandomSequences(t *testing.T, newQ Factory) {
	t.Helper()
	for seed := int64(1); seed <= 8; seed++ {
		ops, err := workload.Generate(300, workload.WithSeed(seed), workload.WithValueRange(-20, 20))
		require.NoError(t, err)
		RunAgainstReference(t, newQ(core.WithCapacity(core.Unbounded)), ops)
	}
}

// Drain extracts every value from q and returns them in extraction order.
func Drain(t *testing.T, q core.PriorityQueue) []int {
	t.Helper()
	var out []int
	for q.Size() > 0 {
		v, _, err := q.ExtractMin()
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

// EmptyContract checks the Empty behavior shared by all structures.
func EmptyContract(t *testing.T, q core.PriorityQueue) {
	t.Helper()
	_, tr, err := q.ExtractMin()
	assert.ErrorIs(t, err, core.ErrEmpty)
	assert.Empty(t, tr)
	assert.Equal(t, 0, q.Size())
	_, err = q.PeekMin()
	assert.ErrorIs(t, err, core.ErrEmpty)
	assert.NoError(t, q.Validate())
	assert.Equal(t, core.NoNode, q.Snapshot().Min)
}

// CapacityContract fills q until Insert reports ErrCapacityExceeded and then
// checks that a rejected insert changes nothing and records nothing.
func CapacityContract(t *testing.T, q core.PriorityQueue) {
	t.Helper()
	var err error
	for v := 0; v < 1000; v++ {
		if _, err = q.Insert(v); err != nil {
			break
		}
	}
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	before := q.Snapshot()
	size := q.Size()
	for i := 0; i < 3; i++ {
		tr, err := q.Insert(-1)
		assert.ErrorIs(t, err, core.ErrCapacityExceeded)
		assert.Empty(t, tr)
		assert.Equal(t, size, q.Size())
	}
	assert.Equal(t, before, q.Snapshot())
	assert.NoError(t, q.Validate())
}
